//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stagelink/internal/usecase/queries"
	queriesmock "stagelink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListByPerformer(t *testing.T) {
	performerID := uuid.New()

	t.Run("translates page to limit and offset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		store.EXPECT().
			FindByPerformerPaged(gomock.Any(), performerID, int32(10), int32(20)).
			Return([]queries.BookingRequestView{{ID: uuid.New()}}, int64(21), nil)

		page, err := q.ListByPerformer(context.Background(), performerID, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, int64(21), page.Total)
		assert.Len(t, page.Items, 1)
	})

	t.Run("clamps out-of-range paging inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		store.EXPECT().
			FindByPerformerPaged(gomock.Any(), performerID, int32(queries.MaxPageSize), int32(0)).
			Return(nil, int64(0), nil)

		page, err := q.ListByPerformer(context.Background(), performerID, 0, 1000)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, queries.MaxPageSize, page.PageSize)
	})

	t.Run("empty result is a non-nil empty page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		store.EXPECT().
			FindByPerformerPaged(gomock.Any(), performerID, int32(queries.DefaultPageSize), int32(0)).
			Return(nil, int64(0), nil)

		page, err := q.ListByPerformer(context.Background(), performerID, 1, 0)
		require.NoError(t, err)
		require.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 1, wantPageSize: queries.DefaultPageSize},
		{name: "negative page", page: -3, size: 10, wantPage: 1, wantPageSize: 10},
		{name: "oversized page size", page: 2, size: 500, wantPage: 2, wantPageSize: queries.MaxPageSize},
		{name: "in range", page: 4, size: 25, wantPage: 4, wantPageSize: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := queries.NormalizePage(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
}
