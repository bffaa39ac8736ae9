//go:build unit

package session_test

import (
	"testing"
	"time"

	"stagelink/internal/domain/booking"
	"stagelink/internal/infra/session"
	"stagelink/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizard() *booking.Wizard {
	return booking.NewWizard(uuid.New(), uuid.New(), "club_night", time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))
}

func TestMemoryStore(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := session.NewMemoryStore(30*time.Minute, clk)
		w := newTestWizard()

		store.Put(w)

		got, ok := store.Get(w.ID())
		require.True(t, ok)
		assert.Same(t, w, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := session.NewMemoryStore(30*time.Minute, clock.NewMockClock(time.Now()))
		_, ok := store.Get(uuid.New())
		assert.False(t, ok)
	})

	t.Run("expired sessions are dropped on get", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := session.NewMemoryStore(30*time.Minute, clk)
		w := newTestWizard()
		store.Put(w)

		clk.Add(31 * time.Minute)

		_, ok := store.Get(w.ID())
		assert.False(t, ok)
	})

	t.Run("put slides the deadline", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := session.NewMemoryStore(30*time.Minute, clk)
		w := newTestWizard()
		store.Put(w)

		clk.Add(20 * time.Minute)
		store.Put(w)
		clk.Add(20 * time.Minute)

		_, ok := store.Get(w.ID())
		assert.True(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := session.NewMemoryStore(30*time.Minute, clk)
		w := newTestWizard()
		store.Put(w)

		store.Delete(w.ID())

		_, ok := store.Get(w.ID())
		assert.False(t, ok)
	})

	t.Run("sweep removes only expired sessions", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := session.NewMemoryStore(30*time.Minute, clk)

		stale := newTestWizard()
		store.Put(stale)
		clk.Add(31 * time.Minute)
		fresh := newTestWizard()
		store.Put(fresh)

		assert.Equal(t, 1, store.Sweep())

		_, ok := store.Get(stale.ID())
		assert.False(t, ok)
		_, ok = store.Get(fresh.ID())
		assert.True(t, ok)
	})
}
