package components

import (
	"context"
	"time"

	"stagelink/internal/infra/readstore"
	"stagelink/internal/infra/session"
	"stagelink/internal/infra/uow"
	"stagelink/internal/infra/upstream"
	"stagelink/internal/pkg/clock"
	"stagelink/internal/pkg/config"
	"stagelink/internal/usecase/commands"
	"stagelink/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork (transactional repositories hang off its Tx)
		uow.NewPostgresUoW,

		// Read side
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),

		// Wizard sessions
		fx.Annotate(
			NewWizardSessionStore,
			fx.As(new(commands.WizardSessionStore)),
			fx.As(fx.Self()),
		),

		// External collaborators
		fx.Annotate(
			NewVenueDirectoryClient,
			fx.As(new(commands.VenueDirectory)),
		),
	),
	fx.Invoke(
		startSessionSweeper,
	),
)

// startSessionSweeper reclaims expired wizard sessions in the background so
// abandoned wizards do not accumulate between Gets.
func startSessionSweeper(lc fx.Lifecycle, store *session.MemoryStore, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Wizard.SessionTTL)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						store.Sweep()
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func NewWizardSessionStore(cfg config.Config, clk clock.Clock) *session.MemoryStore {
	return session.NewMemoryStore(cfg.Wizard.SessionTTL, clk)
}

func NewVenueDirectoryClient(cfg config.Config) *upstream.VenueDirectoryClient {
	return upstream.NewVenueDirectoryClient(cfg.Upstream)
}
