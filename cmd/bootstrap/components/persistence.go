package components

import (
	"context"
	"log/slog"
	"time"

	"vacation-desk/internal/infra/db"
	"vacation-desk/internal/infra/kvstore"
	"vacation-desk/internal/infra/repository"
	"vacation-desk/internal/pkg/config"
	"vacation-desk/internal/usecase/commands"
	"vacation-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

const migrationTimeout = 30 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewKVStore,
		fx.Annotate(
			repository.NewVacationRequestRepository,
			fx.As(new(commands.VacationRequestWriter)),
			fx.As(new(queries.VacationRequestReader)),
		),
	),
)

// NewKVStore picks the backend from STORE_DRIVER. The postgres schema is
// migrated before the server starts accepting requests.
func NewKVStore(lc fx.Lifecycle, cfg config.Config) (kvstore.Store, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		slog.Warn("using in-memory store, data is lost on restart")
		return kvstore.NewMemoryStore(), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, migrationTimeout)
			defer cancel()
			return db.Migrate(ctx, pool)
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return kvstore.NewPostgresStore(pool), nil
}
