package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"plateshare-server/internal/handler/api"
	"plateshare-server/internal/infra/db"
	"plateshare-server/internal/infra/mongostore"
	"plateshare-server/internal/infra/readstore"
	"plateshare-server/internal/infra/uow"
	"plateshare-server/internal/pkg/config"
	"plateshare-server/internal/usecase/queries"
	"plateshare-server/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// Store is everything the use cases need from persistence, backed by
// whichever driver STORE_DRIVER selects.
type Store struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Listings     queries.ListingReadStore
	FoodRequests queries.FoodRequestReadStore
	Pinger       api.Pinger
}

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return newMongoStore(lc, cfg, logger)
	case config.DriverPostgres:
		return newPostgresStore(lc, cfg, logger)
	default:
		return Store{}, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func newPostgresStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Store, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return Store{}, err
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		cleanup()
		return Store{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing postgres pool")
			cleanup()
			return nil
		},
	})

	logger.Info("Connected to postgres", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return PostgresStore(pool), nil
}

// PostgresStore wires every persistence port to one pool.
func PostgresStore(pool *pgxpool.Pool) Store {
	return Store{
		UnitOfWork:   uow.NewPostgresUoW(pool),
		Listings:     readstore.NewListingReadStore(pool),
		FoodRequests: readstore.NewFoodRequestReadStore(pool),
		Pinger:       pool,
	}
}

func newMongoStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Store, error) {
	client, disconnect, err := mongostore.Connect(context.Background(), cfg.MongoURI())
	if err != nil {
		return Store{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Disconnecting from mongo")
			return disconnect(ctx)
		},
	})

	database := client.Database(cfg.Mongo.Database)
	logger.Info("Connected to mongo", "database", cfg.Mongo.Database)
	return Store{
		UnitOfWork:   mongostore.NewMongoUoW(client, database),
		Listings:     mongostore.NewListingReadStore(database),
		FoodRequests: mongostore.NewFoodRequestStore(database),
		Pinger:       mongostore.NewPinger(client),
	}, nil
}
