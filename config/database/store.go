package database

import (
	"RestoFinder/config/environment"
	"RestoFinder/store"
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OpenStore builds the KeyValueStore selected by STORE_DRIVER.
// fb may be nil unless the driver is firestore.
func OpenStore(ctx context.Context, fb *Firebase, logger *zap.SugaredLogger) (store.KeyValueStore, error) {
	driver := environment.GetStoreDriver()
	table := environment.GetKVCollection()
	timeout := environment.GetStoreTimeout()

	switch driver {
	case "firestore":
		if fb == nil {
			return nil, errors.New("firestore store requires Firebase credentials")
		}
		client, err := fb.Firestore(ctx)
		if err != nil {
			return nil, err
		}
		logger.Infow("Using Firestore key-value store", "collection", table)
		return store.NewFirestoreStore(client, table, timeout), nil

	case "sqlite":
		path := environment.GetSQLitePath()
		db, err := store.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		logger.Infow("Using SQLite key-value store", "path", path, "table", table)
		return store.NewSQLiteStore(ctx, db, table, timeout)

	case "postgres":
		dsn := environment.GetDatabaseURL()
		if dsn == "" {
			return nil, errors.New("DATABASE_URL not set")
		}
		pool, err := store.ConnectPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		logger.Infow("Using Postgres key-value store", "table", table)
		return store.NewPostgresStore(ctx, pool, table, timeout)

	case "memory":
		logger.Warn("Using in-memory key-value store, data is lost on restart")
		return store.NewMemoryStore(), nil
	}

	return nil, errors.Errorf("unknown STORE_DRIVER %q", driver)
}
