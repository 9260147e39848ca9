// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	authadapters "digital_mechanic/internal/feature/auth/adapters"
	authusecase "digital_mechanic/internal/feature/auth/usecase"
	vehicleadapters "digital_mechanic/internal/feature/vehicles/adapters"
	vehicleusecase "digital_mechanic/internal/feature/vehicles/usecase"
	"digital_mechanic/internal/platform/config"
	"digital_mechanic/internal/platform/db"
	"digital_mechanic/internal/platform/mongo"
)

// Store bundles the repositories of one persistence backend.
type Store struct {
	Users    authusecase.UserRepository
	Vehicles vehicleusecase.VehicleRepository
	// Close releases the underlying connection.
	Close func(ctx context.Context) error
}

// NewStore connects to the backend selected by cfg.Store.Driver.
func NewStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return newMongoStore(ctx, cfg)
	case config.DriverPostgres, config.DriverSQLite:
		gdb, err := db.OpenDB(db.Config{
			Driver:     cfg.Store.Driver,
			User:       cfg.Database.User,
			Password:   cfg.Database.Password,
			Name:       cfg.Database.Name,
			Host:       cfg.Database.Host,
			Port:       cfg.Database.Port,
			SSLMode:    cfg.Database.SSLMode,
			SQLitePath: cfg.Database.SQLitePath,
		}, cfg.Store.ConnectTimeout, cfg.Store.RunMigrations, GormModels()...)
		if err != nil {
			return nil, err
		}
		return NewGormStore(gdb), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// GormModels lists the tables migrated for the relational backends.
func GormModels() []any {
	return []any{&authadapters.UserModel{}, &vehicleadapters.VehicleModel{}}
}

// NewGormStore wraps an open GORM connection.
func NewGormStore(gdb *gorm.DB) *Store {
	return &Store{
		Users:    authadapters.NewUserGorm(gdb),
		Vehicles: vehicleadapters.NewVehicleGormRepository(gdb),
		Close: func(context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func newMongoStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, database, err := mongo.Connect(ctx, mongo.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Store.ConnectTimeout,
	})
	if err != nil {
		return nil, err
	}

	users := authadapters.NewUserMongo(database)
	vehicles := vehicleadapters.NewVehicleMongoRepository(database)
	if cfg.Store.RunMigrations {
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure user indexes: %w", err)
		}
		if err := vehicles.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure car indexes: %w", err)
		}
	}

	return &Store{
		Users:    users,
		Vehicles: vehicles,
		Close:    client.Disconnect,
	}, nil
}
