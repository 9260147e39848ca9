package di

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"digital_mechanic/internal/feature/auth/domain/entity"
	authusecase "digital_mechanic/internal/feature/auth/usecase"
	vehicleusecase "digital_mechanic/internal/feature/vehicles/usecase"
	"digital_mechanic/internal/platform/config"
	"digital_mechanic/internal/platform/objectid"
)

type stubUsers struct {
	authusecase.UserRepository
	findByID func(ctx context.Context, id string) (*entity.User, error)
}

func (s *stubUsers) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return s.findByID(ctx, id)
}

func TestOwnerLookup_OwnerExists(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("timeout")
	tests := []struct {
		name    string
		find    func(ctx context.Context, id string) (*entity.User, error)
		want    bool
		wantErr error
	}{
		{
			name: "existing user",
			find: func(ctx context.Context, id string) (*entity.User, error) { return &entity.User{ID: id}, nil },
			want: true,
		},
		{
			name: "missing user",
			find: func(ctx context.Context, id string) (*entity.User, error) { return nil, authusecase.ErrUserNotFound },
			want: false,
		},
		{
			name:    "store error",
			find:    func(ctx context.Context, id string) (*entity.User, error) { return nil, storeErr },
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewOwnerLookup(&stubUsers{findByID: tt.find}).OwnerExists(context.Background(), objectid.New())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(GormModels()...))

	store := NewGormStore(gdb)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestNewVehicleUsecase_EnforceOwner(t *testing.T) {
	t.Parallel()

	store := newSQLiteStore(t)
	ctx := context.Background()
	repo := NewVehicleRepository(nil, 0, store.Vehicles)
	input := vehicleusecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015, UserID: objectid.New()}

	_, err := NewVehicleUsecase(repo, store.Users, true).AddVehicle(ctx, input)
	assert.ErrorIs(t, err, vehicleusecase.ErrOwnerNotFound)

	v, err := NewVehicleUsecase(repo, store.Users, false).AddVehicle(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.UserID, v.OwnerID)
}

func TestNewStore_SQLite(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Store:    config.StoreConfig{Driver: config.DriverSQLite, RunMigrations: true},
		Database: config.DatabaseConfig{SQLitePath: filepath.Join(t.TempDir(), "dm.db")},
	}

	store, err := NewStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	user := &entity.User{Email: "ann@x.io", Password: "hash"}
	require.NoError(t, store.Users.Create(context.Background(), user))
	assert.True(t, objectid.IsValid(user.ID))
}

func TestNewStore_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := NewStore(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mysql"}})

	assert.Error(t, err)
}
