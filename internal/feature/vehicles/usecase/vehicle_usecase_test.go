package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/feature/vehicles/usecase"
)

const validOwner = "64b7f0c2a1b2c3d4e5f60718"

// mockVehicleRepository はVehicleRepositoryインターフェースのモック実装です。
type mockVehicleRepository struct {
	CreateFunc      func(ctx context.Context, v *entity.Vehicle) error
	FindByOwnerFunc func(ctx context.Context, ownerID string) ([]entity.Vehicle, error)
}

func (m *mockVehicleRepository) Create(ctx context.Context, v *entity.Vehicle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *mockVehicleRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

// mockOwnerLookup はOwnerLookupインターフェースのモック実装です。
type mockOwnerLookup struct {
	OwnerExistsFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockOwnerLookup) OwnerExists(ctx context.Context, id string) (bool, error) {
	return m.OwnerExistsFunc(ctx, id)
}

// TestVehicleUsecase_ListVehicles はListVehiclesメソッドの各種シナリオを検証します。
func TestVehicleUsecase_ListVehicles(t *testing.T) {
	t.Parallel()

	stored := []entity.Vehicle{
		{ID: "64b7f0c2a1b2c3d4e5f60001", OwnerID: validOwner, Make: "Toyota", Model: "Corolla", Year: 2015},
		{ID: "64b7f0c2a1b2c3d4e5f60002", OwnerID: validOwner, Make: "Honda", Model: "Civic", Year: 2019},
	}

	tests := []struct {
		name         string
		userID       string
		mockFind     func(ctx context.Context, ownerID string) ([]entity.Vehicle, error)
		expected     []entity.Vehicle
		expectLookup bool
		wantErr      bool
	}{
		{
			name:   "success: returns vehicles of the owner",
			userID: validOwner,
			mockFind: func(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
				return stored, nil
			},
			expected:     stored,
			expectLookup: true,
		},
		{
			name:   "success: uppercase id is normalized before lookup",
			userID: "64B7F0C2A1B2C3D4E5F60718",
			mockFind: func(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
				return stored, nil
			},
			expected:     stored,
			expectLookup: true,
		},
		{
			name:   "success: nil from repository becomes empty list",
			userID: validOwner,
			mockFind: func(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
				return nil, nil
			},
			expected:     []entity.Vehicle{},
			expectLookup: true,
		},
		{name: "empty id returns empty list", userID: "", expected: []entity.Vehicle{}},
		{name: "literal undefined returns empty list", userID: "undefined", expected: []entity.Vehicle{}},
		{name: "malformed id returns empty list", userID: "not-an-id", expected: []entity.Vehicle{}},
		{
			name:   "failure: repository error",
			userID: validOwner,
			mockFind: func(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
				return nil, errors.New("connection lost")
			},
			expectLookup: true,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			repo := &mockVehicleRepository{
				FindByOwnerFunc: func(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
					called = true
					assert.Equal(t, validOwner, ownerID)
					return tt.mockFind(ctx, ownerID)
				},
			}
			uc := usecase.NewVehicleUsecase(repo)

			got, err := uc.ListVehicles(context.Background(), tt.userID)

			assert.Equal(t, tt.expectLookup, called)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestVehicleUsecase_AddVehicle はAddVehicleメソッドの入力検証と保存処理を検証します。
func TestVehicleUsecase_AddVehicle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        usecase.VehicleInput
		createErr    error
		wantErr      error
		expectCreate bool
	}{
		{
			name:         "success: stores vehicle for owner",
			input:        usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015, UserID: validOwner},
			expectCreate: true,
		},
		{
			name:    "missing user id",
			input:   usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015},
			wantErr: usecase.ErrInvalidUserID,
		},
		{
			name:    "literal undefined user id",
			input:   usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015, UserID: "undefined"},
			wantErr: usecase.ErrInvalidUserID,
		},
		{
			name:    "malformed user id",
			input:   usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015, UserID: "12345"},
			wantErr: usecase.ErrInvalidUserID,
		},
		{
			name:    "missing make",
			input:   usecase.VehicleInput{Model: "Corolla", Year: 2015, UserID: validOwner},
			wantErr: usecase.ErrInvalidVehicle,
		},
		{
			name:    "blank model",
			input:   usecase.VehicleInput{Make: "Toyota", Model: "   ", Year: 2015, UserID: validOwner},
			wantErr: usecase.ErrInvalidVehicle,
		},
		{
			name:    "zero year",
			input:   usecase.VehicleInput{Make: "Toyota", Model: "Corolla", UserID: validOwner},
			wantErr: usecase.ErrInvalidVehicle,
		},
		{
			name:         "failure: repository error is wrapped",
			input:        usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015, UserID: validOwner},
			createErr:    errors.New("write failed"),
			expectCreate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			created := false
			repo := &mockVehicleRepository{
				CreateFunc: func(ctx context.Context, v *entity.Vehicle) error {
					created = true
					if tt.createErr != nil {
						return tt.createErr
					}
					v.ID = "64b7f0c2a1b2c3d4e5f60001"
					v.CreatedAt = time.Now()
					v.UpdatedAt = v.CreatedAt
					return nil
				},
			}
			uc := usecase.NewVehicleUsecase(repo)

			got, err := uc.AddVehicle(context.Background(), tt.input)

			assert.Equal(t, tt.expectCreate, created)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.createErr != nil:
				assert.ErrorIs(t, err, tt.createErr)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, "64b7f0c2a1b2c3d4e5f60001", got.ID)
				assert.Equal(t, validOwner, got.OwnerID)
				assert.Equal(t, "Toyota", got.Make)
				assert.Equal(t, "Corolla", got.Model)
				assert.Equal(t, 2015, got.Year)
				assert.False(t, got.CreatedAt.IsZero())
			}
		})
	}
}

// TestVehicleUsecase_AddVehicle_OwnerCheck はWithOwnerCheck指定時に所有者の存在確認が行われることを検証します。
func TestVehicleUsecase_AddVehicle_OwnerCheck(t *testing.T) {
	t.Parallel()

	input := usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Year: 2015, UserID: validOwner}

	t.Run("unknown owner is rejected", func(t *testing.T) {
		t.Parallel()

		repo := &mockVehicleRepository{
			CreateFunc: func(ctx context.Context, v *entity.Vehicle) error {
				t.Fatal("Create must not be called for an unknown owner")
				return nil
			},
		}
		lookup := &mockOwnerLookup{OwnerExistsFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		}}

		_, err := usecase.NewVehicleUsecase(repo, usecase.WithOwnerCheck(lookup)).AddVehicle(context.Background(), input)

		assert.ErrorIs(t, err, usecase.ErrOwnerNotFound)
	})

	t.Run("known owner is stored", func(t *testing.T) {
		t.Parallel()

		lookup := &mockOwnerLookup{OwnerExistsFunc: func(ctx context.Context, id string) (bool, error) {
			assert.Equal(t, validOwner, id)
			return true, nil
		}}

		got, err := usecase.NewVehicleUsecase(&mockVehicleRepository{}, usecase.WithOwnerCheck(lookup)).AddVehicle(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, validOwner, got.OwnerID)
	})

	t.Run("lookup error is propagated", func(t *testing.T) {
		t.Parallel()

		lookupErr := errors.New("users unavailable")
		lookup := &mockOwnerLookup{OwnerExistsFunc: func(ctx context.Context, id string) (bool, error) {
			return false, lookupErr
		}}

		_, err := usecase.NewVehicleUsecase(&mockVehicleRepository{}, usecase.WithOwnerCheck(lookup)).AddVehicle(context.Background(), input)

		assert.ErrorIs(t, err, lookupErr)
		assert.NotErrorIs(t, err, usecase.ErrOwnerNotFound)
	})
}
