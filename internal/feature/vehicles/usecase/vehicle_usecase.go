// Package usecase implements the business logic for the vehicle registry.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/platform/objectid"
)

// VehicleRepository abstracts the persistence layer for vehicles.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	// FindByOwner returns the owner's vehicles in insertion order.
	FindByOwner(ctx context.Context, ownerID string) ([]entity.Vehicle, error)
}

// OwnerLookup reports whether a user with the given id exists.
type OwnerLookup interface {
	OwnerExists(ctx context.Context, id string) (bool, error)
}

// VehicleInput carries the fields needed to add a vehicle.
type VehicleInput struct {
	Make   string
	Model  string
	Year   int
	UserID string
}

// VehicleUsecase provides business logic for vehicle operations.
type VehicleUsecase struct {
	repo   VehicleRepository
	owners OwnerLookup
}

// Option configures a VehicleUsecase.
type Option func(*VehicleUsecase)

// WithOwnerCheck makes AddVehicle reject owners unknown to lookup.
func WithOwnerCheck(lookup OwnerLookup) Option {
	return func(u *VehicleUsecase) {
		u.owners = lookup
	}
}

// NewVehicleUsecase creates a new VehicleUsecase with the given repository.
func NewVehicleUsecase(r VehicleRepository, opts ...Option) *VehicleUsecase {
	u := &VehicleUsecase{repo: r}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ListVehicles returns every vehicle owned by userID, oldest first.
// A missing or malformed userID yields an empty list without touching the store.
func (u *VehicleUsecase) ListVehicles(ctx context.Context, userID string) ([]entity.Vehicle, error) {
	owner, ok := objectid.Normalize(userID)
	if !ok {
		return []entity.Vehicle{}, nil
	}

	vehicles, err := u.repo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("find vehicles by owner: %w", err)
	}
	if vehicles == nil {
		vehicles = []entity.Vehicle{}
	}
	return vehicles, nil
}

// AddVehicle validates in and stores a new vehicle for in.UserID.
func (u *VehicleUsecase) AddVehicle(ctx context.Context, in VehicleInput) (*entity.Vehicle, error) {
	owner, ok := objectid.Normalize(in.UserID)
	if !ok {
		return nil, ErrInvalidUserID
	}

	if strings.TrimSpace(in.Make) == "" || strings.TrimSpace(in.Model) == "" || in.Year <= 0 {
		return nil, ErrInvalidVehicle
	}

	if u.owners != nil {
		exists, err := u.owners.OwnerExists(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("lookup owner: %w", err)
		}
		if !exists {
			return nil, ErrOwnerNotFound
		}
	}

	v := &entity.Vehicle{
		OwnerID: owner,
		Make:    in.Make,
		Model:   in.Model,
		Year:    in.Year,
	}
	if err := u.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return v, nil
}
