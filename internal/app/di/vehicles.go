package di

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	authusecase "digital_mechanic/internal/feature/auth/usecase"
	vehicleusecase "digital_mechanic/internal/feature/vehicles/usecase"
	"digital_mechanic/internal/platform/cache"
)

// NewVehicleRepository wraps inner with the Redis list cache.
// With a nil rdb the decorator passes every call through.
func NewVehicleRepository(rdb *redis.Client, ttl time.Duration, inner vehicleusecase.VehicleRepository) vehicleusecase.VehicleRepository {
	return cache.NewCachingVehicleRepository(rdb, ttl, inner, "vehicles")
}

// ownerLookup answers owner existence checks from the user repository.
type ownerLookup struct {
	users authusecase.UserRepository
}

var _ vehicleusecase.OwnerLookup = (*ownerLookup)(nil)

// NewOwnerLookup adapts a UserRepository to the registry's OwnerLookup.
func NewOwnerLookup(users authusecase.UserRepository) vehicleusecase.OwnerLookup {
	return &ownerLookup{users: users}
}

func (l *ownerLookup) OwnerExists(ctx context.Context, id string) (bool, error) {
	_, err := l.users.FindByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, authusecase.ErrUserNotFound):
		return false, nil
	default:
		return false, err
	}
}

// NewVehicleUsecase builds the registry, enabling the owner check when enforce is set.
func NewVehicleUsecase(repo vehicleusecase.VehicleRepository, users authusecase.UserRepository, enforce bool) *vehicleusecase.VehicleUsecase {
	if enforce {
		return vehicleusecase.NewVehicleUsecase(repo, vehicleusecase.WithOwnerCheck(NewOwnerLookup(users)))
	}
	return vehicleusecase.NewVehicleUsecase(repo)
}
