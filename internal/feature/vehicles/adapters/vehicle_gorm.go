// Package adapters はvehiclesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/feature/vehicles/usecase"
)

// vehicleGorm はVehicleRepositoryインターフェースのGORM(PostgreSQL/SQLite)実装です。
type vehicleGorm struct {
	db *gorm.DB
}

var _ usecase.VehicleRepository = (*vehicleGorm)(nil)

// NewVehicleGormRepository は指定されたDB接続でリポジトリを生成します。
func NewVehicleGormRepository(db *gorm.DB) *vehicleGorm {
	return &vehicleGorm{db: db}
}

// Create は車両を保存し、採番されたIDとタイムスタンプをvに反映します。
func (r *vehicleGorm) Create(ctx context.Context, v *entity.Vehicle) error {
	m := VehicleModelFromEntity(v)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*v = m.ToEntity()
	return nil
}

// FindByOwner は登録順(created_at, id)に所有者の車両を返します。
func (r *vehicleGorm) FindByOwner(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
	var models []VehicleModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Vehicle, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToEntity())
	}
	return out, nil
}
