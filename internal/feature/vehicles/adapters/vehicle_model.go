package adapters

import (
	"time"

	"gorm.io/gorm"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/platform/objectid"
)

// VehicleModel はcarsテーブルのGORMモデルです。
type VehicleModel struct {
	ID        string    `gorm:"primaryKey;size:24"`
	UserID    string    `gorm:"size:24;not null;index:idx_cars_user_created,priority:1"`
	Make      string    `gorm:"size:255;not null"`
	Model     string    `gorm:"size:255;not null"`
	Year      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"index:idx_cars_user_created,priority:2"`
	UpdatedAt time.Time
}

// TableName はテーブル名を返します。
func (VehicleModel) TableName() string { return "cars" }

// BeforeCreate はIDが未設定の場合にObjectID形式のIDを採番します。
func (m *VehicleModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = objectid.New()
	}
	return nil
}

// ToEntity はモデルをドメインエンティティに変換します。
func (m *VehicleModel) ToEntity() entity.Vehicle {
	return entity.Vehicle{
		ID:        m.ID,
		OwnerID:   m.UserID,
		Make:      m.Make,
		Model:     m.Model,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// VehicleModelFromEntity はドメインエンティティからモデルを生成します。
func VehicleModelFromEntity(v *entity.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:        v.ID,
		UserID:    v.OwnerID,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
