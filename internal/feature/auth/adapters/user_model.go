package adapters

import (
	"time"

	"gorm.io/gorm"

	"digital_mechanic/internal/feature/auth/domain/entity"
	"digital_mechanic/internal/platform/objectid"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID        string `gorm:"primaryKey;size:24"`
	Name      string `gorm:"size:255"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns an object id when none is set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = objectid.New()
	}
	return nil
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
