// Package model contains the GORM persistence models mirroring the database
// schema. PostgreSQL generates UUIDs via uuid_generate_v7().
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and Username carry unique
// indexes; PasswordHash is never mapped into API responses.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
