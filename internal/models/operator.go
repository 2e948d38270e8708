package models

import (
	"time"

	"gorm.io/gorm"
)

// Operator roles
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Operator is a back office user allowed to submit transfers.
type Operator struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Role         string `gorm:"default:'operator'"`
	TokenVersion int    `gorm:"default:1"`
	LastLoginAt  *time.Time
}
