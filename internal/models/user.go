package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an administrator account.
// Accounts are only created by the startup seed; there is no registration flow.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"type:text;not null" json:"full_name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"` // Login identifier
	Password string `gorm:"type:text;not null" json:"-"`       // bcrypt hash, never serialized
}

// BeforeCreate is a GORM hook that runs before a record is inserted.
// It generates a new UUID for the user if the ID is not set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
