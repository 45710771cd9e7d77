package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // Required for pq.StringArray
	"gorm.io/gorm"
)

// Triage statuses a complaint moves through.
const (
	StatusOpen       = "open"
	StatusInProgress = "in progress"
	StatusClosed     = "closed"
)

// ValidStatus reports whether s is one of the three triage statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Complaint is a citizen-submitted record. Images are attached once at
// creation; afterwards only Status changes until the record is deleted.
type Complaint struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Images      pq.StringArray `gorm:"type:text[];not null" json:"images"` // Stored file paths, 1..3
	Status      string         `gorm:"type:text;not null" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// BeforeCreate is a GORM hook that fills in the UUID and the default status
// before the record is inserted.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = StatusOpen
	}
	return
}
