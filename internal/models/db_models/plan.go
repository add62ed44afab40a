package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Plan is a travel plan owned by a single account. The optional list
// columns are stored as NULL when empty so they disappear from the JSON
// payload instead of coming back as empty arrays.
type Plan struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	Place       string         `gorm:"not null" json:"place"`
	Duration    int            `gorm:"not null" json:"duration"`
	Name        string         `json:"name"`
	Image       string         `gorm:"not null;default:''" json:"image"`
	Description *string        `json:"description,omitempty"`
	Activities  pq.StringArray `gorm:"type:text[]" json:"activities,omitempty"`
	Attractions pq.StringArray `gorm:"type:text[]" json:"attractions,omitempty"`
	Foods       pq.StringArray `gorm:"type:text[]" json:"foods,omitempty"`
	PackingList pq.StringArray `gorm:"type:text[]" json:"packing_list,omitempty"`
}
