package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is the tenant boundary; every other entity is scoped to one.
type Organization struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	ContactEmail string    `json:"contactEmail" gorm:"size:255"`
	ContactPhone string    `json:"contactPhone" gorm:"size:50"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Users         []User        `json:"users,omitempty" gorm:"foreignKey:OrganizationID"`
	Opportunities []Opportunity `json:"opportunities,omitempty" gorm:"foreignKey:OrganizationID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
