package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Opportunity is a volunteer program offering one or more shifts.
// Deleting an opportunity cascades to its shifts and their signups via an
// explicit ordered transaction in the repository, not a database cascade.
type Opportunity struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Description    string    `json:"description" gorm:"type:text"`
	Location       string    `json:"location" gorm:"size:255"`
	OrganizationID uuid.UUID `json:"organizationId" gorm:"type:char(36);not null;index"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relations
	Shifts []Shift `json:"shifts,omitempty" gorm:"foreignKey:OpportunityID"`

	// ShiftCount is populated by list queries, not a column.
	ShiftCount int64 `json:"shiftCount,omitempty" gorm:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
