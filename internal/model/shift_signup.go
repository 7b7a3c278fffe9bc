package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftSignup records a volunteer's intent to work a shift. The composite
// unique index is the authoritative guard against concurrent duplicate
// signups; the pre-checks in the service are advisory only.
type ShiftSignup struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ShiftID   uuid.UUID `json:"shiftId" gorm:"type:char(36);not null;uniqueIndex:idx_shift_user"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_shift_user"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Shift *Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *ShiftSignup) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
