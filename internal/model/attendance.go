package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is a check-in session. CheckOut == nil means the session is
// open. A user has at most one open session at a time; a new check-in
// auto-closes any prior one.
type Attendance struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:char(36);not null;index"`
	ShiftID   uuid.UUID  `json:"shiftId" gorm:"type:char(36);not null;index"`
	CheckIn   time.Time  `json:"checkIn" gorm:"not null"`
	CheckOut  *time.Time `json:"checkOut"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Relations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Shift *Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Open reports whether the session has not been checked out.
func (a *Attendance) Open() bool {
	return a.CheckOut == nil
}
