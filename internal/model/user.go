package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleVolunteer Role = "volunteer"
	RoleInactive  Role = "inactive"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleVolunteer, RoleInactive:
		return true
	}
	return false
}

// In reports whether r is in the allowed set.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// User represents a member of an organization. Volunteers must have both
// HasBackgroundCheck and HasAttendedOrientation set before they may sign
// up for shifts.
type User struct {
	ID                     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name                   string    `json:"name" gorm:"size:255;not null"`
	Email                  string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone                  string    `json:"phone" gorm:"size:50"`
	PasswordHash           string    `json:"-" gorm:"size:255;not null"`
	Role                   Role      `json:"role" gorm:"type:varchar(20);not null;default:'volunteer';index"`
	OrganizationID         uuid.UUID `json:"organizationId" gorm:"type:char(36);not null;index"`
	HasBackgroundCheck     bool      `json:"hasBackgroundCheck" gorm:"default:false"`
	HasAttendedOrientation bool      `json:"hasAttendedOrientation" gorm:"default:false"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`

	// Relations
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	ShiftSignups []ShiftSignup `json:"shiftSignups,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserSummary is the reduced user shape embedded in signup, attendance and
// kiosk responses.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone,omitempty"`
}

// Summary returns the reduced shape of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
