package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Email is the
// canonical login identifier; username is derived from the email local part
// when not supplied at registration.
type User struct {
	ID               int64      `json:"id" db:"id" example:"1"`
	Email            string     `json:"email" db:"email" example:"student@campus.edu"`
	Username         string     `json:"username" db:"username" example:"student"`
	Password         string     `json:"-" db:"password"`
	FirstName        string     `json:"firstName" db:"first_name" example:"John"`
	LastName         string     `json:"lastName" db:"last_name" example:"Doe"`
	IsStudent        bool       `json:"isStudent" db:"is_student" example:"true"`
	IsStaff          bool       `json:"isStaff" db:"is_staff" example:"false"`
	IsSuperuser      bool       `json:"isSuperuser" db:"is_superuser" example:"false"`
	IsActive         bool       `json:"isActive" db:"is_active" example:"true"`
	ProfilePhotoPath *string    `json:"profilePhoto,omitempty" db:"profile_photo_path"`
	PhoneNumber      *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}
