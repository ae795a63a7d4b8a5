package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the student
	RegistrationNo string     `json:"registrationNo" db:"registration_no" example:"2021-CS-042"`               // Business-unique registration number (immutable)
	Name           string     `json:"name" db:"name" example:"John Doe"`                                       // Student's full name
	Email          string     `json:"email" db:"email" example:"john.doe@school.edu"`                          // Student's email address
	Address        string     `json:"address" db:"address" example:"12 Campus Road"`                           // Postal address
	PhoneNo        string     `json:"phnNo" db:"phn_no" example:"+90-555-000-0000"`                            // Phone number
	Program        string     `json:"program" db:"program" example:"Computer Science"`                         // Degree program the student is enrolled in
	Password       string     `json:"-" db:"password"`                                                         // Hashed password (excluded from JSON)
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the student registered
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp of the last update
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
}
