package dto

import "time"

// StudentResponse represents a student's profile without credential material
type StudentResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PhoneNo        string     `json:"phn_no"`
	Address        string     `json:"address"`
	Program        string     `json:"program"`
	RegistrationNo string     `json:"registration_no"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
}
