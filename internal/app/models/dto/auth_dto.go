package dto

// RegisterRequest represents a student registration request.
// Field presence is validated by the auth service in a fixed order, so no
// binding:"required" tags here; gin only checks the JSON shape.
type RegisterRequest struct {
	Name           string `json:"name" example:"John Doe"`
	Email          string `json:"email" example:"john.doe@school.edu"`
	Password       string `json:"password" example:"s3cret-pass"`
	PhoneNo        string `json:"phn_no" example:"+90-555-000-0000"`
	Address        string `json:"address" example:"12 Campus Road"`
	RegistrationNo string `json:"registration_no" example:"2021-CS-042"`
	Program        string `json:"program" example:"Computer Science"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	RegistrationNo string `json:"registration_no" example:"2021-CS-042"`
	Password       string `json:"password" example:"s3cret-pass"`
}

// RegisterResponse is the public projection of a freshly registered student
// plus their session token. The password hash never appears here.
type RegisterResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNo        string `json:"phn_no"`
	Address        string `json:"address"`
	Program        string `json:"program"`
	RegistrationNo string `json:"registration_no"`
	Token          string `json:"token"`
	ExpiresIn      int64  `json:"expiresIn" example:"86400"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	RegistrationNo string `json:"registration_no"`
	Token          string `json:"token"`
	ExpiresIn      int64  `json:"expiresIn" example:"86400"`
}
