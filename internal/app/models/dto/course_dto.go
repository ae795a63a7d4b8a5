package dto

// CourseResponse represents a catalog course
type CourseResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code" example:"CS101"`
	Name string `json:"name" example:"Introduction to Programming"`
}
