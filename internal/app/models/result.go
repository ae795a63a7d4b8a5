package models

// Result records the grade and marks awarded for one enrollment.
type Result struct {
	ID           int64   `json:"id" db:"id"`
	EnrollmentID int64   `json:"enrollmentId" db:"enrollment_id"`
	Grade        string  `json:"grade" db:"grade" example:"A"`
	Marks        float64 `json:"marks" db:"marks" example:"90"`
}
