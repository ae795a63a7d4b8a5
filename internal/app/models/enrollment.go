package models

// Enrollment links a student to a course for a given semester.
// The model permits multiple enrollments per student per semester.
type Enrollment struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"studentId" db:"student_id"`
	CourseID  int64  `json:"courseId" db:"course_id"`
	Semester  string `json:"semester" db:"semester" example:"FALL-2024"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
