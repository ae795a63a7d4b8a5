package dto

// ResultRequest asks for the grades of one student in one semester
type ResultRequest struct {
	StudentID int64  `json:"student_id" example:"1"`
	Semester  string `json:"semester" example:"FALL-2024"`
}

// GradeMarks is the recorded outcome for one course
type GradeMarks struct {
	Grade string  `json:"grade" example:"A"`
	Marks float64 `json:"marks" example:"90"`
}

// ResultResponse maps course codes to grade/marks for the requested semester
type ResultResponse struct {
	GradeAndMarks map[string]GradeMarks `json:"gradeAndMarks"`
}
