package services

// Services defined in this package:
// - AuthService: student registration and credential authentication
// - StudentService: profile retrieval
// - ResultService: enrollment/result aggregation per semester
// - CourseService: course catalog access
