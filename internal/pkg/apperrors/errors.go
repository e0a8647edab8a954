package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrSlugExists signals a collision of the generated public identifier.
	// Slugs carry UUID entropy, so this is treated as fatal rather than retried.
	ErrSlugExists = errors.New("slug already exists")
)

// Entity not-found errors. Messages double as the user-visible "detail" text.
var (
	ErrFacultyNotFound     = errors.New("Faculty not found")
	ErrGroupNotFound       = errors.New("Group not found")
	ErrScholarshipNotFound = errors.New("Scholarship not found")
	ErrLessonNotFound      = errors.New("Lesson not found")
	ErrSemesterNotFound    = errors.New("Semester not found")
	ErrStudentNotFound     = errors.New("Student not found")
	ErrMarkNotFound        = errors.New("Mark not found")
)

// Student errors
var (
	ErrStudentIDExists = errors.New("student ID already exists")
)

// Mark errors
var (
	ErrInvalidMarkType  = errors.New("invalid mark type")
	ErrInvalidMarkValue = errors.New("invalid mark value")
)

// ErrRelatedNotFound is returned when a write references a faculty, group,
// scholarship, student, lesson or semester that does not exist.
var ErrRelatedNotFound = errors.New("related record not found")
