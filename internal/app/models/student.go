package models

// Student represents an enrolled student. Faculty, group and scholarship are
// optional references; deleting any of them clears the corresponding field
// rather than removing the student.
type Student struct {
	Base
	FirstName      string
	LastName       string
	StudentID      string
	ProfilePicture *string

	FacultyID     *int64
	GroupID       *int64
	ScholarshipID *int64

	// Populated by list/detail queries via joins; nil when the reference is
	// unset or has been deleted.
	Faculty     *Reference
	Group       *Reference
	Scholarship *Reference
}

// FullName returns the student's display name.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
