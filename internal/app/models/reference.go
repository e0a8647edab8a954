package models

// Reference is a titled catalog record: faculty, group, scholarship, lesson
// or semester. The five catalogs share one shape and differ only in their
// table and title length limit, so a single struct backs them all.
type Reference struct {
	Base
	Title string
}

// ReferenceKind identifies which catalog a Reference belongs to.
type ReferenceKind string

const (
	KindFaculty     ReferenceKind = "faculty"
	KindGroup       ReferenceKind = "group"
	KindScholarship ReferenceKind = "scholarship"
	KindLesson      ReferenceKind = "lesson"
	KindSemester    ReferenceKind = "semester"
)

// MaxTitleLen returns the title length limit for the catalog.
func (k ReferenceKind) MaxTitleLen() int {
	switch k {
	case KindGroup:
		return 3
	case KindScholarship:
		return 20
	case KindLesson, KindSemester:
		return 100
	default:
		return 255
	}
}

// Table returns the table name backing the catalog. "group" is a reserved
// word in PostgreSQL, so queries must quote it.
func (k ReferenceKind) Table() string {
	return string(k)
}

// DisplayName returns the capitalized entity name used in error messages.
func (k ReferenceKind) DisplayName() string {
	switch k {
	case KindFaculty:
		return "Faculty"
	case KindGroup:
		return "Group"
	case KindScholarship:
		return "Scholarship"
	case KindLesson:
		return "Lesson"
	case KindSemester:
		return "Semester"
	default:
		return string(k)
	}
}
