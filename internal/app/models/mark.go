package models

// MarkType distinguishes graded lessons from pass/fail ones.
type MarkType string

const (
	MarkTypeHasap MarkType = "hasap"
	MarkTypeSynag MarkType = "synag"
)

// Valid reports whether the mark type is one of the allowed values.
func (t MarkType) Valid() bool {
	switch t {
	case MarkTypeHasap, MarkTypeSynag:
		return true
	}
	return false
}

// MarkTypes lists the allowed mark types.
func MarkTypes() []MarkType {
	return []MarkType{MarkTypeHasap, MarkTypeSynag}
}

// MarkValue is the result recorded for a lesson: a numeric grade or a
// pass/fail outcome.
type MarkValue string

const (
	MarkHasap    MarkValue = "hasap"
	MarkHasapDal MarkValue = "hasap_dal"
	MarkFive     MarkValue = "5"
	MarkFour     MarkValue = "4"
	MarkThree    MarkValue = "3"
	MarkTwo      MarkValue = "2"
)

// Valid reports whether the mark value is one of the allowed values.
func (v MarkValue) Valid() bool {
	switch v {
	case MarkHasap, MarkHasapDal, MarkFive, MarkFour, MarkThree, MarkTwo:
		return true
	}
	return false
}

// MarkValues lists the allowed mark values.
func MarkValues() []MarkValue {
	return []MarkValue{MarkHasap, MarkHasapDal, MarkFive, MarkFour, MarkThree, MarkTwo}
}

// Mark records a student's result for a lesson in a semester. Deleting the
// student, the lesson or the semester removes the mark as well.
type Mark struct {
	Base
	StudentID  int64
	LessonID   int64
	SemesterID int64
	MarkType   MarkType
	Mark       MarkValue

	// Populated by list queries via joins.
	StudentName   string
	LessonTitle   string
	SemesterTitle string
}
