package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
)

func newMarkFixture() (*fakeMarkStore, *fakeStudentResolver, *fakeReferenceStore, *fakeReferenceStore, MarkService) {
	marks := newFakeMarkStore()
	students := &fakeStudentResolver{ids: map[string]int64{}}
	lessons := newFakeReferenceStore(models.KindLesson, apperrors.ErrLessonNotFound)
	semesters := newFakeReferenceStore(models.KindSemester, apperrors.ErrSemesterNotFound)

	svc := NewMarkService(marks, students, lessons, semesters)
	return marks, students, lessons, semesters, svc
}

func TestMarkServiceCreate(t *testing.T) {
	marks, students, lessons, semesters, svc := newMarkFixture()
	students.ids["merdan-1"] = 7
	lesson := lessons.add("math", "Mathematics")
	semester := semesters.add("sem-1", "2025-2026 I")

	mark, err := svc.Create(context.Background(), MarkInput{
		Student:  "merdan-1",
		Lesson:   "math",
		Semester: "sem-1",
		MarkType: "hasap",
		Mark:     "5",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), mark.StudentID)
	assert.Equal(t, lesson.ID, mark.LessonID)
	assert.Equal(t, semester.ID, mark.SemesterID)
	assert.Equal(t, models.MarkTypeHasap, mark.MarkType)
	assert.Equal(t, models.MarkFive, mark.Mark)
	assert.NotEmpty(t, mark.Slug)
	assert.Len(t, marks.marks, 1)
}

func TestMarkServiceCreateValidation(t *testing.T) {
	_, students, lessons, semesters, svc := newMarkFixture()
	students.ids["merdan-1"] = 7
	lessons.add("math", "Mathematics")
	semesters.add("sem-1", "2025-2026 I")

	t.Run("invalid mark type", func(t *testing.T) {
		_, err := svc.Create(context.Background(), MarkInput{
			Student: "merdan-1", Lesson: "math", Semester: "sem-1",
			MarkType: "exam", Mark: "5",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMarkType)
	})

	t.Run("invalid mark value", func(t *testing.T) {
		_, err := svc.Create(context.Background(), MarkInput{
			Student: "merdan-1", Lesson: "math", Semester: "sem-1",
			MarkType: "hasap", Mark: "6",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMarkValue)
	})
}

func TestMarkServiceCreateUnknownReferences(t *testing.T) {
	_, students, lessons, semesters, svc := newMarkFixture()
	students.ids["merdan-1"] = 7
	lessons.add("math", "Mathematics")
	semesters.add("sem-1", "2025-2026 I")

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.Create(context.Background(), MarkInput{
			Student: "missing", Lesson: "math", Semester: "sem-1",
			MarkType: "hasap", Mark: "5",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		_, err := svc.Create(context.Background(), MarkInput{
			Student: "merdan-1", Lesson: "missing", Semester: "sem-1",
			MarkType: "hasap", Mark: "5",
		})
		assert.ErrorIs(t, err, apperrors.ErrLessonNotFound)
	})

	t.Run("unknown semester", func(t *testing.T) {
		_, err := svc.Create(context.Background(), MarkInput{
			Student: "merdan-1", Lesson: "math", Semester: "missing",
			MarkType: "hasap", Mark: "5",
		})
		assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
	})
}

func TestMarkServiceUpdate(t *testing.T) {
	marks, _, _, _, svc := newMarkFixture()
	marks.marks["mark-1"] = &models.Mark{
		Base:     models.Base{ID: 1, Slug: "mark-1", IsActive: true},
		MarkType: models.MarkTypeHasap,
		Mark:     models.MarkThree,
	}

	mark, err := svc.Update(context.Background(), "mark-1", "synag", "hasap")
	require.NoError(t, err)

	assert.Equal(t, models.MarkTypeSynag, mark.MarkType)
	assert.Equal(t, models.MarkHasap, mark.Mark)
}

func TestMarkServiceUpdateValidation(t *testing.T) {
	_, _, _, _, svc := newMarkFixture()

	_, err := svc.Update(context.Background(), "mark-1", "hasap", "hasap dal")
	assert.ErrorIs(t, err, apperrors.ErrInvalidMarkValue)
}

func TestMarkServiceUpdateNotFound(t *testing.T) {
	_, _, _, _, svc := newMarkFixture()

	_, err := svc.Update(context.Background(), "missing", "hasap", "5")
	assert.ErrorIs(t, err, apperrors.ErrMarkNotFound)
}
