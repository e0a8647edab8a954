package services

import (
	"context"
	"fmt"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
)

// markStore is the repository surface the mark service needs.
// *repositories.MarkRepository satisfies it.
type markStore interface {
	List(ctx context.Context, f repositories.MarkFilter) ([]models.Mark, error)
	AdminList(ctx context.Context, f repositories.AdminMarkFilter) ([]models.Mark, error)
	GetBySlug(ctx context.Context, slug string) (*models.Mark, error)
	Create(ctx context.Context, mark *models.Mark) (int64, error)
	Update(ctx context.Context, slug string, markType models.MarkType, mark models.MarkValue) error
	SetActive(ctx context.Context, slug string, active bool) error
	Delete(ctx context.Context, slug string) error
}

// studentResolver resolves a student slug to its internal ID.
type studentResolver interface {
	IDBySlug(ctx context.Context, slug string) (int64, error)
}

// MarkInput carries the administrative write fields for a mark. Student,
// lesson and semester are reference slugs.
type MarkInput struct {
	Student  string
	Lesson   string
	Semester string
	MarkType string
	Mark     string
}

// MarkService defines mark operations.
type MarkService interface {
	List(ctx context.Context, f repositories.MarkFilter) ([]models.Mark, error)
	AdminList(ctx context.Context, f repositories.AdminMarkFilter) ([]models.Mark, error)
	Create(ctx context.Context, input MarkInput) (*models.Mark, error)
	Update(ctx context.Context, slug, markType, mark string) (*models.Mark, error)
	SetActive(ctx context.Context, slug string, active bool) error
	Delete(ctx context.Context, slug string) error
}

type markServiceImpl struct {
	marks     markStore
	students  studentResolver
	lessons   referenceStore
	semesters referenceStore
}

// NewMarkService creates a new mark service instance.
func NewMarkService(marks markStore, students studentResolver, lessons, semesters referenceStore) MarkService {
	return &markServiceImpl{
		marks:     marks,
		students:  students,
		lessons:   lessons,
		semesters: semesters,
	}
}

func (s *markServiceImpl) List(ctx context.Context, f repositories.MarkFilter) ([]models.Mark, error) {
	marks, err := s.marks.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error retrieving marks: %w", err)
	}
	return marks, nil
}

func (s *markServiceImpl) AdminList(ctx context.Context, f repositories.AdminMarkFilter) ([]models.Mark, error) {
	marks, err := s.marks.AdminList(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error retrieving marks: %w", err)
	}
	return marks, nil
}

// validateMarkValues checks both enums at the boundary; the database CHECK
// constraints are the backstop.
func validateMarkValues(markType, mark string) (models.MarkType, models.MarkValue, error) {
	mt := models.MarkType(markType)
	if !mt.Valid() {
		return "", "", fmt.Errorf("%w: %q", apperrors.ErrInvalidMarkType, markType)
	}
	mv := models.MarkValue(mark)
	if !mv.Valid() {
		return "", "", fmt.Errorf("%w: %q", apperrors.ErrInvalidMarkValue, mark)
	}
	return mt, mv, nil
}

func (s *markServiceImpl) Create(ctx context.Context, input MarkInput) (*models.Mark, error) {
	mt, mv, err := validateMarkValues(input.MarkType, input.Mark)
	if err != nil {
		return nil, err
	}

	studentID, err := s.students.IDBySlug(ctx, input.Student)
	if err != nil {
		return nil, err
	}
	lesson, err := s.lessons.GetBySlug(ctx, input.Lesson)
	if err != nil {
		return nil, err
	}
	semester, err := s.semesters.GetBySlug(ctx, input.Semester)
	if err != nil {
		return nil, err
	}

	mark := &models.Mark{
		StudentID:  studentID,
		LessonID:   lesson.ID,
		SemesterID: semester.ID,
		MarkType:   mt,
		Mark:       mv,
	}
	if _, err := s.marks.Create(ctx, mark); err != nil {
		return nil, err
	}
	return s.marks.GetBySlug(ctx, mark.Slug)
}

func (s *markServiceImpl) Update(ctx context.Context, slug, markType, mark string) (*models.Mark, error) {
	mt, mv, err := validateMarkValues(markType, mark)
	if err != nil {
		return nil, err
	}

	if err := s.marks.Update(ctx, slug, mt, mv); err != nil {
		return nil, err
	}
	return s.marks.GetBySlug(ctx, slug)
}

func (s *markServiceImpl) SetActive(ctx context.Context, slug string, active bool) error {
	return s.marks.SetActive(ctx, slug, active)
}

func (s *markServiceImpl) Delete(ctx context.Context, slug string) error {
	return s.marks.Delete(ctx, slug)
}
