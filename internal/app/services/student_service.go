package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
	"github.com/merdan/studentinfo/internal/pkg/helpers"
)

// studentStore is the repository surface the student service needs.
// *repositories.StudentRepository satisfies it.
type studentStore interface {
	List(ctx context.Context, f repositories.StudentFilter, limit int, offset uint64) ([]models.Student, error)
	Count(ctx context.Context, f repositories.StudentFilter) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Student, error)
	AdminGetBySlug(ctx context.Context, slug string) (*models.Student, error)
	AdminList(ctx context.Context, f repositories.AdminStudentFilter) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	SetActive(ctx context.Context, slug string, active bool) error
	Delete(ctx context.Context, slug string) error
}

// StudentInput carries the administrative write fields for a student.
// Faculty, group and scholarship are reference slugs; empty means unset.
// ProfilePicture is the stored file path, nil to keep the current one on
// update.
type StudentInput struct {
	FirstName      string
	LastName       string
	StudentID      string
	Faculty        string
	Group          string
	Scholarship    string
	ProfilePicture *string
}

// StudentService defines student operations.
type StudentService interface {
	// List returns one page of active students plus the total match count.
	List(ctx context.Context, f repositories.StudentFilter, page, pageSize int) ([]models.Student, int64, error)
	// ListAll returns every active student matching the filter, unpaginated.
	ListAll(ctx context.Context, f repositories.StudentFilter) ([]models.Student, error)
	GetBySlug(ctx context.Context, slug string) (*models.Student, error)
	AdminGetBySlug(ctx context.Context, slug string) (*models.Student, error)
	AdminList(ctx context.Context, f repositories.AdminStudentFilter) ([]models.Student, error)
	Create(ctx context.Context, input StudentInput) (*models.Student, error)
	Update(ctx context.Context, slug string, input StudentInput) (*models.Student, error)
	SetActive(ctx context.Context, slug string, active bool) error
	Delete(ctx context.Context, slug string) error
}

type studentServiceImpl struct {
	students     studentStore
	faculties    referenceStore
	groups       referenceStore
	scholarships referenceStore
}

// NewStudentService creates a new student service instance.
func NewStudentService(students studentStore, faculties, groups, scholarships referenceStore) StudentService {
	return &studentServiceImpl{
		students:     students,
		faculties:    faculties,
		groups:       groups,
		scholarships: scholarships,
	}
}

func (s *studentServiceImpl) List(ctx context.Context, f repositories.StudentFilter, page, pageSize int) ([]models.Student, int64, error) {
	total, err := s.students.Count(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	limit, offset := helpers.PageBounds(page, pageSize)
	students, err := s.students.List(ctx, f, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, total, nil
}

func (s *studentServiceImpl) ListAll(ctx context.Context, f repositories.StudentFilter) ([]models.Student, error) {
	students, err := s.students.List(ctx, f, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

func (s *studentServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.Student, error) {
	return s.students.GetBySlug(ctx, slug)
}

func (s *studentServiceImpl) AdminGetBySlug(ctx context.Context, slug string) (*models.Student, error) {
	return s.students.AdminGetBySlug(ctx, slug)
}

func (s *studentServiceImpl) AdminList(ctx context.Context, f repositories.AdminStudentFilter) ([]models.Student, error) {
	return s.students.AdminList(ctx, f)
}

// validateInput checks the required name fields before any write.
func validateStudentInput(input StudentInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(input.StudentID) == "" {
		return fmt.Errorf("%w: student ID cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// resolveReference resolves an optional reference slug to its internal ID.
func resolveReference(ctx context.Context, repo referenceStore, slug string) (*int64, error) {
	if slug == "" {
		return nil, nil
	}
	ref, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &ref.ID, nil
}

func (s *studentServiceImpl) buildStudent(ctx context.Context, input StudentInput) (*models.Student, error) {
	facultyID, err := resolveReference(ctx, s.faculties, input.Faculty)
	if err != nil {
		return nil, err
	}
	groupID, err := resolveReference(ctx, s.groups, input.Group)
	if err != nil {
		return nil, err
	}
	scholarshipID, err := resolveReference(ctx, s.scholarships, input.Scholarship)
	if err != nil {
		return nil, err
	}

	return &models.Student{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		StudentID:      strings.TrimSpace(input.StudentID),
		ProfilePicture: input.ProfilePicture,
		FacultyID:      facultyID,
		GroupID:        groupID,
		ScholarshipID:  scholarshipID,
	}, nil
}

func (s *studentServiceImpl) Create(ctx context.Context, input StudentInput) (*models.Student, error) {
	if err := validateStudentInput(input); err != nil {
		return nil, err
	}

	student, err := s.buildStudent(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return s.students.AdminGetBySlug(ctx, student.Slug)
}

func (s *studentServiceImpl) Update(ctx context.Context, slug string, input StudentInput) (*models.Student, error) {
	if err := validateStudentInput(input); err != nil {
		return nil, err
	}

	current, err := s.students.AdminGetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	student, err := s.buildStudent(ctx, input)
	if err != nil {
		return nil, err
	}

	// The slug is immutable; a missing picture keeps the stored one.
	student.Slug = current.Slug
	if student.ProfilePicture == nil {
		student.ProfilePicture = current.ProfilePicture
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.students.AdminGetBySlug(ctx, slug)
}

func (s *studentServiceImpl) SetActive(ctx context.Context, slug string, active bool) error {
	return s.students.SetActive(ctx, slug, active)
}

func (s *studentServiceImpl) Delete(ctx context.Context, slug string) error {
	return s.students.Delete(ctx, slug)
}
