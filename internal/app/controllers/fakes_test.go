package controllers

import (
	"context"
	"mime/multipart"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/app/services"
)

// stubReferenceService is a canned services.ReferenceService.
type stubReferenceService struct {
	kind    models.ReferenceKind
	records []models.Reference
	record  *models.Reference
	err     error

	lastFilter repositories.ReferenceFilter
	lastSlug   string
	lastTitle  string
	lastActive *bool
}

func (s *stubReferenceService) Kind() models.ReferenceKind { return s.kind }

func (s *stubReferenceService) List(ctx context.Context) ([]models.Reference, error) {
	return s.records, s.err
}

func (s *stubReferenceService) AdminList(ctx context.Context, f repositories.ReferenceFilter) ([]models.Reference, error) {
	s.lastFilter = f
	return s.records, s.err
}

func (s *stubReferenceService) Get(ctx context.Context, slug string) (*models.Reference, error) {
	s.lastSlug = slug
	return s.record, s.err
}

func (s *stubReferenceService) Create(ctx context.Context, title string) (*models.Reference, error) {
	s.lastTitle = title
	return s.record, s.err
}

func (s *stubReferenceService) Rename(ctx context.Context, slug, title string) (*models.Reference, error) {
	s.lastSlug = slug
	s.lastTitle = title
	return s.record, s.err
}

func (s *stubReferenceService) SetActive(ctx context.Context, slug string, active bool) error {
	s.lastSlug = slug
	s.lastActive = &active
	return s.err
}

func (s *stubReferenceService) Delete(ctx context.Context, slug string) error {
	s.lastSlug = slug
	return s.err
}

// stubStudentService is a canned services.StudentService.
type stubStudentService struct {
	students []models.Student
	student  *models.Student
	total    int64
	err      error

	lastFilter      repositories.StudentFilter
	lastAdminFilter repositories.AdminStudentFilter
	lastPage        int
	lastPageSize    int
	lastSlug        string
	lastInput       services.StudentInput
	lastActive      *bool
	deleted         []string
}

func (s *stubStudentService) List(ctx context.Context, f repositories.StudentFilter, page, pageSize int) ([]models.Student, int64, error) {
	s.lastFilter = f
	s.lastPage = page
	s.lastPageSize = pageSize
	return s.students, s.total, s.err
}

func (s *stubStudentService) ListAll(ctx context.Context, f repositories.StudentFilter) ([]models.Student, error) {
	s.lastFilter = f
	return s.students, s.err
}

func (s *stubStudentService) GetBySlug(ctx context.Context, slug string) (*models.Student, error) {
	s.lastSlug = slug
	return s.student, s.err
}

func (s *stubStudentService) AdminGetBySlug(ctx context.Context, slug string) (*models.Student, error) {
	s.lastSlug = slug
	return s.student, s.err
}

func (s *stubStudentService) AdminList(ctx context.Context, f repositories.AdminStudentFilter) ([]models.Student, error) {
	s.lastAdminFilter = f
	return s.students, s.err
}

func (s *stubStudentService) Create(ctx context.Context, input services.StudentInput) (*models.Student, error) {
	s.lastInput = input
	return s.student, s.err
}

func (s *stubStudentService) Update(ctx context.Context, slug string, input services.StudentInput) (*models.Student, error) {
	s.lastSlug = slug
	s.lastInput = input
	return s.student, s.err
}

func (s *stubStudentService) SetActive(ctx context.Context, slug string, active bool) error {
	s.lastSlug = slug
	s.lastActive = &active
	return s.err
}

func (s *stubStudentService) Delete(ctx context.Context, slug string) error {
	s.deleted = append(s.deleted, slug)
	return s.err
}

// stubMarkService is a canned services.MarkService.
type stubMarkService struct {
	marks []models.Mark
	mark  *models.Mark
	err   error

	lastFilter      repositories.MarkFilter
	lastAdminFilter repositories.AdminMarkFilter
	lastInput       services.MarkInput
	lastSlug        string
	lastActive      *bool
}

func (s *stubMarkService) List(ctx context.Context, f repositories.MarkFilter) ([]models.Mark, error) {
	s.lastFilter = f
	return s.marks, s.err
}

func (s *stubMarkService) AdminList(ctx context.Context, f repositories.AdminMarkFilter) ([]models.Mark, error) {
	s.lastAdminFilter = f
	return s.marks, s.err
}

func (s *stubMarkService) Create(ctx context.Context, input services.MarkInput) (*models.Mark, error) {
	s.lastInput = input
	return s.mark, s.err
}

func (s *stubMarkService) Update(ctx context.Context, slug, markType, mark string) (*models.Mark, error) {
	s.lastSlug = slug
	return s.mark, s.err
}

func (s *stubMarkService) SetActive(ctx context.Context, slug string, active bool) error {
	s.lastSlug = slug
	s.lastActive = &active
	return s.err
}

func (s *stubMarkService) Delete(ctx context.Context, slug string) error {
	s.lastSlug = slug
	return s.err
}

// stubStorage records file operations instead of touching the filesystem.
type stubStorage struct {
	savedPath string
	saveErr   error
	saved     []string
	deleted   []string
}

func (s *stubStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, subPath+"/"+fileHeader.Filename)
	return s.savedPath, nil
}

func (s *stubStorage) DeleteFile(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}
