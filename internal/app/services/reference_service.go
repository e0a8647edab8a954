package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
)

// referenceStore is the repository surface the reference service needs.
// *repositories.ReferenceRepository satisfies it.
type referenceStore interface {
	Kind() models.ReferenceKind
	Create(ctx context.Context, ref *models.Reference) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Reference, error)
	ListActive(ctx context.Context) ([]models.Reference, error)
	List(ctx context.Context, f repositories.ReferenceFilter) ([]models.Reference, error)
	UpdateTitle(ctx context.Context, slug, title string) error
	SetActive(ctx context.Context, slug string, active bool) error
	Delete(ctx context.Context, slug string) error
}

// ReferenceService defines the operations on one titled catalog.
type ReferenceService interface {
	Kind() models.ReferenceKind
	List(ctx context.Context) ([]models.Reference, error)
	AdminList(ctx context.Context, f repositories.ReferenceFilter) ([]models.Reference, error)
	Get(ctx context.Context, slug string) (*models.Reference, error)
	Create(ctx context.Context, title string) (*models.Reference, error)
	Rename(ctx context.Context, slug, title string) (*models.Reference, error)
	SetActive(ctx context.Context, slug string, active bool) error
	Delete(ctx context.Context, slug string) error
}

type referenceServiceImpl struct {
	repo referenceStore
}

// NewReferenceService creates a service over one catalog repository.
func NewReferenceService(repo referenceStore) ReferenceService {
	return &referenceServiceImpl{repo: repo}
}

func (s *referenceServiceImpl) Kind() models.ReferenceKind {
	return s.repo.Kind()
}

// validateTitle enforces the catalog's title length limit before any write.
func (s *referenceServiceImpl) validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if maxLen := s.repo.Kind().MaxTitleLen(); utf8.RuneCountInString(title) > maxLen {
		return fmt.Errorf("%w: title cannot exceed %d characters", apperrors.ErrValidationFailed, maxLen)
	}
	return nil
}

func (s *referenceServiceImpl) List(ctx context.Context) ([]models.Reference, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s list: %w", s.Kind(), err)
	}
	return records, nil
}

func (s *referenceServiceImpl) AdminList(ctx context.Context, f repositories.ReferenceFilter) ([]models.Reference, error) {
	records, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s list: %w", s.Kind(), err)
	}
	return records, nil
}

func (s *referenceServiceImpl) Get(ctx context.Context, slug string) (*models.Reference, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *referenceServiceImpl) Create(ctx context.Context, title string) (*models.Reference, error) {
	if err := s.validateTitle(title); err != nil {
		return nil, err
	}

	ref := &models.Reference{Title: strings.TrimSpace(title)}
	if _, err := s.repo.Create(ctx, ref); err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, ref.Slug)
}

func (s *referenceServiceImpl) Rename(ctx context.Context, slug, title string) (*models.Reference, error) {
	if err := s.validateTitle(title); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTitle(ctx, slug, strings.TrimSpace(title)); err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *referenceServiceImpl) SetActive(ctx context.Context, slug string, active bool) error {
	return s.repo.SetActive(ctx, slug, active)
}

func (s *referenceServiceImpl) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
