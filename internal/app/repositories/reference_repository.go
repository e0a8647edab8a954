package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
	"github.com/merdan/studentinfo/internal/pkg/dberrors"
	"github.com/merdan/studentinfo/internal/pkg/logger"
	"github.com/merdan/studentinfo/internal/pkg/slug"
)

// ReferenceFilter narrows administrative catalog listings.
type ReferenceFilter struct {
	IsActive *bool
	Search   string // case-insensitive substring match on title
}

// ReferenceRepository handles database operations for one titled catalog
// (faculty, group, scholarship, lesson or semester). The catalogs share a
// schema, so one repository serves all five, bound to its table at
// construction.
type ReferenceRepository struct {
	db   *pgxpool.Pool
	sb   squirrel.StatementBuilderType
	kind models.ReferenceKind
}

// NewReferenceRepository creates a repository bound to the given catalog.
func NewReferenceRepository(db *pgxpool.Pool, kind models.ReferenceKind) *ReferenceRepository {
	return &ReferenceRepository{
		db:   db,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		kind: kind,
	}
}

// Kind returns the catalog this repository is bound to.
func (r *ReferenceRepository) Kind() models.ReferenceKind {
	return r.kind
}

// table returns the quoted table name. "group" is reserved in PostgreSQL,
// so every catalog table is referenced quoted.
func (r *ReferenceRepository) table() string {
	return `"` + r.kind.Table() + `"`
}

// notFound returns the catalog's not-found sentinel.
func (r *ReferenceRepository) notFound() error {
	switch r.kind {
	case models.KindFaculty:
		return apperrors.ErrFacultyNotFound
	case models.KindGroup:
		return apperrors.ErrGroupNotFound
	case models.KindScholarship:
		return apperrors.ErrScholarshipNotFound
	case models.KindLesson:
		return apperrors.ErrLessonNotFound
	case models.KindSemester:
		return apperrors.ErrSemesterNotFound
	default:
		return apperrors.ErrResourceNotFound
	}
}

// referenceConditions translates an administrative filter into predicates.
func referenceConditions(f ReferenceFilter) squirrel.And {
	cond := squirrel.And{}
	if f.IsActive != nil {
		cond = append(cond, squirrel.Eq{"is_active": *f.IsActive})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		cond = append(cond, squirrel.ILike{"title": likePattern(s)})
	}
	return cond
}

// Create inserts a new catalog record, assigning a slug when none is set.
// The slug is never regenerated afterwards.
func (r *ReferenceRepository) Create(ctx context.Context, ref *models.Reference) (int64, error) {
	if ref.Slug == "" {
		ref.Slug = slug.New()
	}

	sqlStr, args, err := r.sb.Insert(r.table()).
		Columns("title", "slug").
		Values(ref.Title, ref.Slug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create %s query: %w", r.kind, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrSlugExists
		}
		logger.Error().Err(err).Str("table", r.kind.Table()).Msg("Error executing create query")
		return 0, fmt.Errorf("error creating %s: %w", r.kind, err)
	}

	ref.ID = id
	return id, nil
}

// GetBySlug retrieves a catalog record by its public identifier, regardless
// of its active state. Used for administrative lookups and for resolving
// reference slugs on writes.
func (r *ReferenceRepository) GetBySlug(ctx context.Context, slugVal string) (*models.Reference, error) {
	sqlStr, args, err := r.sb.Select("id", "title", "slug", "is_active", "created_at", "updated_at").
		From(r.table()).
		Where(squirrel.Eq{"slug": slugVal}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", r.kind, err)
	}

	ref := &models.Reference{}
	err = r.db.QueryRow(ctx, sqlStr, args...).
		Scan(&ref.ID, &ref.Title, &ref.Slug, &ref.IsActive, &ref.CreatedAt, &ref.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, r.notFound()
		}
		logger.Error().Err(err).Str("table", r.kind.Table()).Str("slug", slugVal).Msg("Error scanning row")
		return nil, fmt.Errorf("error getting %s by slug: %w", r.kind, err)
	}

	return ref, nil
}

// ListActive retrieves every active record, newest first. This is the public
// list endpoint's query.
func (r *ReferenceRepository) ListActive(ctx context.Context) ([]models.Reference, error) {
	active := true
	return r.List(ctx, ReferenceFilter{IsActive: &active})
}

// List retrieves catalog records matching the filter, newest first.
func (r *ReferenceRepository) List(ctx context.Context, f ReferenceFilter) ([]models.Reference, error) {
	sqlStr, args, err := r.sb.Select("id", "title", "slug", "is_active", "created_at", "updated_at").
		From(r.table()).
		Where(referenceConditions(f)).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", r.kind, err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.kind.Table()).Msg("Error executing list query")
		return nil, fmt.Errorf("error querying %s list: %w", r.kind, err)
	}
	defer rows.Close()

	records := []models.Reference{}
	for rows.Next() {
		var ref models.Reference
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Slug, &ref.IsActive, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", r.kind, err)
		}
		records = append(records, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.kind, err)
	}

	return records, nil
}

// UpdateTitle renames a catalog record. The slug stays as assigned at
// creation.
func (r *ReferenceRepository) UpdateTitle(ctx context.Context, slugVal, title string) error {
	sqlStr, args, err := r.sb.Update(r.table()).
		Set("title", title).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update %s query: %w", r.kind, err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.kind.Table()).Str("slug", slugVal).Msg("Error executing update query")
		return fmt.Errorf("error updating %s: %w", r.kind, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.notFound()
	}
	return nil
}

// SetActive flips the soft-delete flag.
func (r *ReferenceRepository) SetActive(ctx context.Context, slugVal string, active bool) error {
	sqlStr, args, err := r.sb.Update(r.table()).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set active %s query: %w", r.kind, err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error setting %s active flag: %w", r.kind, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.notFound()
	}
	return nil
}

// Delete physically removes a catalog record. Referencing students keep
// their rows with the reference cleared (ON DELETE SET NULL); referencing
// marks are removed for lessons and semesters (ON DELETE CASCADE).
func (r *ReferenceRepository) Delete(ctx context.Context, slugVal string) error {
	sqlStr, args, err := r.sb.Delete(r.table()).
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete %s query: %w", r.kind, err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.kind.Table()).Str("slug", slugVal).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s: %w", r.kind, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.notFound()
	}
	return nil
}
