package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
	"github.com/merdan/studentinfo/internal/pkg/dberrors"
	"github.com/merdan/studentinfo/internal/pkg/logger"
	"github.com/merdan/studentinfo/internal/pkg/slug"
)

// MarkFilter narrows public mark listings. Each field is an exact reference
// slug; empty fields add no constraint.
type MarkFilter struct {
	Student  string
	Semester string
}

// AdminMarkFilter narrows administrative mark listings.
type AdminMarkFilter struct {
	Student  string
	Lesson   string
	Semester string
	IsActive *bool
}

// MarkRepository handles mark database operations.
type MarkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMarkRepository creates a new MarkRepository.
func NewMarkRepository(db *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// markSelect builds the base select. Marks always join their student, lesson
// and semester: the lesson and semester titles are part of the response
// payload, and the student name appears on the administrative surface.
func (r *MarkRepository) markSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.student_id", "m.lesson_id", "m.semester_id",
		"m.mark_type", "m.mark", "m.slug", "m.is_active", "m.created_at", "m.updated_at",
		"st.first_name || ' ' || st.last_name AS student_name",
		"l.title AS lesson_title",
		"sem.title AS semester_title",
	).
		From("marks m").
		Join("student st ON m.student_id = st.id").
		Join("lesson l ON m.lesson_id = l.id").
		Join("semester sem ON m.semester_id = sem.id")
}

// markConditions translates a public filter into predicates.
func markConditions(f MarkFilter) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"m.is_active": true}}
	if f.Student != "" {
		cond = append(cond, squirrel.Eq{"st.slug": f.Student})
	}
	if f.Semester != "" {
		cond = append(cond, squirrel.Eq{"sem.slug": f.Semester})
	}
	return cond
}

func scanMark(row pgx.Row) (*models.Mark, error) {
	var m models.Mark
	err := row.Scan(
		&m.ID, &m.StudentID, &m.LessonID, &m.SemesterID,
		&m.MarkType, &m.Mark, &m.Slug, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		&m.StudentName, &m.LessonTitle, &m.SemesterTitle,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves active marks matching the filter, newest first.
func (r *MarkRepository) List(ctx context.Context, f MarkFilter) ([]models.Mark, error) {
	sqlStr, args, err := r.markSelect().
		Where(markConditions(f)).
		OrderBy("m.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list marks query: %w", err)
	}

	return r.queryMarks(ctx, sqlStr, args)
}

// AdminList retrieves marks matching the administrative filter.
func (r *MarkRepository) AdminList(ctx context.Context, f AdminMarkFilter) ([]models.Mark, error) {
	cond := squirrel.And{}
	if f.IsActive != nil {
		cond = append(cond, squirrel.Eq{"m.is_active": *f.IsActive})
	}
	if f.Student != "" {
		cond = append(cond, squirrel.Eq{"st.slug": f.Student})
	}
	if f.Lesson != "" {
		cond = append(cond, squirrel.Eq{"l.slug": f.Lesson})
	}
	if f.Semester != "" {
		cond = append(cond, squirrel.Eq{"sem.slug": f.Semester})
	}

	sqlStr, args, err := r.markSelect().
		Where(cond).
		OrderBy("m.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin list marks query: %w", err)
	}

	return r.queryMarks(ctx, sqlStr, args)
}

func (r *MarkRepository) queryMarks(ctx context.Context, sqlStr string, args []interface{}) ([]models.Mark, error) {
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing marks query")
		return nil, fmt.Errorf("error querying marks: %w", err)
	}
	defer rows.Close()

	marks := []models.Mark{}
	for rows.Next() {
		mark, err := scanMark(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning mark row: %w", err)
		}
		marks = append(marks, *mark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mark rows: %w", err)
	}

	return marks, nil
}

// GetBySlug retrieves a mark regardless of its active state.
func (r *MarkRepository) GetBySlug(ctx context.Context, slugVal string) (*models.Mark, error) {
	sqlStr, args, err := r.markSelect().
		Where(squirrel.Eq{"m.slug": slugVal}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get mark query: %w", err)
	}

	mark, err := scanMark(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarkNotFound
		}
		return nil, fmt.Errorf("error getting mark by slug: %w", err)
	}

	return mark, nil
}

// Create inserts a new mark, assigning a slug when none is set.
func (r *MarkRepository) Create(ctx context.Context, mark *models.Mark) (int64, error) {
	if mark.Slug == "" {
		mark.Slug = slug.New()
	}

	sqlStr, args, err := r.sb.Insert("marks").
		Columns("student_id", "lesson_id", "semester_id", "mark_type", "mark", "slug").
		Values(mark.StudentID, mark.LessonID, mark.SemesterID, mark.MarkType, mark.Mark, mark.Slug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create mark query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.ErrSlugExists
		case dberrors.IsForeignKeyViolation(err):
			return 0, apperrors.ErrRelatedNotFound
		case dberrors.IsCheckViolation(err):
			return 0, apperrors.ErrValidationFailed
		}
		logger.Error().Err(err).Msg("Error executing create mark query")
		return 0, fmt.Errorf("error creating mark: %w", err)
	}

	mark.ID = id
	return id, nil
}

// Update changes the recorded result by slug.
func (r *MarkRepository) Update(ctx context.Context, slugVal string, markType models.MarkType, mark models.MarkValue) error {
	sqlStr, args, err := r.sb.Update("marks").
		Set("mark_type", markType).
		Set("mark", mark).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update mark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrValidationFailed
		}
		logger.Error().Err(err).Str("slug", slugVal).Msg("Error executing update mark query")
		return fmt.Errorf("error updating mark: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarkNotFound
	}
	return nil
}

// SetActive flips the soft-delete flag.
func (r *MarkRepository) SetActive(ctx context.Context, slugVal string, active bool) error {
	sqlStr, args, err := r.sb.Update("marks").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set mark active query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error setting mark active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarkNotFound
	}
	return nil
}

// Delete physically removes a mark.
func (r *MarkRepository) Delete(ctx context.Context, slugVal string) error {
	sqlStr, args, err := r.sb.Delete("marks").
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete mark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("slug", slugVal).Msg("Error executing delete mark query")
		return fmt.Errorf("error deleting mark: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarkNotFound
	}
	return nil
}
