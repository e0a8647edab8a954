package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
	"github.com/merdan/studentinfo/internal/pkg/dberrors"
	"github.com/merdan/studentinfo/internal/pkg/helpers"
	"github.com/merdan/studentinfo/internal/pkg/logger"
	"github.com/merdan/studentinfo/internal/pkg/slug"
)

// StudentFilter narrows public student listings. Each field is an exact
// reference slug; empty fields add no constraint.
type StudentFilter struct {
	Faculty     string
	Group       string
	Scholarship string
}

// AdminStudentFilter narrows administrative student listings.
type AdminStudentFilter struct {
	IsActive *bool
	Search   string // matches first name, last name or student ID
}

// StudentRepository handles student database operations.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// studentColumns are the selected columns for a student row with its
// references joined in.
var studentColumns = []string{
	"s.id", "s.first_name", "s.last_name", "s.profile_picture", "s.student_id",
	"s.slug", "s.is_active", "s.created_at", "s.updated_at",
	"f.id", "f.title", "f.slug",
	"g.id", "g.title", "g.slug",
	"sch.id", "sch.title", "sch.slug",
}

// studentSelect builds the base select with the three reference joins. The
// joins are LEFT so students keep appearing after a referenced faculty,
// group or scholarship is deleted.
func (r *StudentRepository) studentSelect() squirrel.SelectBuilder {
	return r.sb.Select(studentColumns...).
		From("student s").
		LeftJoin(`faculty f ON s.faculty_id = f.id`).
		LeftJoin(`"group" g ON s.group_id = g.id`).
		LeftJoin(`scholarship sch ON s.scholarship_id = sch.id`)
}

// studentConditions translates a public filter into predicates. Filtering on
// a joined slug column implicitly requires the reference to be set.
func studentConditions(f StudentFilter) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"s.is_active": true}}
	if f.Faculty != "" {
		cond = append(cond, squirrel.Eq{"f.slug": f.Faculty})
	}
	if f.Group != "" {
		cond = append(cond, squirrel.Eq{"g.slug": f.Group})
	}
	if f.Scholarship != "" {
		cond = append(cond, squirrel.Eq{"sch.slug": f.Scholarship})
	}
	return cond
}

// scanStudent reads one joined student row.
func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		s                   models.Student
		profilePicture      sql.NullString
		facID, grpID, schID sql.NullInt64
		facTitle, facSlug   sql.NullString
		grpTitle, grpSlug   sql.NullString
		schTitle, schSlug   sql.NullString
	)

	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &profilePicture, &s.StudentID,
		&s.Slug, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&facID, &facTitle, &facSlug,
		&grpID, &grpTitle, &grpSlug,
		&schID, &schTitle, &schSlug,
	)
	if err != nil {
		return nil, err
	}

	s.ProfilePicture = helpers.StringPtr(profilePicture)
	s.FacultyID = helpers.Int64Ptr(facID)
	s.GroupID = helpers.Int64Ptr(grpID)
	s.ScholarshipID = helpers.Int64Ptr(schID)

	if facID.Valid {
		s.Faculty = &models.Reference{Base: models.Base{ID: facID.Int64, Slug: facSlug.String}, Title: facTitle.String}
	}
	if grpID.Valid {
		s.Group = &models.Reference{Base: models.Base{ID: grpID.Int64, Slug: grpSlug.String}, Title: grpTitle.String}
	}
	if schID.Valid {
		s.Scholarship = &models.Reference{Base: models.Base{ID: schID.Int64, Slug: schSlug.String}, Title: schTitle.String}
	}

	return &s, nil
}

// List retrieves active students matching the filter, newest first. A
// non-positive limit returns the complete result set.
func (r *StudentRepository) List(ctx context.Context, f StudentFilter, limit int, offset uint64) ([]models.Student, error) {
	query := r.studentSelect().
		Where(studentConditions(f)).
		OrderBy("s.id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit)).Offset(offset)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	return r.queryStudents(ctx, sqlStr, args)
}

// Count returns the number of active students matching the filter.
func (r *StudentRepository) Count(ctx context.Context, f StudentFilter) (int64, error) {
	sqlStr, args, err := r.sb.Select("COUNT(*)").
		From("student s").
		LeftJoin(`faculty f ON s.faculty_id = f.id`).
		LeftJoin(`"group" g ON s.group_id = g.id`).
		LeftJoin(`scholarship sch ON s.scholarship_id = sch.id`).
		Where(studentConditions(f)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// GetBySlug retrieves a single active student with its references.
func (r *StudentRepository) GetBySlug(ctx context.Context, slugVal string) (*models.Student, error) {
	sqlStr, args, err := r.studentSelect().
		Where(squirrel.And{
			squirrel.Eq{"s.slug": slugVal},
			squirrel.Eq{"s.is_active": true},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("slug", slugVal).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by slug: %w", err)
	}

	return student, nil
}

// AdminGetBySlug retrieves a student regardless of its active state.
func (r *StudentRepository) AdminGetBySlug(ctx context.Context, slugVal string) (*models.Student, error) {
	sqlStr, args, err := r.studentSelect().
		Where(squirrel.Eq{"s.slug": slugVal}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by slug: %w", err)
	}

	return student, nil
}

// AdminList retrieves students matching the administrative filter.
func (r *StudentRepository) AdminList(ctx context.Context, f AdminStudentFilter) ([]models.Student, error) {
	cond := squirrel.And{}
	if f.IsActive != nil {
		cond = append(cond, squirrel.Eq{"s.is_active": *f.IsActive})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := likePattern(s)
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
			squirrel.ILike{"s.student_id": pattern},
		})
	}

	sqlStr, args, err := r.studentSelect().
		Where(cond).
		OrderBy("s.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin list students query: %w", err)
	}

	return r.queryStudents(ctx, sqlStr, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sqlStr string, args []interface{}) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a new student, assigning a slug when none is set.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	if student.Slug == "" {
		student.Slug = slug.New()
	}

	sqlStr, args, err := r.sb.Insert("student").
		Columns("first_name", "last_name", "profile_picture", "student_id",
			"faculty_id", "group_id", "scholarship_id", "slug").
		Values(student.FirstName, student.LastName,
			helpers.NullString(student.ProfilePicture), student.StudentID,
			helpers.NullInt64(student.FacultyID), helpers.NullInt64(student.GroupID),
			helpers.NullInt64(student.ScholarshipID), student.Slug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsUniqueViolationOn(err, "student_student_id_key"):
			return 0, apperrors.ErrStudentIDExists
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.ErrSlugExists
		case dberrors.IsForeignKeyViolation(err):
			return 0, apperrors.ErrRelatedNotFound
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	return id, nil
}

// Update rewrites a student's mutable fields by slug. The slug itself is
// immutable and never part of the update.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sqlStr, args, err := r.sb.Update("student").
		SetMap(map[string]interface{}{
			"first_name":      student.FirstName,
			"last_name":       student.LastName,
			"profile_picture": helpers.NullString(student.ProfilePicture),
			"student_id":      student.StudentID,
			"faculty_id":      helpers.NullInt64(student.FacultyID),
			"group_id":        helpers.NullInt64(student.GroupID),
			"scholarship_id":  helpers.NullInt64(student.ScholarshipID),
			"updated_at":      squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"slug": student.Slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolationOn(err, "student_student_id_key"):
			return apperrors.ErrStudentIDExists
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrRelatedNotFound
		}
		logger.Error().Err(err).Str("slug", student.Slug).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// SetActive flips the soft-delete flag.
func (r *StudentRepository) SetActive(ctx context.Context, slugVal string, active bool) error {
	sqlStr, args, err := r.sb.Update("student").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set student active query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error setting student active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete physically removes a student. Dependent marks go with it
// (ON DELETE CASCADE).
func (r *StudentRepository) Delete(ctx context.Context, slugVal string) error {
	sqlStr, args, err := r.sb.Delete("student").
		Where(squirrel.Eq{"slug": slugVal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("slug", slugVal).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// IDBySlug resolves a student slug to its internal identifier.
func (r *StudentRepository) IDBySlug(ctx context.Context, slugVal string) (int64, error) {
	sqlStr, args, err := r.sb.Select("id").
		From("student").
		Where(squirrel.Eq{"slug": slugVal}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build student id query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("error resolving student slug: %w", err)
	}
	return id, nil
}
