package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merdan/studentinfo/internal/app/models"
)

// Repositories holds all the repository instances.
type Repositories struct {
	Faculties    *ReferenceRepository
	Groups       *ReferenceRepository
	Scholarships *ReferenceRepository
	Lessons      *ReferenceRepository
	Semesters    *ReferenceRepository
	Students     *StudentRepository
	Marks        *MarkRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Faculties:    NewReferenceRepository(db, models.KindFaculty),
		Groups:       NewReferenceRepository(db, models.KindGroup),
		Scholarships: NewReferenceRepository(db, models.KindScholarship),
		Lessons:      NewReferenceRepository(db, models.KindLesson),
		Semesters:    NewReferenceRepository(db, models.KindSemester),
		Students:     NewStudentRepository(db),
		Marks:        NewMarkRepository(db),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a search term in ILIKE wildcards, escaping pattern
// metacharacters so the term itself matches literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// ReferenceRepositoryFor returns the repository bound to the given catalog,
// or nil for an unknown kind.
func (r *Repositories) ReferenceRepositoryFor(kind models.ReferenceKind) *ReferenceRepository {
	switch kind {
	case models.KindFaculty:
		return r.Faculties
	case models.KindGroup:
		return r.Groups
	case models.KindScholarship:
		return r.Scholarships
	case models.KindLesson:
		return r.Lessons
	case models.KindSemester:
		return r.Semesters
	default:
		return nil
	}
}
