package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/pkg/logger"
	"github.com/merdan/studentinfo/internal/pkg/slug"
)

// querier is the subset of pgx operations seeding needs. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so callers can run the seed inside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateDefaultData populates empty reference catalogs with a starter set so
// a fresh installation has something to attach students to.
func CreateDefaultData(ctx context.Context, q querier) error {
	defaults := map[models.ReferenceKind][]string{
		models.KindFaculty:     {"Computer Science", "Economics"},
		models.KindGroup:       {"101", "102"},
		models.KindScholarship: {"standard", "none"},
		models.KindLesson:      {"Mathematics", "Programming"},
		models.KindSemester:    {"2025-2026 I", "2025-2026 II"},
	}

	for kind, titles := range defaults {
		// "group" is reserved in PostgreSQL, so tables are referenced quoted.
		table := `"` + kind.Table() + `"`

		empty, err := tableEmpty(ctx, q, table)
		if err != nil {
			return err
		}
		if !empty {
			continue
		}

		for _, title := range titles {
			_, err := q.Exec(ctx,
				fmt.Sprintf(`INSERT INTO %s (title, slug) VALUES ($1, $2)`, table),
				title, slug.New())
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", kind, err)
			}
		}
		logger.Info().Str("catalog", string(kind)).Int("rows", len(titles)).Msg("Seeded default data")
	}

	return nil
}

func tableEmpty(ctx context.Context, q querier, table string) (bool, error) {
	var count int64
	if err := q.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count == 0, nil
}
