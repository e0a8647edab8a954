package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readInitialSchema(t *testing.T) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	return regexp.MustCompile(`\s+`).ReplaceAllString(string(raw), " ")
}

// Deleting a catalog record keeps its students with the link cleared, while
// marks do not outlive their student, lesson or semester. The behavior lives
// in the DDL's referential actions, so the contract is asserted there.
func TestInitialSchemaReferentialActions(t *testing.T) {
	ddl := readInitialSchema(t)

	for _, fk := range []string{
		`faculty_id BIGINT REFERENCES faculty(id) ON DELETE SET NULL`,
		`group_id BIGINT REFERENCES "group"(id) ON DELETE SET NULL`,
		`scholarship_id BIGINT REFERENCES scholarship(id) ON DELETE SET NULL`,
	} {
		assert.Contains(t, ddl, fk)
	}

	for _, fk := range []string{
		`student_id BIGINT NOT NULL REFERENCES student(id) ON DELETE CASCADE`,
		`lesson_id BIGINT NOT NULL REFERENCES lesson(id) ON DELETE CASCADE`,
		`semester_id BIGINT NOT NULL REFERENCES semester(id) ON DELETE CASCADE`,
	} {
		assert.Contains(t, ddl, fk)
	}
}

func TestInitialSchemaMarkConstraints(t *testing.T) {
	ddl := readInitialSchema(t)

	assert.Contains(t, ddl, `mark_type VARCHAR(5) NOT NULL CHECK (mark_type IN ('hasap', 'synag'))`)
	assert.Contains(t, ddl, `mark VARCHAR(10) NOT NULL CHECK (mark IN ('hasap', 'hasap_dal', '5', '4', '3', '2'))`)
}

func TestInitialSchemaUniqueStudentID(t *testing.T) {
	ddl := readInitialSchema(t)

	// The default constraint name of this UNIQUE column is what the
	// repository maps to the duplicate-student-ID error.
	assert.Contains(t, ddl, `student_id VARCHAR(255) NOT NULL UNIQUE`)
}
