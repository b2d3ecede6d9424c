package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_UpAndDownPairs(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups[strings.TrimSuffix(n, ".up.sql")] = true
		case strings.HasSuffix(n, ".down.sql"):
			downs[strings.TrimSuffix(n, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", n)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrations_SchemaConstraints(t *testing.T) {
	initial, err := migrationsFS.ReadFile("migrations/000001_create_test_results.up.sql")
	require.NoError(t, err)
	sql := string(initial)
	assert.Contains(t, sql, "ON DELETE CASCADE")
	assert.Contains(t, sql, "UNIQUE (test_result_id, question_id)")
	assert.Contains(t, sql, "UNIQUE (test_result_id, category_name)")

	retakes, err := migrationsFS.ReadFile("migrations/000002_demographics_and_retakes.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(retakes), "DROP CONSTRAINT IF EXISTS test_results_email_key")
}
