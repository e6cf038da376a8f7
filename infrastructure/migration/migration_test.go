package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embeddedMigrations, migrationsDir)
	require.NoError(t, err)

	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Positive(t, ups)
	assert.Equal(t, ups, downs)

	schema, err := fs.ReadFile(embeddedMigrations, migrationsDir+"/000001_init.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"tiers", "clientes", "projetos", "impostos", "registros_mensais", "users", "user_tiers", "audit_logs"} {
		assert.Contains(t, string(schema), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}

func TestRun_SemConexao(t *testing.T) {
	assert.Error(t, Run(nil))
}
