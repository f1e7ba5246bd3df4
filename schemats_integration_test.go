//go:build integration

package schemats

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/schemats/internal/db"
)

func TestExtractAndGenerateSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	client, err := db.NewSQLiteClient(ctx, path)
	require.NoError(t, err)
	_, err = client.GetDB().ExecContext(ctx, `
		CREATE TABLE users (id INTEGER PRIMARY KEY, email TEXT NOT NULL);
		CREATE TABLE posts (
			id INTEGER PRIMARY KEY,
			author_id INTEGER NOT NULL REFERENCES users(id),
			published_at DATETIME
		);
		CREATE TABLE schema_migrations (version TEXT NOT NULL);
	`)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	var buf bytes.Buffer
	res, err := ExtractAndGenerate(ctx, "sqlite://"+path,
		&Options{ExcludeTables: []string{"schema_migrations"}},
		nil,
		&OutputOptions{Writer: &buf})
	require.NoError(t, err)

	assert.Equal(t, res.Code, buf.String())
	assert.Len(t, res.Registry, 2)
	assert.Empty(t, res.Dangling)
	assert.Contains(t, res.Code, "export interface PostsInput {\n  id?: number;\n  author_id: number;\n  published_at?: Date | null;\n}\n")
	assert.Contains(t, res.Code, "$type: null as unknown as Users },")
	assert.NotContains(t, res.Code, "schema_migrations")

	_, err = ExtractSchema(ctx, "sqlite://"+path, &Options{Tables: []string{"ghost"}})
	assert.ErrorIs(t, err, ErrTableNotFound)
}
