package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/logging"
)

func writeTemplate(t *testing.T, root, name, index, compose string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if index != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte(index), 0o644))
	}
	if compose != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "compose.yml"), []byte(compose), 0o644))
	}
}

func testCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTemplate(t, root, "postgres", `---
name: PostgreSQL
description: Relational database
tags: [database, sql]
logoUrl: https://example.com/pg.svg
---
# PostgreSQL
`, "services:\n  db:\n    image: postgres:16\n")
	writeTemplate(t, root, "redis", `+++
name = "Redis"
slug = "redis-cache"
description = "In-memory data store"
tags = ["database", "cache"]
logo = "redis.svg"
+++
Body.
`, "services:\n  cache:\n    image: redis\n")
	writeTemplate(t, root, "no-index", "", "services:\n  web:\n    image: nginx\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# templates"), 0o644))
	return root
}

func TestLoad(t *testing.T) {
	root := testCatalog(t)
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))

	entries, err := Load(ctx, root)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	pg := entries[0]
	assert.Equal(t, "postgres", pg.Dir)
	assert.Equal(t, "postgres", pg.Slug, "slug defaults to directory name")
	assert.Equal(t, "PostgreSQL", pg.Name)
	assert.Equal(t, []string{"database", "sql"}, pg.Tags)
	assert.Equal(t, "/templates/postgres", pg.URL())
	assert.Equal(t, filepath.Join(root, "postgres", "compose.yml"), pg.ComposePath)

	redis := entries[1]
	assert.Equal(t, "redis-cache", redis.Slug)
	assert.Equal(t, "redis.svg", redis.Logo)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Load(t.Context(), filepath.Join(t.TempDir(), "nope"))
		assert.True(t, errors.Is(err, errors.ErrRootNotFound))
	})

	t.Run("malformed frontmatter", func(t *testing.T) {
		root := t.TempDir()
		writeTemplate(t, root, "broken", "---\nname: [unclosed\n---\n", "")

		_, err := Load(t.Context(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template broken")
	})

	t.Run("missing name", func(t *testing.T) {
		root := t.TempDir()
		writeTemplate(t, root, "anon", "---\ndescription: x\n---\n", "")

		_, err := Load(t.Context(), root)
		assert.True(t, errors.Is(err, ErrMissingName))
	})

	t.Run("no frontmatter", func(t *testing.T) {
		root := t.TempDir()
		writeTemplate(t, root, "plain", "# Just markdown\n", "")

		_, err := Load(t.Context(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing frontmatter")
	})
}

func TestFind(t *testing.T) {
	entries, err := Load(t.Context(), testCatalog(t))
	require.NoError(t, err)

	e, err := Find(entries, "redis-cache")
	require.NoError(t, err)
	assert.Equal(t, "Redis", e.Name)

	_, err = Find(entries, "redis")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestSearchDocs(t *testing.T) {
	entries, err := Load(t.Context(), testCatalog(t))
	require.NoError(t, err)

	data, err := json.Marshal(SearchDocs(entries))
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"id":"postgres","name":"PostgreSQL","description":"Relational database","tags":["database","sql"],"url":"/templates/postgres","logoUrl":"https://example.com/pg.svg"},
		{"id":"redis-cache","name":"Redis","description":"In-memory data store","tags":["database","cache"],"url":"/templates/redis-cache","logoUrl":null}
	]`, string(data))
}

func TestTags(t *testing.T) {
	entries, err := Load(t.Context(), testCatalog(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"cache", "database", "sql"}, Tags(entries))
	assert.Equal(t, []string{}, Tags(nil))
}

func TestNewDetail(t *testing.T) {
	entries, err := Load(t.Context(), testCatalog(t))
	require.NoError(t, err)

	d, err := NewDetail(entries[1])
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id":"redis-cache","name":"Redis","description":"In-memory data store",
		"tags":["database","cache"],"logo":"redis.svg","logoUrl":null,
		"url":"/templates/redis-cache",
		"compose":"services:\n  cache:\n    image: redis\n"
	}`, string(data))

	_, err = NewDetail(&Entry{Metadata: Metadata{Slug: "x"}, ComposePath: filepath.Join(t.TempDir(), "compose.yml")})
	assert.Error(t, err)
}
