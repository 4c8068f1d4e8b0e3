package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordkit/recordkit/internal/schema"
	"github.com/recordkit/recordkit/internal/variant"
)

func writeDef(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "post.yml", `
record: Post
table: posts
fields:
  - name: id
    type: uuid
    skip: [create, update]
  - name: title
    type: string
    min: 1
    max: 255
  - name: status
    type: enum
    values: [draft, published]
    column:
      nullable: true
      default: draft
`)

		registry := schema.NewRegistry()
		loaded, err := New(registry, nil).Load([]string{path})
		require.NoError(t, err)
		require.Len(t, loaded, 1)

		post := loaded[0]
		assert.Equal(t, "Post", post.Type.Name)
		assert.Equal(t, "posts", post.Table)
		assert.Nil(t, post.Type.Parent)

		rules := registry.Rules(post.Type)
		require.Len(t, rules, 3)

		assert.True(t, rules[0].Skips(schema.VariantCreate))
		assert.True(t, rules[0].Skips(schema.VariantUpdate))
		assert.False(t, rules[0].Skips(schema.VariantPatch))

		status := rules[2]
		require.NotNil(t, status.Column)
		assert.True(t, status.Column.Nullable)
		assert.True(t, status.Column.HasDefault)
		assert.Equal(t, "draft", status.Column.Default)

		// The loaded rules drive a full collection build
		c, err := variant.Build(registry, post.Type, post.Options)
		require.NoError(t, err)
		_, parseErr := c.Create.Parse(map[string]any{"title": "abc"})
		assert.NoError(t, parseErr)
	})

	t.Run("extends across files", func(t *testing.T) {
		dir := t.TempDir()
		base := writeDef(t, dir, "content.yml", `
record: Content
fields:
  - name: id
    type: uuid
  - name: created_at
    type: timestamp
    skip: [create]
`)
		child := writeDef(t, dir, "post.yml", `
record: Post
extends: Content
fields:
  - name: title
    type: string
    min: 1
`)

		registry := schema.NewRegistry()
		loaded, err := New(registry, nil).Load([]string{base, child})
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		// Sorted by name: Content, Post
		post := loaded[1]
		require.Equal(t, "Post", post.Type.Name)
		require.NotNil(t, post.Type.Parent)
		assert.Equal(t, "Content", post.Type.Parent.Name)

		merged := registry.Resolve(post.Type)
		names := make([]string, len(merged))
		for i, rule := range merged {
			names[i] = rule.Name
		}
		assert.Equal(t, []string{"title", "id", "created_at"}, names)
	})

	t.Run("multiple documents per file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "all.yml", `
record: User
fields:
  - name: id
    type: uuid
---
record: Session
fields:
  - name: id
    type: uuid
`)

		registry := schema.NewRegistry()
		loaded, err := New(registry, nil).Load([]string{path})
		require.NoError(t, err)
		assert.Len(t, loaded, 2)
	})

	t.Run("generation options from the document", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "account.yml", `
record: Account
identifier: account_number
omit_from_create: [internal_ref]
fields:
  - name: account_number
    type: string
    min: 8
  - name: internal_ref
    type: string
  - name: owner
    type: string
`)

		registry := schema.NewRegistry()
		loaded, err := New(registry, nil).Load([]string{path})
		require.NoError(t, err)

		opts := loaded[0].Options
		assert.Equal(t, "account_number", opts.IdentifierField)
		assert.Equal(t, []string{"internal_ref"}, opts.OmitFromCreate)

		c, err := variant.Build(registry, loaded[0].Type, opts)
		require.NoError(t, err)

		var createFields []string
		for _, f := range c.Create.Fields() {
			createFields = append(createFields, f.Name)
		}
		assert.Equal(t, []string{"owner"}, createFields)
	})

	t.Run("unknown parent", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "post.yml", `
record: Post
extends: Ghost
fields:
  - name: id
    type: uuid
`)

		_, err := New(schema.NewRegistry(), nil).Load([]string{path})
		assert.ErrorContains(t, err, "unknown record Ghost")
	})

	t.Run("circular extends", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "cycle.yml", `
record: A
extends: B
fields:
  - name: id
    type: uuid
---
record: B
extends: A
fields:
  - name: id
    type: uuid
`)

		_, err := New(schema.NewRegistry(), nil).Load([]string{path})
		assert.ErrorContains(t, err, "circular extends")
	})

	t.Run("duplicate record name", func(t *testing.T) {
		dir := t.TempDir()
		a := writeDef(t, dir, "a.yml", "record: Post\nfields: [{name: id, type: uuid}]\n")
		b := writeDef(t, dir, "b.yml", "record: Post\nfields: [{name: id, type: uuid}]\n")

		_, err := New(schema.NewRegistry(), nil).Load([]string{a, b})
		assert.ErrorContains(t, err, "already defined")
	})

	t.Run("duplicate field surfaces with file context", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "post.yml", `
record: Post
fields:
  - name: title
    type: string
  - name: title
    type: string
`)

		_, err := New(schema.NewRegistry(), nil).Load([]string{path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "post.yml")
		assert.Contains(t, err.Error(), `"title"`)
	})

	t.Run("unknown field type", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "post.yml", "record: Post\nfields: [{name: blob, type: tensor}]\n")

		_, err := New(schema.NewRegistry(), nil).Load([]string{path})
		assert.ErrorContains(t, err, "unknown field type")
	})

	t.Run("unknown skip variant", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "post.yml", "record: Post\nfields: [{name: id, type: uuid, skip: [upsert]}]\n")

		_, err := New(schema.NewRegistry(), nil).Load([]string{path})
		assert.ErrorContains(t, err, "unknown variant")
	})

	t.Run("enum without values", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDef(t, dir, "post.yml", "record: Post\nfields: [{name: status, type: enum}]\n")

		_, err := New(schema.NewRegistry(), nil).Load([]string{path})
		assert.ErrorContains(t, err, "declares no values")
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "a.yml", "record: A\n")
	writeDef(t, dir, "b.yml", "record: B\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeDef(t, filepath.Join(dir, "nested"), "c.yml", "record: C\n")

	t.Run("doublestar globs", func(t *testing.T) {
		files, err := Discover([]string{filepath.Join(dir, "**", "*.yml")})
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("deduplicates and sorts", func(t *testing.T) {
		pattern := filepath.Join(dir, "*.yml")
		files, err := Discover([]string{pattern, pattern})
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Less(t, files[0], files[1])
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Discover([]string{"[!"})
		assert.Error(t, err)
	})
}
