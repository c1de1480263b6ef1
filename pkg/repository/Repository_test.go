package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "project", "repo.git"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.git"), []byte("x"), 0644))

	resolver := NewResolver(root, ".git")

	repo, err := resolver.Resolve("project/repo")
	require.NoError(t, err)
	assert.Equal(t, "project/repo", repo.Name)
	assert.Equal(t, filepath.Join(root, "project", "repo.git"), repo.Path)

	repo, err = resolver.Resolve("project/repo.git")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "project", "repo.git"), repo.Path)

	repo, err = resolver.Resolve("plain")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "plain"), repo.Path)

	_, err = resolver.Resolve("missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = resolver.Resolve("file")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResolveRejectsTraversal(t *testing.T) {
	resolver := NewResolver(t.TempDir(), ".git")

	for _, name := range []string{"", "   ", "../etc", "project/../../etc", "a/./b", "a//b"} {
		_, err := resolver.Resolve(name)
		assert.True(t, errors.Is(err, ErrInvalidName), name)
	}
}
