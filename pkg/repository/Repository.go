package repository

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func NewResolver(root string, suffix string) *Resolver {
	return &Resolver{
		Root:   root,
		Suffix: suffix,
	}
}

// Resolve returns the repository for name, e.g. "project/repo" -> {Root}/project/repo.git.
func (r *Resolver) Resolve(name string) (Repository, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(name))[1:]

	if cleaned == "" || cleaned != strings.Trim(name, "/") || strings.Contains(cleaned, "..") {
		return Repository{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}

	directory := filepath.Join(r.Root, filepath.FromSlash(cleaned))

	if r.Suffix != "" && !strings.HasSuffix(directory, r.Suffix) {
		if _, err := os.Stat(directory); err != nil {
			directory += r.Suffix
		}
	}

	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		return Repository{}, errors.Wrapf(ErrNotFound, "%q", name)
	}

	return Repository{
		Name: cleaned,
		Path: directory,
	}, nil
}

func (r Repository) String() string {
	return r.Name
}
