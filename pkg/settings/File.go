package settings

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File keeps one yaml document per repository under Directory.
type File struct {
	Directory string
	mu        sync.Mutex
}

func NewFile(directory string) (*File, error) {
	if err := os.MkdirAll(directory, 0700); err != nil {
		return nil, errors.Wrapf(err, "failed to create settings directory %s", directory)
	}

	return &File{
		Directory: directory,
	}, nil
}

func (f *File) Get(ctx context.Context, repository string) (Flat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(repository))

	if err != nil {
		if os.IsNotExist(err) {
			return Flat{}, nil
		}

		return nil, err
	}

	flat := Flat{}

	if err = yaml.Unmarshal(data, &flat); err != nil {
		return nil, errors.Wrapf(err, "failed to parse settings of %s", repository)
	}

	return flat, nil
}

func (f *File) Replace(ctx context.Context, repository string, flat Flat) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(flat)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.Directory, ".settings-*")
	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), f.path(repository))
}

func (f *File) path(repository string) string {
	return filepath.Join(f.Directory, fmt.Sprintf("%s.yaml", url.PathEscape(strings.Trim(repository, "/"))))
}
