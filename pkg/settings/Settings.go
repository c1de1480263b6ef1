package settings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/simplecontainer/mirror/pkg/static"
)

// Parse collects every mirror-url{suffix} key with its username{suffix} and password{suffix} siblings.
// Passwords are returned exactly as stored. Targets get fresh sequential indexes in suffix order:
// the empty suffix first, then numeric suffixes by value, then the rest lexicographically.
func Parse(flat Flat) []MirrorTarget {
	suffixes := make([]string, 0)

	for key := range flat {
		if strings.HasPrefix(key, static.SETTING_MIRROR_URL) {
			suffixes = append(suffixes, strings.TrimPrefix(key, static.SETTING_MIRROR_URL))
		}
	}

	sort.Slice(suffixes, func(i, j int) bool {
		return lessSuffix(suffixes[i], suffixes[j])
	})

	targets := make([]MirrorTarget, 0, len(suffixes))

	for i, suffix := range suffixes {
		targets = append(targets, MirrorTarget{
			Url:      flat[static.SETTING_MIRROR_URL+suffix],
			Username: flat[static.SETTING_USERNAME+suffix],
			Password: flat[static.SETTING_PASSWORD+suffix],
			Index:    i,
		})
	}

	return targets
}

// Serialize writes the three keys of every target with dense suffixes 0..N-1, dropping whatever
// suffixes the targets were loaded with. Non-empty passwords go through the encrypter.
func Serialize(targets []MirrorTarget, encrypter Encrypter) (Flat, error) {
	flat := make(Flat, len(targets)*3)

	for i, target := range targets {
		password := target.Password

		if password != "" {
			var err error
			password, err = encrypter.Encrypt(password)

			if err != nil {
				return nil, errors.Wrapf(err, "failed to encrypt password of mirror %d", i)
			}
		}

		flat[Key(static.SETTING_MIRROR_URL, i)] = target.Url
		flat[Key(static.SETTING_USERNAME, i)] = target.Username
		flat[Key(static.SETTING_PASSWORD, i)] = password
	}

	return flat, nil
}

// Key returns the flat settings key of field for the target at index.
func Key(field string, index int) string {
	return field + strconv.Itoa(index)
}

func (flat Flat) Copy() Flat {
	copied := make(Flat, len(flat))

	for k, v := range flat {
		copied[k] = v
	}

	return copied
}

func lessSuffix(a string, b string) bool {
	if a == "" || b == "" {
		return a == "" && b != ""
	}

	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
