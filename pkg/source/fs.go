package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// fsExtensions lists the file extensions tried, in order, for a locale's
// namespace file.
var fsExtensions = []string{".json", ".yaml", ".yml"}

// FS returns a resolver reading namespace fragments from an fs.FS using
// the {locale}/{namespace}.json (or .yaml/.yml) convention:
//
//	en/common.json
//	fr/common.yaml
//
// The first existing file wins; a locale with no file at all resolves
// with an error wrapping fs.ErrNotExist.
func FS(fsys fs.FS, namespace string) func(ctx context.Context, locale string) (map[string]any, error) {
	return func(_ context.Context, locale string) (map[string]any, error) {
		for _, ext := range fsExtensions {
			name := path.Join(locale, namespace+ext)

			data, err := fs.ReadFile(fsys, name)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("source: reading %q: %w", name, err)
			}

			var frag map[string]any
			if ext == ".json" {
				err = json.Unmarshal(data, &frag)
			} else {
				err = yaml.Unmarshal(data, &frag)
			}
			if err != nil {
				return nil, fmt.Errorf("source: parsing %q: %w", name, err)
			}

			return frag, nil
		}

		return nil, fmt.Errorf("source: no %q file for locale %q: %w", namespace, locale, fs.ErrNotExist)
	}
}
