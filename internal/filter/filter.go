// Package filter expands positional paths into the list of files to pad.
//
// Explicit files are always selected. Directories are walked recursively and their
// files are kept when they match an include pattern (or no includes were given) and
// no exclude pattern. Patterns use doublestar syntax and are matched against the
// slash-separated path relative to the walked directory.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides whether walked files are selected.
type Filter struct {
	includes []string
	excludes []string
}

// New validates the patterns and returns a Filter. Leading "./" is ignored.
func New(includes, excludes []string) (*Filter, error) {
	flt := &Filter{
		includes: normalize(includes),
		excludes: normalize(excludes),
	}

	for _, pattern := range append(append([]string{}, flt.includes...), flt.excludes...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	return flt, nil
}

func normalize(patterns []string) []string {
	out := make([]string, 0, len(patterns))

	for _, p := range patterns {
		if p = strings.TrimPrefix(strings.TrimSpace(p), "./"); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Match reports whether the slash-separated path is selected.
func (f *Filter) Match(path string) bool {
	path = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")

	if len(f.includes) > 0 && !matchAny(f.includes, path) {
		return false
	}

	return !matchAny(f.excludes, path)
}

func matchAny(patterns []string, path string) bool {
	base := filepath.Base(path)

	for _, pattern := range patterns {
		// Patterns without a separator also match the base name, so "*.pdf" selects nested files.
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}

		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, base); ok {
				return true
			}
		}
	}

	return false
}

// Resolve expands args into a deduplicated file list and reports how many
// candidate files were scanned.
func (f *Filter) Resolve(args []string) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	err = visit(args, func(path, rel string, explicit bool) {
		scanned++

		if _, ok := seen[path]; ok {
			return
		}

		if explicit || f.Match(rel) {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	})
	if err != nil {
		return nil, 0, err
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided paths: %v", args)
	}

	return files, scanned, nil
}

// CountWalked returns how many distinct files under args the filter selects.
// Explicit file arguments are matched against their base name.
func (f *Filter) CountWalked(args []string) (int, error) {
	seen := make(map[string]struct{})

	err := visit(args, func(path, rel string, _ bool) {
		if _, ok := seen[path]; !ok && f.Match(rel) {
			seen[path] = struct{}{}
		}
	})

	return len(seen), err
}

// visit calls fn for each regular file named by or found under args, with its path
// relative to the walked directory (or its base name when given explicitly).
func visit(args []string, fn func(path, rel string, explicit bool)) error {
	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			fn(arg, filepath.Base(arg), true)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.Type().IsRegular() {
				return nil
			}

			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}

			fn(path, rel, false)

			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	return nil
}
