// Package pathfilter selects the files of a data folder using doublestar patterns.
package pathfilter

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for file filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns.
// An empty include list matches every file.
func New(include, exclude []string) *Filter {
	if len(include) == 0 {
		include = []string{"**"}
	}
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter matches every file
func DefaultFilter() *Filter {
	return New(nil, nil)
}

// MatchFile checks if a single slash-separated relative path matches the filter criteria
func (f *Filter) MatchFile(path string) (bool, error) {
	included := false
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}

	if !included {
		return false, nil
	}

	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return false, nil
		}
	}

	return true, nil
}

// WalkDir walks the directory applying the filter and calling fn for each matching file.
// fn receives the path relative to dir, using forward slashes.
func (f *Filter) WalkDir(dir string, fn func(rel string, d fs.DirEntry) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		// Normalize to forward slashes for pattern matching
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			for _, pattern := range f.exclude {
				dirPattern := strings.TrimSuffix(pattern, "/**")
				if relPath == dirPattern || strings.HasPrefix(relPath, dirPattern+"/") {
					return filepath.SkipDir
				}
			}
			return nil
		}

		match, err := f.MatchFile(relPath)
		if err != nil {
			return err
		}
		if match {
			return fn(relPath, d)
		}
		return nil
	})
}

// Summary describes the files of a snapshot
type Summary struct {
	Files int
	Bytes int64
}

// Summarize counts matching files under dir and their total size
func (f *Filter) Summarize(dir string) (Summary, error) {
	var s Summary
	err := f.WalkDir(dir, func(_ string, d fs.DirEntry) error {
		info, err := d.Info()
		if err != nil {
			return err
		}
		s.Files++
		s.Bytes += info.Size()
		return nil
	})
	return s, err
}
