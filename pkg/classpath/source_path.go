package classpath

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	javaFileSuffix = ".java"
	jarFileSuffix  = ".jar"
	zipFileSuffix  = ".zip"
)

// defaultPattern matches every java source file under an entry.
const defaultPattern = "**/*.java"

// SourceFile is one scanned source file.
type SourceFile struct {
	// Path is the path within the source path entry, slash-separated.
	Path string
	// Data is the file content.
	Data []byte
}

// SourcePathEntry enumerates the java source files of one source path
// element.
type SourcePathEntry interface {
	fmt.Stringer

	// Scan calls accept for each matching source file.  Scanning stops
	// at the first error.
	Scan(accept func(file SourceFile) error) error
}

// SourcePath is an ordered list of entries searched for .java files:
// plain directories and source jars/zips.
type SourcePath struct {
	entries  []SourcePathEntry
	patterns []string
}

// SourcePathOption configures a SourcePath.
type SourcePathOption func(*SourcePath)

// WithPatterns replaces the default "**/*.java" glob with the given
// doublestar patterns, matched against entry-relative paths.
func WithPatterns(patterns ...string) SourcePathOption {
	return func(sp *SourcePath) {
		sp.patterns = patterns
	}
}

// NewSourcePath splits a colon-separated source path string into
// entries.  Entries ending in .jar or .zip are treated as source
// archives, everything else as a directory.
func NewSourcePath(pathStr string, options ...SourcePathOption) (*SourcePath, error) {
	sp := &SourcePath{patterns: []string{defaultPattern}}
	for _, opt := range options {
		opt(sp)
	}
	for _, pattern := range sp.patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid source path pattern: %s", pattern)
		}
	}
	for _, seg := range strings.Split(pathStr, ":") {
		if seg == "" {
			continue
		}
		path, err := filepath.Abs(seg)
		if err != nil {
			return nil, fmt.Errorf("not a legal path %s: %w", seg, err)
		}
		if strings.HasSuffix(seg, jarFileSuffix) || strings.HasSuffix(seg, zipFileSuffix) {
			sp.entries = append(sp.entries, &archiveEntry{archive: path, patterns: sp.patterns})
		} else {
			sp.entries = append(sp.entries, &directoryEntry{directory: path, patterns: sp.patterns})
		}
	}
	return sp, nil
}

// Entries returns the ordered source path entries.
func (sp *SourcePath) Entries() []SourcePathEntry { return sp.entries }

// Scan visits every matching source file of every entry, in source
// path order.
func (sp *SourcePath) Scan(accept func(file SourceFile) error) error {
	for _, entry := range sp.entries {
		if err := entry.Scan(accept); err != nil {
			return fmt.Errorf("scanning %s: %w", entry, err)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (sp *SourcePath) String() string {
	names := make([]string, len(sp.entries))
	for i, entry := range sp.entries {
		names[i] = entry.String()
	}
	return strings.Join(names, ":")
}

type directoryEntry struct {
	directory string
	patterns  []string
}

// String implements part of the SourcePathEntry interface.
func (e *directoryEntry) String() string { return e.directory }

// Scan implements part of the SourcePathEntry interface.
func (e *directoryEntry) Scan(accept func(file SourceFile) error) error {
	return filepath.WalkDir(e.directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, javaFileSuffix) {
			return nil
		}
		rel, err := filepath.Rel(e.directory, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesAny(e.patterns, rel) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return accept(SourceFile{Path: rel, Data: data})
	})
}

type archiveEntry struct {
	archive  string
	patterns []string
}

// String implements part of the SourcePathEntry interface.
func (e *archiveEntry) String() string { return e.archive }

// Scan implements part of the SourcePathEntry interface.
func (e *archiveEntry) Scan(accept func(file SourceFile) error) error {
	r, err := zip.OpenReader(e.archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, javaFileSuffix) || !matchesAny(e.patterns, f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}
		if err := accept(SourceFile{Path: f.Name, Data: data}); err != nil {
			return err
		}
	}
	return nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
