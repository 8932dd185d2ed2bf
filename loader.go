package brique

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// A workspace is a directory tree of .jsonl ledger files, one file per
// investment. A ledger name is its relative path without the extension.

// FindLedger returns the unique ledger matching the name.
// With an empty name it returns the only ledger of the workspace, or a
// fresh default one when the workspace is empty.
func FindLedger(path, name string) (*Ledger, error) {
	paths, err := findLedgerPaths(path, name)
	if err != nil {
		return nil, err
	}
	switch len(paths) {
	case 0:
		if name == "" {
			l := NewLedger()
			l.SetName("investment")
			return l, nil
		}
		return nil, fmt.Errorf("could not find ledger %q", name)
	case 1:
		return loadLedgerFile(path, paths[0])
	default:
		return nil, fmt.Errorf("multiple ledgers found for %q", name)
	}
}

// FindLedgers loads the ledgers matching the name, all of them when the
// name is empty.
func FindLedgers(path, name string) ([]*Ledger, error) {
	paths, err := findLedgerPaths(path, name)
	if err != nil {
		return nil, err
	}
	var out []*Ledger
	for _, p := range paths {
		l, err := loadLedgerFile(path, p)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// loadLedgerFile opens and decodes one ledger file, naming the ledger
// after its relative path. On a partial decode the valid events are
// returned alongside the error, so callers can still inspect the data
// without a save quietly truncating the corrupt lines.
func loadLedgerFile(root, fullPath string) (*Ledger, error) {
	rel, err := filepath.Rel(root, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", fullPath, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	l.SetName(strings.TrimSuffix(rel, ".jsonl"))
	if err != nil {
		return l, fmt.Errorf("could not fully decode ledger file %q: %w", fullPath, err)
	}
	return l, nil
}

// SaveLedger writes the ledger to "<path>/<name>.jsonl", creating
// intermediate directories as needed.
func SaveLedger(path string, l *Ledger) error {
	if l.Name() == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}
	filePath := filepath.Join(path, l.Name()+".jsonl")

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", filePath, err)
	}
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", filePath, err)
	}
	defer f.Close()

	return EncodeLedger(f, l)
}

// findLedgerPaths scans the workspace for .jsonl files whose ledger
// name matches the query.
func findLedgerPaths(path, name string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		if name == "" || strings.TrimSuffix(rel, ".jsonl") == name {
			paths = append(paths, p)
		}
		return nil
	})
	return paths, err
}
