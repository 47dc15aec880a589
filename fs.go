package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
)

// Filesystem is the traversal collaborator used by Navigator.AddPathRecursive.
// Keeping it behind an interface keeps the navigator free of OS calls and lets
// tests use an in-memory fake.
type Filesystem interface {
	// IsDir reports whether path is a container that can be listed.
	IsDir(path string) (bool, error)
	// ListEntries returns the listable contents of path as full paths.
	// Enumeration order is the implementation's choice.
	ListEntries(path string) ([]string, error)
}

// OSFilesystem is the Filesystem backed by the real OS. Archive files (zip,
// rar, 7z) are presented as listable containers holding their image entries in
// the archive:entry path encoding, so recursive traversal descends into them
// the same way it descends into directories.
type OSFilesystem struct{}

func (OSFilesystem) IsDir(path string) (bool, error) {
	if _, _, ok := splitArchivePath(path); ok {
		// Entries inside an archive are leaves.
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return true, nil
	}
	return info.Mode().IsRegular() && isArchiveExt(path), nil
}

func (OSFilesystem) ListEntries(path string) ([]string, error) {
	if isArchiveExt(path) {
		entries, err := listArchiveEntries(path)
		if err != nil {
			return nil, err
		}
		sort.Sort(natural.StringSlice(entries))
		return entries, nil
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, e := range dirents {
		if e.IsDir() {
			entries = append(entries, filepath.Join(path, e.Name()))
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		if isSupportedExt(e.Name()) || isArchiveExt(e.Name()) {
			entries = append(entries, filepath.Join(path, e.Name()))
		}
	}
	sort.Sort(natural.StringSlice(entries))
	return entries, nil
}
