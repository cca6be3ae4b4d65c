// Package fileutil provides file helpers and blueprint file discovery.
package fileutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFile copies a file from src to dst using buffered IO.
func CopyFile(src, dst string) error {
	log.Printf("Copying file: src=%s, dst=%s", src, dst)
	in, err := os.Open(src)
	if err != nil {
		log.Printf("Failed to open source file: %s", err)
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		log.Printf("Failed to create destination file: %s", err)
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// IsYAMLFile reports whether a path has a YAML extension
// (case-insensitive .yml or .yaml).
func IsYAMLFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml")
}

// FindYAMLFiles recursively enumerates YAML files under root, sorted for
// stable reporting order. A missing root yields an empty slice and no error:
// having nothing to check is not a failure.
func FindYAMLFiles(root string) ([]string, error) {
	if !DirExists(root) {
		log.Printf("Directory not found, nothing to discover: %s", root)
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsYAMLFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	log.Printf("Discovered %d YAML file(s) under %s", len(files), root)
	return files, nil
}
