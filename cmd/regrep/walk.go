package main

import (
	"io/fs"
	"path/filepath"
)

// walkFiles returns every regular file under root, in the order WalkDir
// visits them. Directories are descended into silently; anything else
// (symlinks, devices) is skipped by virtue of not being a regular file.
func walkFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
