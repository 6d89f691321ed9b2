package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"vincit.fi/image-resizer/common/logger"
)

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func MakeDirectoriesIfNotExist(dir string) error {
	if DoesFileExist(dir) {
		return nil
	}
	logger.Debug.Printf("Creating directory '%s'", dir)
	return os.MkdirAll(dir, 0o755)
}

// ReplaceFile writes data next to path and renames it over path, so readers
// see either the old or the new content. The mode of an existing file is
// kept.
func ReplaceFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp to final: %w", err)
	}

	logger.Trace.Printf("Replaced '%s' with %d bytes", path, len(data))
	return nil
}
