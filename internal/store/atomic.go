// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// maxSymlinkHops bounds link resolution, matching the Linux MAXSYMLINKS.
const maxSymlinkHops = 40

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
//
// A symlink at path is followed so the link keeps pointing at the file that
// now holds data. A new file gets perm; an existing file keeps its mode.
// Anything at path other than a regular file is left alone and reported.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err == nil {
		if !st.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", target)
		}
		perm = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = replaceFile(tmpPath, target); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}

// resolveTarget returns the file a write to path lands in. Dangling links
// are followed to their missing destination; a missing path is returned
// unchanged.
func resolveTarget(path string) (string, error) {
	for i := 0; i < maxSymlinkHops; i++ {
		resolved, err := filepath.EvalSymlinks(path)
		if err == nil {
			return resolved, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("resolve %s: %w", path, err)
		}

		st, lerr := os.Lstat(path)
		if lerr != nil || st.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}

		dest, err := os.Readlink(path)
		if err != nil {
			return "", fmt.Errorf("read link %s: %w", path, err)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = dest
	}
	return "", fmt.Errorf("resolve %s: too many levels of symbolic links", path)
}

// replaceFile renames src over dst. Windows refuses to rename over an
// existing file, so there a regular dst is removed first.
func replaceFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}

	st, serr := os.Lstat(dst)
	if serr != nil || !st.Mode().IsRegular() {
		return err
	}
	if rerr := os.Remove(dst); rerr != nil {
		return err
	}
	return os.Rename(src, dst)
}
