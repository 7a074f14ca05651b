// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFileStore_Open(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		s := NewEnvFileStore(strings.NewReader("A=1\n"), io.Discard)

		r, err := s.Open(StdStream)
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "A=1\n", string(data))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("B=2\n"), 0o600))

		r, err := NewEnvFileStore(nil, io.Discard).Open(path)
		require.NoError(t, err)
		defer r.Close()

		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "B=2\n", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewEnvFileStore(nil, io.Discard).Open(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOpeningEnvFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEnvFileStore_Write(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewEnvFileStore(nil, &out).Write(StdStream, []byte("A=1\n")))
		assert.Equal(t, "A=1\n", out.String())
	})

	t.Run("new file is private", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, NewEnvFileStore(nil, io.Discard).Write(path, []byte("A=1\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "A=1\n", string(data))

		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())
	})

	t.Run("existing file is replaced and keeps its mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("OLD=1\nOLDER=2\n"), 0o640))
		require.NoError(t, os.Chmod(path, 0o640))

		require.NoError(t, NewEnvFileStore(nil, io.Discard).Write(path, []byte("NEW=1\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "NEW=1\n", string(data))

		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), st.Mode().Perm())
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, NewEnvFileStore(nil, io.Discard).Write(filepath.Join(dir, ".env"), []byte("A=1\n")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ".env", entries[0].Name())
	})

	t.Run("symlink target receives the data", func(t *testing.T) {
		dir := t.TempDir()
		shared := filepath.Join(dir, "shared.env")
		link := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(shared, []byte("OLD=1\n"), 0o640))
		require.NoError(t, os.Chmod(shared, 0o640))
		require.NoError(t, os.Symlink("shared.env", link))

		require.NoError(t, NewEnvFileStore(nil, io.Discard).Write(link, []byte("NEW=2\n")))

		st, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, st.Mode()&os.ModeSymlink, "link must stay a symlink")

		data, err := os.ReadFile(shared)
		require.NoError(t, err)
		assert.Equal(t, "NEW=2\n", string(data))

		st, err = os.Stat(shared)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), st.Mode().Perm())
	})

	t.Run("dangling symlink creates its destination", func(t *testing.T) {
		dir := t.TempDir()
		link := filepath.Join(dir, ".env")
		require.NoError(t, os.Symlink("later.env", link))

		require.NoError(t, NewEnvFileStore(nil, io.Discard).Write(link, []byte("A=1\n")))

		data, err := os.ReadFile(filepath.Join(dir, "later.env"))
		require.NoError(t, err)
		assert.Equal(t, "A=1\n", string(data))

		st, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, st.Mode()&os.ModeSymlink)
	})

	t.Run("directory at path is left alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out")
		require.NoError(t, os.Mkdir(path, 0o700))

		err := NewEnvFileStore(nil, io.Discard).Write(path, []byte("A=1\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWritingEnvFile)
		assert.DirExists(t, path)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp file may be left behind")
	})

	t.Run("missing directory", func(t *testing.T) {
		err := NewEnvFileStore(nil, io.Discard).Write(filepath.Join(t.TempDir(), "no", ".env"), []byte("A=1\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWritingEnvFile)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestEnvFileStore_WriteStdoutError(t *testing.T) {
	err := NewEnvFileStore(nil, failingWriter{}).Write(StdStream, []byte("A=1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWritingEnvFile)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
