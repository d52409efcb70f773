package fsutil_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/foundation/errors"
	"github.com/jmgilman/foundation/fsutil"
)

func writeFile(t *testing.T, fs billy.Filesystem, name, contents string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, name, []byte(contents), 0o644))
}

func readFile(t *testing.T, fs billy.Filesystem, name string) string {
	t.Helper()
	data, err := util.ReadFile(fs, name)
	require.NoError(t, err)
	return string(data)
}

func TestExistsAndIsDir(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "dir/file.txt", "x")

	tests := []struct {
		name   string
		path   string
		exists bool
		isDir  bool
	}{
		{name: "file", path: "dir/file.txt", exists: true},
		{name: "directory", path: "dir", exists: true, isDir: true},
		{name: "missing", path: "nope.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fsutil.Exists(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)

			isDir, err := fsutil.IsDir(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.isDir, isDir)
		})
	}
}

func TestCreateFile(t *testing.T) {
	t.Run("creates parents", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, fsutil.CreateFile(fs, "a/b/c.txt", []byte("hello")))
		assert.Equal(t, "hello", readFile(t, fs, "a/b/c.txt"))
	})

	t.Run("overwrites by default", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "c.txt", "old contents")
		require.NoError(t, fsutil.CreateFile(fs, "c.txt", []byte("new")))
		assert.Equal(t, "new", readFile(t, fs, "c.txt"))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "c.txt", "old")
		err := fsutil.CreateFile(fs, "c.txt", []byte("new"), fsutil.WithOverwrite(false))
		require.Error(t, err)
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
		assert.Equal(t, "old", readFile(t, fs, "c.txt"))
	})
}

func TestAppendToFile(t *testing.T) {
	fs := memfs.New()

	require.NoError(t, fsutil.AppendToFile(fs, "log/out.txt", []byte("one\n")))
	require.NoError(t, fsutil.AppendToFile(fs, "log/out.txt", []byte("two\n")))

	lines, err := fsutil.GetFileLines(fs, "log/out.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestGetFileContents_Missing(t *testing.T) {
	_, err := fsutil.GetFileContents(memfs.New(), "missing.txt")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestCopyFile(t *testing.T) {
	t.Run("copies contents", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "src.txt", "payload")

		require.NoError(t, fsutil.CopyFile(fs, "src.txt", "out/dst.txt"))
		assert.Equal(t, "payload", readFile(t, fs, "out/dst.txt"))
		assert.Equal(t, "payload", readFile(t, fs, "src.txt"))
	})

	t.Run("truncates existing destination", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "src.txt", "ab")
		writeFile(t, fs, "dst.txt", "much longer contents")

		require.NoError(t, fsutil.CopyFile(fs, "src.txt", "dst.txt"))
		assert.Equal(t, "ab", readFile(t, fs, "dst.txt"))
	})

	t.Run("no overwrite", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "src.txt", "new")
		writeFile(t, fs, "dst.txt", "old")

		err := fsutil.CopyFile(fs, "src.txt", "dst.txt", fsutil.WithOverwrite(false))
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
		assert.Equal(t, "old", readFile(t, fs, "dst.txt"))
	})

	t.Run("missing source", func(t *testing.T) {
		err := fsutil.CopyFile(memfs.New(), "nope.txt", "dst.txt")
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("directory source", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "dir/a.txt", "a")

		err := fsutil.CopyFile(fs, "dir", "copy")
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestMoveFile(t *testing.T) {
	t.Run("moves", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "src.txt", "payload")

		require.NoError(t, fsutil.MoveFile(fs, "src.txt", "moved/dst.txt"))
		assert.Equal(t, "payload", readFile(t, fs, "moved/dst.txt"))

		exists, err := fsutil.Exists(fs, "src.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("replaces destination", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "src.txt", "new")
		writeFile(t, fs, "dst.txt", "old")

		require.NoError(t, fsutil.MoveFile(fs, "src.txt", "dst.txt"))
		assert.Equal(t, "new", readFile(t, fs, "dst.txt"))
	})

	t.Run("no overwrite", func(t *testing.T) {
		fs := memfs.New()
		writeFile(t, fs, "src.txt", "new")
		writeFile(t, fs, "dst.txt", "old")

		err := fsutil.MoveFile(fs, "src.txt", "dst.txt", fsutil.WithOverwrite(false))
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
		assert.Equal(t, "new", readFile(t, fs, "src.txt"))
	})

	t.Run("missing source", func(t *testing.T) {
		err := fsutil.MoveFile(memfs.New(), "nope.txt", "dst.txt")
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestDeleteFile(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "dir/a.txt", "a")

	require.NoError(t, fsutil.DeleteFile(fs, "dir/a.txt"))
	exists, err := fsutil.Exists(fs, "dir/a.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, fsutil.DeleteFile(fs, "dir/a.txt"), "missing file is not an error")

	err = fsutil.DeleteFile(fs, "dir")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestDeleteTree(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "tree/a.txt", "a")
	writeFile(t, fs, "tree/sub/b.txt", "b")

	require.NoError(t, fsutil.DeleteTree(fs, "tree"))

	exists, err := fsutil.Exists(fs, "tree")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, fsutil.DeleteTree(fs, "tree"))
}

func TestChecksums(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "hello.txt", "hello")

	sum, err := fsutil.MD5(fs, "hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)

	sum, err = fsutil.SHA256(fs, "hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)

	_, err = fsutil.MD5(fs, "missing.txt")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
