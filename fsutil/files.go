package fsutil

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/foundation/errors"
)

// Exists reports whether name exists.
func Exists(fs billy.Filesystem, name string) (bool, error) {
	_, err := fs.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, wrapPathError(err, "failed to stat path", name)
}

// IsDir reports whether name is an existing directory.
func IsDir(fs billy.Filesystem, name string) (bool, error) {
	info, err := fs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, wrapPathError(err, "failed to stat path", name)
	}
	return info.IsDir(), nil
}

// CreateFile writes contents to name, creating parent directories.
// With WithOverwrite(false) an existing file is an error.
func CreateFile(fs billy.Filesystem, name string, contents []byte, opts ...Option) error {
	o := newOptions(opts)

	if !o.overwrite {
		exists, err := Exists(fs, name)
		if err != nil {
			return err
		}
		if exists {
			return errors.WithContext(
				errors.New(errors.CodeAlreadyExists, "file already exists"), "path", name)
		}
	}
	if err := ensureParent(fs, name); err != nil {
		return err
	}
	if err := util.WriteFile(fs, name, contents, o.perm); err != nil {
		return wrapPathError(err, "failed to write file", name)
	}
	return nil
}

// AppendToFile appends contents to name, creating it if needed.
func AppendToFile(fs billy.Filesystem, name string, contents []byte) error {
	if err := ensureParent(fs, name); err != nil {
		return err
	}
	f, err := fs.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return wrapPathError(err, "failed to open file for append", name)
	}
	if _, err := f.Write(contents); err != nil {
		_ = f.Close()
		return wrapPathError(err, "failed to append to file", name)
	}
	return wrapPathError(f.Close(), "failed to close file", name)
}

// GetFileContents returns the contents of name.
func GetFileContents(fs billy.Filesystem, name string) ([]byte, error) {
	data, err := util.ReadFile(fs, name)
	if err != nil {
		return nil, wrapPathError(err, "failed to read file", name)
	}
	return data, nil
}

// GetFileLines returns the lines of name without line terminators.
func GetFileLines(fs billy.Filesystem, name string) ([]string, error) {
	data, err := GetFileContents(fs, name)
	if err != nil {
		return nil, err
	}
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapPathError(err, "failed to split file into lines", name)
	}
	return lines, nil
}

// CopyFile copies the file src to dst, creating dst's parent directories.
// With WithOverwrite(false) an existing dst is an error.
func CopyFile(fs billy.Filesystem, src, dst string, opts ...Option) error {
	o := newOptions(opts)
	return copyFile(fs, src, dst, o)
}

func copyFile(fs billy.Filesystem, src, dst string, o options) error {
	info, err := prepareCopy(fs, src, dst, o)
	if err != nil {
		return err
	}
	return copyContents(fs, src, dst, info.Mode().Perm())
}

// prepareCopy validates src and creates dst with its parent directories.
// All filesystem metadata changes of a copy happen here.
func prepareCopy(fs billy.Filesystem, src, dst string, o options) (os.FileInfo, error) {
	info, err := fs.Stat(src)
	if err != nil {
		return nil, wrapPathError(err, "failed to stat source", src)
	}
	if info.IsDir() {
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "source is a directory"), "path", src)
	}
	exists, err := Exists(fs, dst)
	if err != nil {
		return nil, err
	}
	if exists {
		if !o.overwrite {
			return nil, errors.WithContext(
				errors.New(errors.CodeAlreadyExists, "destination already exists"), "path", dst)
		}
		return info, nil
	}
	if err := ensureParent(fs, dst); err != nil {
		return nil, err
	}
	f, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return nil, wrapPathError(err, "failed to create destination", dst)
	}
	return info, wrapPathError(f.Close(), "failed to close destination", dst)
}

// copyContents copies the bytes of src over the existing file dst.
func copyContents(fs billy.Filesystem, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return wrapPathError(err, "failed to open source", src)
	}
	defer func() { _ = in.Close() }()

	out, err := fs.OpenFile(dst, os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return wrapPathError(err, "failed to open destination", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return wrapPathError(err, "failed to copy file contents", dst)
	}
	return wrapPathError(out.Close(), "failed to close destination", dst)
}

// MoveFile renames src to dst, creating dst's parent directories.
// With WithOverwrite(false) an existing dst is an error.
func MoveFile(fs billy.Filesystem, src, dst string, opts ...Option) error {
	o := newOptions(opts)

	if _, err := fs.Stat(src); err != nil {
		return wrapPathError(err, "failed to stat source", src)
	}
	exists, err := Exists(fs, dst)
	if err != nil {
		return err
	}
	if exists {
		if !o.overwrite {
			return errors.WithContext(
				errors.New(errors.CodeAlreadyExists, "destination already exists"), "path", dst)
		}
		if err := util.RemoveAll(fs, dst); err != nil {
			return wrapPathError(err, "failed to replace destination", dst)
		}
	}
	if err := ensureParent(fs, dst); err != nil {
		return err
	}
	if err := fs.Rename(src, dst); err != nil {
		return wrapPathError(err, "failed to move file", src)
	}
	return nil
}

// DeleteFile removes the file name. A missing file is not an error; a
// directory is.
func DeleteFile(fs billy.Filesystem, name string) error {
	info, err := fs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return wrapPathError(err, "failed to stat file", name)
	}
	if info.IsDir() {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "path is a directory; use DeleteTree"), "path", name)
	}
	if err := fs.Remove(name); err != nil {
		return wrapPathError(err, "failed to delete file", name)
	}
	return nil
}

// DeleteTree removes name and everything below it. A missing path is not
// an error.
func DeleteTree(fs billy.Filesystem, name string) error {
	if err := util.RemoveAll(fs, name); err != nil {
		return wrapPathError(err, "failed to delete tree", name)
	}
	return nil
}

func ensureParent(fs billy.Filesystem, name string) error {
	dir := path.Dir(normalize(name))
	if dir == "." || dir == "/" || dir == "" {
		return nil
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return wrapPathError(err, "failed to create parent directory", dir)
	}
	return nil
}
