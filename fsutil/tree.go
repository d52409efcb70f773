package fsutil

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/foundation/errors"
)

func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// relative returns name relative to root using forward slashes.
func relative(root, name string) string {
	root = normalize(root)
	name = normalize(name)
	if root == "." || root == "" {
		return strings.TrimPrefix(name, "/")
	}
	return strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
}

// walkTree returns the directories and files below root as paths relative
// to root. Directories come before their contents.
func walkTree(bfs billy.Filesystem, root string) (dirs, files []string, err error) {
	err = util.Walk(bfs, root, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel := relative(root, name)
		if rel == "" {
			return nil
		}
		if info.IsDir() {
			dirs = append(dirs, rel)
		} else {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, nil, wrapPathError(err, "failed to walk directory", root)
	}
	return dirs, files, nil
}

// CopyTree copies the directory src and everything below it to dst.
//
// Directories and destination files are created first; file contents are
// then copied concurrently, up to the limit set by WithConcurrency. The first failure cancels the copies
// that have not started yet and is returned.
func CopyTree(bfs billy.Filesystem, src, dst string, opts ...Option) error {
	o := newOptions(opts)

	isDir, err := IsDir(bfs, src)
	if err != nil {
		return err
	}
	if !isDir {
		exists, err := Exists(bfs, src)
		if err != nil {
			return err
		}
		code := errors.CodeInvalidInput
		if !exists {
			code = errors.CodeNotFound
		}
		return errors.WithContext(errors.New(code, "source is not a directory"), "path", src)
	}

	dirs, files, err := walkTree(bfs, src)
	if err != nil {
		return err
	}

	if err := bfs.MkdirAll(dst, 0o755); err != nil {
		return wrapPathError(err, "failed to create destination", dst)
	}
	for _, dir := range dirs {
		target := path.Join(normalize(dst), dir)
		if err := bfs.MkdirAll(target, 0o755); err != nil {
			return wrapPathError(err, "failed to create directory", target)
		}
	}

	// Destinations are created sequentially; only contents are copied in
	// parallel, so filesystems without internal locking stay consistent.
	perms := make([]os.FileMode, len(files))
	for i, file := range files {
		info, err := prepareCopy(bfs, path.Join(normalize(src), file), path.Join(normalize(dst), file), o)
		if err != nil {
			return err
		}
		perms[i] = info.Mode().Perm()
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.concurrency)
	for i, file := range files {
		from := path.Join(normalize(src), file)
		to := path.Join(normalize(dst), file)
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return copyContents(bfs, from, to, perms[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	o.logger.Debug("copied tree",
		"src", src,
		"dst", dst,
		"dirs", len(dirs),
		"files", len(files),
	)
	return nil
}

// FindFiles returns the files below root whose root-relative path matches
// any of the doublestar patterns (for example "**/*.go"). Paths are
// relative to root, use forward slashes and are sorted.
func FindFiles(bfs billy.Filesystem, root string, patterns ...string) ([]string, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.WithContext(
				errors.New(errors.CodeInvalidInput, "invalid glob pattern"), "pattern", p)
		}
	}

	_, files, err := walkTree(bfs, root)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, file := range files {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, file); ok {
				matched = append(matched, file)
				break
			}
		}
	}
	sort.Strings(matched)
	return matched, nil
}

// CopyFromFS copies every file below srcRoot in src (typically an embed.FS)
// into dstRoot on dst, preserving directory structure and permissions.
// Use "." as srcRoot to copy the whole source.
func CopyFromFS(src fs.FS, dst billy.Filesystem, srcRoot, dstRoot string, opts ...Option) error {
	o := newOptions(opts)

	err := fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		target := path.Join(normalize(dstRoot), relative(srcRoot, filePath))
		return CreateFile(dst, target, data,
			WithOverwrite(o.overwrite), WithPerm(info.Mode().Perm()))
	})
	if err != nil {
		if _, ok := err.(errors.Error); ok {
			return err
		}
		return wrapPathError(err, "failed to copy from filesystem", srcRoot)
	}
	return nil
}
