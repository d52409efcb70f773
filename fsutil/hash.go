package fsutil

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not a security boundary
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"

	"github.com/go-git/go-billy/v5"
)

// Checksum streams name through the hash returned by newHash and returns
// the hex digest.
func Checksum(bfs billy.Filesystem, name string, newHash func() hash.Hash) (string, error) {
	f, err := bfs.Open(name)
	if err != nil {
		return "", wrapPathError(err, "failed to open file", name)
	}
	defer func() { _ = f.Close() }()

	h := newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", wrapPathError(err, "failed to hash file", name)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5 returns the hex MD5 digest of name.
func MD5(bfs billy.Filesystem, name string) (string, error) {
	return Checksum(bfs, name, md5.New)
}

// SHA256 returns the hex SHA-256 digest of name.
func SHA256(bfs billy.Filesystem, name string) (string, error) {
	return Checksum(bfs, name, sha256.New)
}
