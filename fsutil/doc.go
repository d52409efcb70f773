// Package fsutil provides file helpers (copy, move, delete, hash, find) over
// go-billy filesystems.
//
// Every helper takes the billy.Filesystem to operate on, so the same code
// runs against the local disk (osfs) and against memory (memfs) in tests:
//
//	fs := osfs.New("/srv/project")
//	if err := fsutil.CopyTree(fs, "templates", "build/templates"); err != nil {
//	    return err
//	}
//	sum, err := fsutil.MD5(fs, "build/templates/index.html")
//
// Errors carry codes from the errors package: CodeNotFound for missing
// sources, CodeAlreadyExists when overwriting is disabled, CodeInvalidInput
// for paths of the wrong kind and CodeIO for everything else.
package fsutil
