package main

import (
	"bytes"
	"io"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

// atomicWriteFile writes data to path via a temporary file in the same
// directory, renamed into place once fully written, so a crash mid-write
// never leaves a truncated --dump file behind.
func atomicWriteFile(path string, data []byte) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrap(err, "renameio.NewPendingFile")
	}
	defer pf.Cleanup()

	if _, err := io.Copy(pf, bytes.NewReader(data)); err != nil {
		return errors.Wrap(err, "io.Copy")
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrap(err, "renameio.CloseAtomicallyReplace")
	}
	return nil
}
