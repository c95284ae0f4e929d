package filestore

import (
	"errors"
	"fmt"

	"github.com/dshills/nodepat/internal/engine/codec"
)

// Error kinds returned by Store operations. Match them with errors.Is.
var (
	// ErrFileTooLarge indicates the file exceeds MaxFileSize bytes.
	ErrFileTooLarge = errors.New("file too large")

	// ErrRead indicates the file could not be read.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates the file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrNoPath indicates a save was requested without a path.
	ErrNoPath = errors.New("no file path")
)

// FileError describes a failed load or save.
// Its message is suitable for showing to the user as is.
type FileError struct {
	Op   string // "load" or "save"
	Path string
	Kind error // one of the Err* kinds or codec.ErrInvalidEncoding
	Err  error // underlying cause, may be nil
}

// Error returns the user-facing message for the failure.
func (e *FileError) Error() string {
	switch e.Kind {
	case ErrFileTooLarge:
		return fmt.Sprintf("File is too large. Nodepat can only handle files up to ~%dKB.", MaxFileSize/1024)
	case ErrRead:
		return fmt.Sprintf("Failed to read file: %v", e.Err)
	case ErrWrite:
		return fmt.Sprintf("Failed to write file: %v", e.Err)
	case ErrNoPath:
		return "No file name given."
	case codec.ErrInvalidEncoding:
		return fmt.Sprintf("Failed to decode file: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsFileTooLarge returns true if err is a too-large failure.
func IsFileTooLarge(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}
