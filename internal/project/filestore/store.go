package filestore

import (
	"io"
	"time"

	"github.com/dshills/nodepat/internal/engine/codec"
	"github.com/dshills/nodepat/internal/project/vfs"
)

// MaxFileSize is the largest file, in bytes, that can be loaded.
// Text can grow by up to 3x when decoded, so the practical limit is ~58KB.
const MaxFileSize = 60_000

// Store loads and saves documents through a VFS.
type Store struct {
	vfs vfs.VFS

	// Event handlers
	onLoad []func(rec *Record)
	onSave []func(rec *Record)
}

// NewStore creates a Store backed by fs.
func NewStore(fs vfs.VFS) *Store {
	return &Store{vfs: fs}
}

// Load reads path and decodes it. On success rec takes the path, the
// detected encoding and the file's modification time, and is marked
// unmodified. On failure rec is left untouched.
func (s *Store) Load(rec *Record, path string) (string, error) {
	data, err := s.read(path)
	if err != nil {
		return "", err
	}

	text, enc, err := codec.Decode(data)
	if err != nil {
		return "", &FileError{Op: "load", Path: path, Kind: codec.ErrInvalidEncoding, Err: err}
	}

	rec.Encoding = enc
	rec.markSynced(path, s.modTime(path))

	for _, handler := range s.onLoad {
		handler(rec)
	}
	return text, nil
}

// read returns the raw bytes of path, failing if there are more than
// MaxFileSize of them. At most MaxFileSize+1 bytes are read.
func (s *Store) read(path string) ([]byte, error) {
	f, err := s.vfs.Open(path)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Kind: ErrRead, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Kind: ErrRead, Err: err}
	}
	if len(data) > MaxFileSize {
		return nil, &FileError{Op: "load", Path: path, Kind: ErrFileTooLarge}
	}
	return data, nil
}

// Save encodes text with rec.Encoding and writes it to path. On success rec
// takes the path and is marked unmodified.
func (s *Store) Save(rec *Record, path, text string) error {
	if path == "" {
		return &FileError{Op: "save", Kind: ErrNoPath}
	}

	data, err := codec.Encode(text, rec.Encoding)
	if err != nil {
		return &FileError{Op: "save", Path: path, Kind: ErrWrite, Err: err}
	}

	if err := s.write(path, data); err != nil {
		return &FileError{Op: "save", Path: path, Kind: ErrWrite, Err: err}
	}

	rec.markSynced(path, s.modTime(path))

	for _, handler := range s.onSave {
		handler(rec)
	}
	return nil
}

// write writes data to path. The file is closed on every path and a close
// failure is reported, since it can mean the data never reached the disk.
func (s *Store) write(path string, data []byte) (err error) {
	f, err := s.vfs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

// Changed reports whether the file behind rec was modified on disk since
// the last load or save.
func (s *Store) Changed(rec *Record) bool {
	if !rec.HasPath() {
		return false
	}
	info, err := s.vfs.Stat(rec.Path)
	if err != nil {
		return false
	}
	return rec.HasExternalChanges(info.ModTime())
}

func (s *Store) modTime(path string) (t time.Time) {
	info, err := s.vfs.Stat(path)
	if err != nil {
		return t
	}
	return info.ModTime()
}

// OnLoad registers a handler called after every successful Load.
func (s *Store) OnLoad(handler func(rec *Record)) {
	s.onLoad = append(s.onLoad, handler)
}

// OnSave registers a handler called after every successful Save.
func (s *Store) OnSave(handler func(rec *Record)) {
	s.onSave = append(s.onSave, handler)
}
