package edf

import (
	"io"
	"os"
)

// File is an open EDF file with its decoded header.
// Close must be called to release the underlying file handle.
type File struct {
	*Header
	path string
	size int64
	f    *os.File
}

// IsEDF reports whether the file at path starts with the EDF version field.
// Unreadable files are not EDF files.
func IsEDF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, len(Version))
	if _, err := io.ReadFull(f, buf); err != nil {
		return false
	}
	return string(buf) == Version
}

// Open opens path and decodes its header. On error nothing is left open.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	h, err := ReadHeader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		Header: h,
		path:   path,
		size:   fi.Size(),
		f:      f,
	}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Size returns the file size in bytes.
func (f *File) Size() int64 {
	return f.size
}

// Close releases the file handle. It is safe to call more than once.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
