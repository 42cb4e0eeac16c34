package saver

import (
	"io"
	"os"
	"path/filepath"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/pkg/errors"
)

const copyChunkSize = 32 * 1024

//ErrTooLarge indicates the incoming file exceeded the configured size limit
var ErrTooLarge = errors.New("file size limit exceeded")

//WriterCloser keeps Writer interface and close function
type WriterCloser interface {
	io.Writer
	Close() error
}

//OpenFileFunc declares function to open file by name and return Writer
type OpenFileFunc func(fileName string) (WriterCloser, error)

// LocalFileSaver saves file on local disk.
// Files larger than MaxSize are aborted mid copy and the partial file is removed.
type LocalFileSaver struct {
	// StoragePath is the main folder to save into
	StoragePath  string
	MaxSize      int64
	OpenFileFunc OpenFileFunc
	RemoveFunc   func(fileName string) error
}

//NewLocalFileSaver creates LocalFileSaver instance
func NewLocalFileSaver(storagePath string, maxSize int64) (*LocalFileSaver, error) {
	if storagePath == "" {
		return nil, errors.New("No storage path provided")
	}
	err := os.MkdirAll(storagePath, os.ModePerm)
	if err != nil {
		return nil, errors.Wrap(err, "Can't init file storage at "+storagePath)
	}
	f := LocalFileSaver{StoragePath: storagePath, MaxSize: maxSize,
		OpenFileFunc: openFile, RemoveFunc: os.Remove}
	return &f, nil
}

// Save saves file to disk reading in chunks up to the size limit
func (fs LocalFileSaver) Save(name string, reader io.Reader) error {
	fileName := filepath.Join(fs.StoragePath, name)
	f, err := fs.OpenFileFunc(fileName)
	if err != nil {
		return errors.Wrap(err, "Can't create file "+fileName)
	}
	saved := int64(0)
	for {
		n, err := io.CopyN(f, reader, copyChunkSize)
		saved += n
		if fs.MaxSize > 0 && saved > fs.MaxSize {
			fs.abort(f, fileName)
			return errors.Wrapf(ErrTooLarge, "file %s", name)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fs.abort(f, fileName)
			return errors.Wrap(err, "Can't save file "+fileName)
		}
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "Can't close file "+fileName)
	}
	cmdapp.Log.Infof("Saved file %s. Size = %d", fileName, saved)
	return nil
}

//Path returns full path for stored file name
func (fs LocalFileSaver) Path(name string) string {
	return filepath.Join(fs.StoragePath, name)
}

//HealthyFunc returns a health check function testing the storage dir is writable
func (fs LocalFileSaver) HealthyFunc() func() error {
	return func() error {
		f, err := os.CreateTemp(fs.StoragePath, ".health.*")
		if err != nil {
			return errors.Wrap(err, "Storage dir not writable")
		}
		defer os.Remove(f.Name())
		return f.Close()
	}
}

func (fs LocalFileSaver) abort(f WriterCloser, fileName string) {
	cmdapp.LogIf(f.Close())
	cmdapp.Log.Infof("Removing partial file %s", fileName)
	cmdapp.LogIf(fs.RemoveFunc(fileName))
}

func openFile(fileName string) (WriterCloser, error) {
	return os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
}
