package saver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSaves(t *testing.T) {
	fakeFile := fakeWriterCloser{bytes.NewBufferString(""), "", false}
	fileSaver := LocalFileSaver{StoragePath: "/data",
		OpenFileFunc: func(file string) (WriterCloser, error) {
			fakeFile.Name = file
			return &fakeFile, nil
		}}
	err := fileSaver.Save("file", strings.NewReader("body"))
	assert.Nil(t, err)
	assert.Equal(t, "body", fakeFile.String())
	assert.Equal(t, "/data/file", fakeFile.Name)
	assert.True(t, fakeFile.Closed)
}

func TestFailsOnNoOpen(t *testing.T) {
	fakeFile := fakeWriterCloser{bytes.NewBufferString(""), "", false}
	fileSaver := LocalFileSaver{StoragePath: "",
		OpenFileFunc: func(file string) (WriterCloser, error) {
			return &fakeFile, errors.New("olia")
		}}
	err := fileSaver.Save("file", strings.NewReader("body"))
	assert.NotNil(t, err)
}

func TestAbortsOnTooLarge(t *testing.T) {
	fakeFile := fakeWriterCloser{bytes.NewBufferString(""), "", false}
	removed := ""
	fileSaver := LocalFileSaver{StoragePath: "/data", MaxSize: 10,
		OpenFileFunc: func(file string) (WriterCloser, error) {
			fakeFile.Name = file
			return &fakeFile, nil
		},
		RemoveFunc: func(file string) error {
			removed = file
			return nil
		}}
	err := fileSaver.Save("file", strings.NewReader(strings.Repeat("a", 11)))
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))
	assert.Equal(t, "/data/file", removed)
	assert.True(t, fakeFile.Closed)
}

func TestAllowsExactLimit(t *testing.T) {
	fakeFile := fakeWriterCloser{bytes.NewBufferString(""), "", false}
	fileSaver := LocalFileSaver{StoragePath: "/data", MaxSize: 10,
		OpenFileFunc: func(file string) (WriterCloser, error) {
			return &fakeFile, nil
		}}
	err := fileSaver.Save("file", strings.NewReader(strings.Repeat("a", 10)))
	assert.Nil(t, err)
}

func TestChecksDirOnInit(t *testing.T) {
	_, err := NewLocalFileSaver("./", 0)
	assert.Nil(t, err)

	_, err = NewLocalFileSaver("", 0)
	assert.NotNil(t, err)
}

func TestPath(t *testing.T) {
	fileSaver := LocalFileSaver{StoragePath: "/data"}
	assert.Equal(t, "/data/file.wav", fileSaver.Path("file.wav"))
}

type fakeWriterCloser struct {
	*bytes.Buffer
	Name   string
	Closed bool
}

func (t *fakeWriterCloser) Close() error {
	t.Closed = true
	return nil
}
