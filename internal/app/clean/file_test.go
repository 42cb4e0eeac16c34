package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailsInit_StoragePath(t *testing.T) {
	f, err := newLocalFile("", "path")
	assert.Nil(t, f)
	assert.NotNil(t, err)
}

func TestFailsInit_Pattern(t *testing.T) {
	f, err := newLocalFile("/path", "")
	assert.Nil(t, f)
	assert.NotNil(t, err)
	f, err = newLocalFile("/path", "olia")
	assert.Nil(t, f)
	assert.NotNil(t, err)
}

func TestInit(t *testing.T) {
	f, err := newLocalFile("/path", "HOAudio_{ID}.*")
	assert.Nil(t, err)
	assert.NotNil(t, f)
}

func TestGetPath(t *testing.T) {
	f, _ := newLocalFile("/path", "HOAudio_{ID}.*")
	assert.Equal(t, "/path/HOAudio_id1.*", f.getPath("id1"))
}
