package audio

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var normalizer *Normalizer
var runCalls []*exec.Cmd
var removed []string

func initTestNormalizer(t *testing.T, statErr error, size int64) {
	runCalls = nil
	removed = nil
	normalizer = &Normalizer{ffmpegPath: "ffmpeg", sampleRate: 16000, tempDir: "/tmp",
		runCmd: func(cmd *exec.Cmd) error {
			runCalls = append(runCalls, cmd)
			return nil
		},
		createTemp: func(dir, pattern string) (string, error) {
			return "/tmp/normalized_1.wav", nil
		},
		statFunc: func(name string) (os.FileInfo, error) {
			return fakeFileInfo{size: size}, statErr
		},
		removeFunc: func(name string) error {
			removed = append(removed, name)
			return nil
		}}
}

func TestNormalize(t *testing.T) {
	initTestNormalizer(t, nil, 100)
	res, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.Nil(t, err)
	assert.Equal(t, "/tmp/normalized_1.wav", res)
	assert.Equal(t, 1, len(runCalls))
	assert.Contains(t, runCalls[0].Args, "-ar")
	assert.Contains(t, runCalls[0].Args, "16000")
	assert.Contains(t, runCalls[0].Args, "/data/in.mp3")
	assert.Equal(t, []string{"/data/in.mp3"}, removed)
}

func TestNormalize_FailsOnNoInput(t *testing.T) {
	initTestNormalizer(t, errors.New("no file"), 0)
	_, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.True(t, errors.Is(err, ErrInputNotFound))
	assert.Equal(t, 0, len(runCalls))
}

func TestNormalize_FailsOnCmdError(t *testing.T) {
	initTestNormalizer(t, nil, 100)
	normalizer.runCmd = func(cmd *exec.Cmd) error {
		return errors.New("ffmpeg failed")
	}
	_, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.True(t, errors.Is(err, ErrNormalizationFailed))
	assert.Equal(t, []string{"/tmp/normalized_1.wav"}, removed)
}

func TestNormalize_FailsOnEmptyOutput(t *testing.T) {
	initTestNormalizer(t, nil, 100)
	statCalls := 0
	normalizer.statFunc = func(name string) (os.FileInfo, error) {
		statCalls++
		if statCalls > 1 {
			return fakeFileInfo{size: 0}, nil
		}
		return fakeFileInfo{size: 100}, nil
	}
	_, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.True(t, errors.Is(err, ErrNormalizationFailed))
	assert.Equal(t, []string{"/tmp/normalized_1.wav"}, removed)
}

func TestNormalize_HoldsCommandLock(t *testing.T) {
	initTestNormalizer(t, nil, 100)
	var lock sync.RWMutex
	normalizer.UseCommandLock(&lock)
	normalizer.runCmd = func(cmd *exec.Cmd) error {
		assert.False(t, lock.TryLock())
		return nil
	}
	_, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.Nil(t, err)
	assert.True(t, lock.TryLock())
	lock.Unlock()
}

func TestNormalize_ReleasesCommandLockOnFailure(t *testing.T) {
	initTestNormalizer(t, nil, 100)
	var lock sync.RWMutex
	normalizer.UseCommandLock(&lock)
	normalizer.runCmd = func(cmd *exec.Cmd) error {
		return errors.New("ffmpeg failed")
	}
	_, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.True(t, errors.Is(err, ErrNormalizationFailed))
	assert.True(t, lock.TryLock())
	lock.Unlock()
}

func TestNormalize_KeepsResultOnInputDeleteFailure(t *testing.T) {
	initTestNormalizer(t, nil, 100)
	normalizer.removeFunc = func(name string) error {
		return errors.New("locked")
	}
	res, err := normalizer.Normalize(context.Background(), "/data/in.mp3")
	assert.Nil(t, err)
	assert.Equal(t, "/tmp/normalized_1.wav", res)
}

type fakeFileInfo struct {
	size int64
}

func (f fakeFileInfo) Name() string       { return "normalized_1.wav" }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() os.FileMode  { return 0666 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() interface{}   { return nil }
