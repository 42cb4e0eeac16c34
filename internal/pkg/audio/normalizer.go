package audio

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

//ErrInputNotFound indicates the audio file to normalize does not exist
var ErrInputNotFound = errors.New("input audio file does not exist")

//ErrNormalizationFailed indicates ffmpeg produced no usable output
var ErrNormalizationFailed = errors.New("audio normalization failed")

//Normalizer converts uploaded audio to mono WAV at the target sample rate
type Normalizer struct {
	ffmpegPath string
	sampleRate int
	tempDir    string
	cmdLock    *sync.RWMutex

	runCmd     func(cmd *exec.Cmd) error
	createTemp func(dir, pattern string) (string, error)
	statFunc   func(name string) (os.FileInfo, error)
	removeFunc func(name string) error
}

//NewNormalizer creates Normalizer instance from config
func NewNormalizer() (*Normalizer, error) {
	res := Normalizer{}
	res.ffmpegPath = cmdapp.Config.GetString("audio.ffmpegPath")
	if res.ffmpegPath == "" {
		res.ffmpegPath = "ffmpeg"
	}
	res.sampleRate = cmdapp.Config.GetInt("audio.sampleRate")
	if res.sampleRate <= 0 {
		res.sampleRate = 16000
	}
	res.tempDir = cmdapp.Config.GetString("audio.tempDir")
	if res.tempDir == "" {
		res.tempDir = os.TempDir()
	}
	res.runCmd = runCmd
	res.createTemp = createTempFile
	res.statFunc = os.Stat
	res.removeFunc = os.Remove
	return &res, nil
}

//SampleRate returns the target sample rate of normalized audio
func (n *Normalizer) SampleRate() int {
	return n.sampleRate
}

//UseCommandLock makes Normalize hold lock for reading while ffmpeg runs.
//Pass the lock given to the child reaper so it cannot steal ffmpeg's exit status.
func (n *Normalizer) UseCommandLock(lock *sync.RWMutex) {
	n.cmdLock = lock
}

//Normalize decodes inputPath into a fresh mono WAV file and returns its path.
//The input file is removed on success, best-effort.
func (n *Normalizer) Normalize(ctx context.Context, inputPath string) (string, error) {
	if _, err := n.statFunc(inputPath); err != nil {
		return "", errors.Wrapf(ErrInputNotFound, "file %s", inputPath)
	}
	outputPath, err := n.createTemp(n.tempDir, "normalized_*.wav")
	if err != nil {
		return "", errors.Wrap(err, "Can't create temp file")
	}

	cmd := exec.CommandContext(ctx, n.ffmpegPath, "-y", "-i", inputPath,
		"-ac", "1", "-ar", strconv.Itoa(n.sampleRate), outputPath)
	cmdapp.Log.Infof("Running command: %s", cmd.String())
	if n.cmdLock != nil {
		n.cmdLock.RLock()
	}
	err = n.runCmd(cmd)
	if n.cmdLock != nil {
		n.cmdLock.RUnlock()
	}
	if err != nil {
		cmdapp.LogIf(n.removeFunc(outputPath))
		return "", errors.Wrapf(ErrNormalizationFailed, "%s", err.Error())
	}

	st, err := n.statFunc(outputPath)
	if err != nil || st.Size() == 0 {
		cmdapp.LogIf(n.removeFunc(outputPath))
		return "", errors.Wrapf(ErrNormalizationFailed, "no output %s", outputPath)
	}
	cmdapp.Log.Infof("Normalized audio saved at %s. Size = %d", outputPath, st.Size())

	err = n.removeFunc(inputPath)
	if err != nil {
		cmdapp.Log.Warnf("Can't delete original audio file %s: %s", inputPath, err.Error())
	}
	return outputPath, nil
}

func runCmd(cmd *exec.Cmd) error {
	var outputBuffer bytes.Buffer
	cmd.Stdout = &outputBuffer
	cmd.Stderr = &outputBuffer
	err := cmd.Run()
	if err != nil {
		return errors.Wrap(err, "Output: "+outputBuffer.String())
	}
	return nil
}

func createTempFile(dir, pattern string) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return f.Name(), nil
}
