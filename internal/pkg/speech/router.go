package speech

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"
)

const objectDeleteTimeout = 10 * time.Second

//recognitionOperation wraps a long running recognize operation for testing
type recognitionOperation interface {
	Wait(ctx context.Context) (*speechpb.LongRunningRecognizeResponse, error)
}

//recognizer wraps the speech client methods the router needs
type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error)
	LongRunningRecognize(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (recognitionOperation, error)
}

//objectStore keeps remote audio for long running recognition
type objectStore interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

//Router sends audio to Google Speech, inline or through the bucket by size
type Router struct {
	recognizer recognizer
	store      objectStore
	sampleRate int
	readFile   func(name string) ([]byte, error)
}

//NewRouter creates Router instance
func NewRouter(client *speech.Client, store objectStore, sampleRate int) (*Router, error) {
	if client == nil {
		return nil, errors.New("No speech client provided")
	}
	if store == nil {
		return nil, errors.New("No object store provided")
	}
	if sampleRate <= 0 {
		return nil, errors.Errorf("Wrong sample rate %d", sampleRate)
	}
	return &Router{recognizer: googleRecognizer{client: client}, store: store,
		sampleRate: sampleRate, readFile: os.ReadFile}, nil
}

//Recognize transcribes the audio file and returns transcript entries
func (r *Router) Recognize(ctx context.Context, audioPath string, profile string) ([]transcription.Entry, error) {
	content, err := r.readFile(audioPath)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read audio "+audioPath)
	}
	config := recognitionConfig(profile, r.sampleRate)

	var results []*speechpb.SpeechRecognitionResult
	size := int64(len(content))
	if size <= OneMinuteSize(r.sampleRate) {
		cmdapp.Log.Infof("Audio file is %d bytes, using inline processing", size)
		results, err = r.recognizeInline(ctx, config, content)
	} else {
		cmdapp.Log.Infof("Audio file is %d bytes, uploading to bucket for processing", size)
		results, err = r.recognizeRemote(ctx, config, content, size)
	}
	if err != nil {
		return nil, Classify(err)
	}
	return Flatten(results, profile)
}

func (r *Router) recognizeInline(ctx context.Context, config *speechpb.RecognitionConfig,
	content []byte) ([]*speechpb.SpeechRecognitionResult, error) {
	resp, err := r.recognizer.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: config,
		Audio:  &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: content}},
	})
	if err != nil {
		return nil, err
	}
	return resp.GetResults(), nil
}

func (r *Router) recognizeRemote(ctx context.Context, config *speechpb.RecognitionConfig,
	content []byte, size int64) ([]*speechpb.SpeechRecognitionResult, error) {
	name := "temp_audio_" + uuid.New().String() + ".wav"
	uri, err := r.store.Upload(ctx, name, bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "Can't upload audio")
	}
	defer r.deleteObject(name)

	op, err := r.recognizer.LongRunningRecognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: config,
		Audio:  &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Uri{Uri: uri}},
	})
	if err != nil {
		return nil, err
	}

	timeout := AdaptiveTimeout(size, r.sampleRate)
	cmdapp.Log.Infof("Waiting for operation up to %s", timeout.String())
	ctxWait, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	resp, err := op.Wait(ctxWait)
	if err != nil {
		return nil, err
	}
	return resp.GetResults(), nil
}

func (r *Router) deleteObject(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), objectDeleteTimeout)
	defer cancel()
	err := r.store.Delete(ctx, name)
	if err != nil {
		cmdapp.Log.Warnf("Can't clean up object %s: %s", name, err.Error())
	}
}

type googleRecognizer struct {
	client *speech.Client
}

func (g googleRecognizer) Recognize(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
	return g.client.Recognize(ctx, req)
}

func (g googleRecognizer) LongRunningRecognize(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (recognitionOperation, error) {
	op, err := g.client.LongRunningRecognize(ctx, req)
	if err != nil {
		return nil, err
	}
	return googleOperation{op: op}, nil
}

type googleOperation struct {
	op *speech.LongRunningRecognizeOperation
}

func (g googleOperation) Wait(ctx context.Context) (*speechpb.LongRunningRecognizeResponse, error) {
	return g.op.Wait(ctx)
}
