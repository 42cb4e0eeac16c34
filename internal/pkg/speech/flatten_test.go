package speech

import (
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestFlatten(t *testing.T) {
	results := []*speechpb.SpeechRecognitionResult{
		{Alternatives: []*speechpb.SpeechRecognitionAlternative{
			{Transcript: "gamarjoba", Confidence: 0.95,
				Words: []*speechpb.WordInfo{
					{Word: "gamarjoba", StartTime: durationpb.New(500000000), EndTime: durationpb.New(1900000000)},
				}},
		}},
	}
	res, err := Flatten(results, "georgian")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "0.5s", res[0].StartTime)
	assert.Equal(t, "1.9s", res[0].EndTime)
	assert.Equal(t, "georgian", res[0].LanguageCode)
	assert.Equal(t, float32(0.95), res[0].Confidence)
	assert.Equal(t, "gamarjoba", res[0].Transcript)
}

func TestFlatten_SeveralAlternatives(t *testing.T) {
	results := []*speechpb.SpeechRecognitionResult{
		{Alternatives: []*speechpb.SpeechRecognitionAlternative{
			{Transcript: "one"}, {Transcript: "two"},
		}},
		{Alternatives: []*speechpb.SpeechRecognitionAlternative{
			{Transcript: "three"},
		}},
	}
	res, err := Flatten(results, "english")
	assert.Nil(t, err)
	assert.Equal(t, 3, len(res))
	assert.Equal(t, "one", res[0].Transcript)
	assert.Equal(t, "two", res[1].Transcript)
	assert.Equal(t, "three", res[2].Transcript)
}

func TestFlatten_NoWords(t *testing.T) {
	results := []*speechpb.SpeechRecognitionResult{
		{Alternatives: []*speechpb.SpeechRecognitionAlternative{
			{Transcript: "olia", Confidence: 0.5},
		}},
	}
	res, err := Flatten(results, "english")
	assert.Nil(t, err)
	assert.Equal(t, "0.0s", res[0].StartTime)
	assert.Equal(t, "0.0s", res[0].EndTime)
}

func TestFlatten_UsesFirstAndLastWord(t *testing.T) {
	results := []*speechpb.SpeechRecognitionResult{
		{Alternatives: []*speechpb.SpeechRecognitionAlternative{
			{Transcript: "a b c",
				Words: []*speechpb.WordInfo{
					{Word: "a", StartTime: durationpb.New(0), EndTime: durationpb.New(1000000000)},
					{Word: "b", StartTime: durationpb.New(1000000000), EndTime: durationpb.New(2000000000)},
					{Word: "c", StartTime: durationpb.New(2000000000), EndTime: durationpb.New(3500000000)},
				}},
		}},
	}
	res, err := Flatten(results, "english")
	assert.Nil(t, err)
	assert.Equal(t, "0.0s", res[0].StartTime)
	assert.Equal(t, "3.5s", res[0].EndTime)
}

func TestFlatten_Empty(t *testing.T) {
	_, err := Flatten([]*speechpb.SpeechRecognitionResult{}, "english")
	assert.True(t, errors.Is(err, ErrNoResults))

	_, err = Flatten([]*speechpb.SpeechRecognitionResult{{}}, "english")
	assert.True(t, errors.Is(err, ErrNoResults))
}
