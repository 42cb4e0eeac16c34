package speech

import (
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/stretchr/testify/assert"
)

func TestProfileLanguages(t *testing.T) {
	language, alternatives := ProfileLanguages(ProfileGeorgian)
	assert.Equal(t, "ka-GE", language)
	assert.Equal(t, []string{"en-US", "ru-RU"}, alternatives)

	language, alternatives = ProfileLanguages(ProfileHOGeorgian)
	assert.Equal(t, "ka-GE", language)
	assert.Equal(t, []string{"en-US", "ru-RU"}, alternatives)

	language, alternatives = ProfileLanguages(ProfileEnglish)
	assert.Equal(t, "en-US", language)
	assert.Nil(t, alternatives)

	language, alternatives = ProfileLanguages("unknown")
	assert.Equal(t, "en-US", language)
	assert.Nil(t, alternatives)
}

func TestRecognitionConfig(t *testing.T) {
	config := recognitionConfig(ProfileGeorgian, 16000)
	assert.Equal(t, speechpb.RecognitionConfig_LINEAR16, config.Encoding)
	assert.Equal(t, int32(16000), config.SampleRateHertz)
	assert.Equal(t, "ka-GE", config.LanguageCode)
	assert.True(t, config.EnableWordTimeOffsets)
	assert.True(t, config.EnableWordConfidence)
	assert.True(t, config.EnableAutomaticPunctuation)
}
