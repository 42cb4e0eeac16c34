package speech

import "cloud.google.com/go/speech/apiv1/speechpb"

//Recognition profiles accepted by the service
const (
	ProfileEnglish    = "english"
	ProfileGeorgian   = "georgian"
	ProfileHOGeorgian = "ho_georgian"
)

//ProfileLanguages maps a profile to the primary language code and fallbacks
func ProfileLanguages(profile string) (string, []string) {
	if profile == ProfileGeorgian || profile == ProfileHOGeorgian {
		return "ka-GE", []string{"en-US", "ru-RU"}
	}
	return "en-US", nil
}

func recognitionConfig(profile string, sampleRate int) *speechpb.RecognitionConfig {
	language, alternatives := ProfileLanguages(profile)
	return &speechpb.RecognitionConfig{
		Encoding:                   speechpb.RecognitionConfig_LINEAR16,
		SampleRateHertz:            int32(sampleRate),
		LanguageCode:               language,
		AlternativeLanguageCodes:   alternatives,
		EnableWordTimeOffsets:      true,
		EnableWordConfidence:       true,
		EnableAutomaticPunctuation: true,
	}
}
