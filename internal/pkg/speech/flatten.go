package speech

import (
	"strconv"
	"strings"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"
)

const noTimeOffset = "0.0s"

//Flatten turns recognition results into transcript entries keeping the order.
//Start and end times come from the first and last word of an alternative.
func Flatten(results []*speechpb.SpeechRecognitionResult, profile string) ([]transcription.Entry, error) {
	var res []transcription.Entry
	for _, result := range results {
		for _, alternative := range result.GetAlternatives() {
			entry := transcription.Entry{
				StartTime:    noTimeOffset,
				EndTime:      noTimeOffset,
				LanguageCode: profile,
				Confidence:   alternative.GetConfidence(),
				Transcript:   alternative.GetTranscript(),
			}
			words := alternative.GetWords()
			if len(words) > 0 {
				entry.StartTime = formatSeconds(words[0].GetStartTime())
				entry.EndTime = formatSeconds(words[len(words)-1].GetEndTime())
			}
			res = append(res, entry)
		}
	}
	if len(res) == 0 {
		return nil, ErrNoResults
	}
	return res, nil
}

func formatSeconds(d *durationpb.Duration) string {
	s := strconv.FormatFloat(d.AsDuration().Seconds(), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + ".0"
	}
	return s + "s"
}
