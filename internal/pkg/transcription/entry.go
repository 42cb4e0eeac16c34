package transcription

type (
	// Entry is one time-aligned transcript unit produced for a
	// (result segment, alternative) pair of the recognition response
	Entry struct {
		StartTime    string  `json:"start_time" bson:"start_time"`
		EndTime      string  `json:"end_time" bson:"end_time"`
		LanguageCode string  `json:"language_code" bson:"language_code"`
		Confidence   float32 `json:"confidence" bson:"confidence"`
		Transcript   string  `json:"transcript" bson:"transcript"`
	}

	// Result is the payload stored for a successfully transcribed job
	Result struct {
		Transcription []Entry `json:"transcription" bson:"transcription"`
	}
)
