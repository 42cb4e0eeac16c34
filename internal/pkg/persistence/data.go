package persistence

import "github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"

type (
	// Status is the job status record
	Status struct {
		ID     string `bson:"ID"`
		Status string `bson:"status,omitempty"`
		Error  string `bson:"error,omitempty"`
	}

	// Result is the stored transcription result record
	Result struct {
		ID            string                `bson:"ID"`
		Transcription []transcription.Entry `bson:"transcription,omitempty"`
	}
)
