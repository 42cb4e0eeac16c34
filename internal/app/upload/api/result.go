package api

import "github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"

//TaskResult - upload method response in JSON
type TaskResult struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

//TranscriptionResult - job status method response in JSON
type TranscriptionResult struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Result  *transcription.Result `json:"result,omitempty"`
}

//TranslationRequest - translate method request in JSON
type TranslationRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
}

//TranslationResult - translate method response in JSON
type TranslationResult struct {
	Translation string `json:"translation"`
	Method      string `json:"method"`
}
