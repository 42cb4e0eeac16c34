package messages

//TranscriptionMessage message going through the broker for one transcription job
type TranscriptionMessage struct {
	ID      string `json:"id"`
	File    string `json:"file,omitempty"`
	Profile string `json:"profile,omitempty"`
}

//NewTranscriptionMessage creates the message for a job
func NewTranscriptionMessage(id, file, profile string) *TranscriptionMessage {
	return &TranscriptionMessage{ID: id, File: file, Profile: profile}
}
