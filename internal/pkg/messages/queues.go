package messages

const (
	// Transcribe is the work queue for transcription jobs
	Transcribe string = "Transcribe"
	// StatusChange is the fanout exchange for job status change events
	StatusChange string = "StatusChange"
)
