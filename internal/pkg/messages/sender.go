package messages

// Sender sends a message to the message broker
type Sender interface {
	Send(message *TranscriptionMessage, queue string) error
}
