package messages

// Publisher publishes a job id to some topic
type Publisher interface {
	Publish(id string, topic string) error
}
