package rabbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyQueueName(t *testing.T) {
	var prv ChannelProvider
	assert.Equal(t, "", prv.QueueName(""))
}

func TestNoPrefix(t *testing.T) {
	var prv ChannelProvider
	assert.Equal(t, "Transcribe", prv.QueueName("Transcribe"))
}

func TestPrefix(t *testing.T) {
	var prv ChannelProvider
	prv.qPrefix = "prefix"
	assert.Equal(t, "prefix_Transcribe", prv.QueueName("Transcribe"))
}
