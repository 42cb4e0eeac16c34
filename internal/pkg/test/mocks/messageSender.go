package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/messages"
)

//MessageSender is a mock
type MessageSender struct {
	mock.Mock
}

//Send is a mocked Send function
func (m *MessageSender) Send(message *messages.TranscriptionMessage, queue string) error {
	args := m.Mock.Called(message, queue)
	return args.Error(0)
}
