package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"
)

//Recognizer is a mock
type Recognizer struct {
	mock.Mock
}

//Recognize is a mocked Recognize function
func (m *Recognizer) Recognize(ctx context.Context, audioPath string, profile string) ([]transcription.Entry, error) {
	args := m.Mock.Called(audioPath, profile)
	res, _ := args.Get(0).([]transcription.Entry)
	return res, args.Error(1)
}
