package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/upload/api"
)

//StatusProvider is a mock
type StatusProvider struct {
	mock.Mock
}

//Get is a mocked Get function
func (m *StatusProvider) Get(ID string) (*api.TranscriptionResult, error) {
	args := m.Mock.Called(ID)
	res, _ := args.Get(0).(*api.TranscriptionResult)
	return res, args.Error(1)
}
