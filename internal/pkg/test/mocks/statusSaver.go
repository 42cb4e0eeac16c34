package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/status"
)

//StatusSaver is a mock
type StatusSaver struct {
	mock.Mock
}

//Save is a mocked Save function
func (m *StatusSaver) Save(ID string, st status.Status) error {
	args := m.Mock.Called(ID, st)
	return args.Error(0)
}

//SaveError is a mocked SaveError function
func (m *StatusSaver) SaveError(ID string, errorStr string) error {
	args := m.Mock.Called(ID, errorStr)
	return args.Error(0)
}
