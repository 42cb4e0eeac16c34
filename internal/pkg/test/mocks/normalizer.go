package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

//Normalizer is a mock
type Normalizer struct {
	mock.Mock
}

//Normalize is a mocked Normalize function
func (m *Normalizer) Normalize(ctx context.Context, inputPath string) (string, error) {
	args := m.Mock.Called(inputPath)
	return args.String(0), args.Error(1)
}
