package speech

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "grpc deadline", err: status.Error(codes.DeadlineExceeded, "operation expired"),
			expected: ErrRecognitionTimeout},
		{name: "grpc permission", err: status.Error(codes.PermissionDenied, "no access"),
			expected: ErrPermissionDenied},
		{name: "context deadline", err: context.DeadlineExceeded, expected: ErrRecognitionTimeout},
		{name: "timeout text", err: errors.New("operation timeout after 90s"), expected: ErrRecognitionTimeout},
		{name: "deadline text", err: errors.New("deadline exceeded while waiting"), expected: ErrRecognitionTimeout},
		{name: "permission text", err: errors.New("caller lacks permission"), expected: ErrPermissionDenied},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := Classify(test.err)
			if test.expected == nil {
				assert.Nil(t, res)
				return
			}
			assert.True(t, errors.Is(res, test.expected))
		})
	}
}

func TestClassify_WrapsUnknown(t *testing.T) {
	err := errors.New("olia")
	res := Classify(err)
	assert.NotNil(t, res)
	assert.False(t, errors.Is(res, ErrRecognitionTimeout))
	assert.False(t, errors.Is(res, ErrPermissionDenied))
	assert.Contains(t, res.Error(), "olia")
}

func TestClassify_SeesThroughWrap(t *testing.T) {
	err := errors.Wrap(status.Error(codes.PermissionDenied, "no access"), "recognize")
	assert.True(t, errors.Is(Classify(err), ErrPermissionDenied))
}
