package speech

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//ErrRecognitionTimeout indicates the recognition did not finish in time
var ErrRecognitionTimeout = errors.New("recognition timed out")

//ErrPermissionDenied indicates the configured credentials lack access
var ErrPermissionDenied = errors.New("permission denied")

//ErrNoResults indicates the recognizer returned no transcription
var ErrNoResults = errors.New("no transcription results found")

//Classify maps a recognition failure to a known error type
func Classify(err error) error {
	if err == nil {
		return nil
	}
	cause := errors.Cause(err)
	if cause == context.DeadlineExceeded {
		return errors.Wrapf(ErrRecognitionTimeout, "%s", err.Error())
	}
	if st, ok := status.FromError(cause); ok {
		switch st.Code() {
		case codes.DeadlineExceeded:
			return errors.Wrapf(ErrRecognitionTimeout, "%s", err.Error())
		case codes.PermissionDenied:
			return errors.Wrapf(ErrPermissionDenied, "%s", err.Error())
		}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline") {
		return errors.Wrapf(ErrRecognitionTimeout, "%s", err.Error())
	}
	if strings.Contains(msg, "permission") {
		return errors.Wrapf(ErrPermissionDenied, "%s", err.Error())
	}
	return errors.Wrap(err, "Transcription failed")
}
