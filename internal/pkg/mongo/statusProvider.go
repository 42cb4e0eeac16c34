package mongo

import (
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/upload/api"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/persistence"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/status"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// StatusProvider provides job status from mongo db
type StatusProvider struct {
	SessionProvider *SessionProvider
}

//NewStatusProvider creates StatusProvider instance
func NewStatusProvider(sessionProvider *SessionProvider) (*StatusProvider, error) {
	f := StatusProvider{SessionProvider: sessionProvider}
	return &f, nil
}

// Get retrieves status from DB
func (fs *StatusProvider) Get(id string) (*api.TranscriptionResult, error) {
	cmdapp.Log.Infof("Retrieving status %s", id)

	c, ctx, cancel, err := newColl(fs.SessionProvider, statusTable)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var m persistence.Status
	err = c.FindOne(ctx, bson.M{"ID": sanitize(id)}).Decode(&m)
	if isNoDocuments(err) {
		cmdapp.Log.Infof("ID not found %s", id)
		return newNotFoundResult(id), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "can't get status record")
	}

	result := api.TranscriptionResult{Status: m.Status}
	switch status.From(m.Status) {
	case status.Pending:
		result.Message = "Task is still in progress."
	case status.Failure:
		result.Message = m.Error
	case status.Success:
		result.Result, err = fs.getResult(id)
		if err != nil {
			return nil, err
		}
	default:
		return newNotFoundResult(id), nil
	}
	return &result, nil
}

func (fs *StatusProvider) getResult(id string) (*transcription.Result, error) {
	cmdapp.Log.Infof("Retrieving result %s", id)

	c, ctx, cancel, err := newColl(fs.SessionProvider, resultTable)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var m persistence.Result
	err = c.FindOne(ctx, bson.M{"ID": sanitize(id)}).Decode(&m)
	if isNoDocuments(err) {
		cmdapp.Log.Infof("Result not found %s", id)
		return &transcription.Result{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "can't get result record")
	}
	return &transcription.Result{Transcription: m.Transcription}, nil
}

func newNotFoundResult(id string) *api.TranscriptionResult {
	return &api.TranscriptionResult{
		Status:  status.Name(status.Failure),
		Message: "Unknown task ID: " + id,
	}
}
