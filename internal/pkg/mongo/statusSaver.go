package mongo

import (
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/status"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatusSaver saves job status to mongo db
type StatusSaver struct {
	SessionProvider *SessionProvider
}

//NewStatusSaver creates StatusSaver instance
func NewStatusSaver(sessionProvider *SessionProvider) (*StatusSaver, error) {
	f := StatusSaver{SessionProvider: sessionProvider}
	return &f, nil
}

// Save saves status to DB
func (ss *StatusSaver) Save(ID string, st status.Status) error {
	cmdapp.Log.Infof("Saving status %s: %s", ID, status.Name(st))

	c, ctx, cancel, err := newColl(ss.SessionProvider, statusTable)
	if err != nil {
		return err
	}
	defer cancel()

	err = c.FindOneAndUpdate(ctx, bson.M{"ID": sanitize(ID)},
		bson.M{"$set": bson.M{"status": status.Name(st)}, "$unset": bson.M{"error": 1}},
		options.FindOneAndUpdate().SetUpsert(true)).Err()
	if err != nil && !isNoDocuments(err) {
		return errors.Wrap(err, "can't save status")
	}
	return nil
}

//SaveError saves terminal failure status with message
func (ss *StatusSaver) SaveError(ID string, errorStr string) error {
	cmdapp.Log.Infof("Saving error status %s: %s", ID, errorStr)

	c, ctx, cancel, err := newColl(ss.SessionProvider, statusTable)
	if err != nil {
		return err
	}
	defer cancel()

	err = c.FindOneAndUpdate(ctx, bson.M{"ID": sanitize(ID)},
		bson.M{"$set": bson.M{"status": status.Name(status.Failure), "error": errorStr}},
		options.FindOneAndUpdate().SetUpsert(true)).Err()
	if err != nil && !isNoDocuments(err) {
		return errors.Wrap(err, "can't save error status")
	}
	return nil
}
