package mongo

import (
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultSaver saves transcription result to mongo db
type ResultSaver struct {
	SessionProvider *SessionProvider
}

//NewResultSaver creates ResultSaver instance
func NewResultSaver(sessionProvider *SessionProvider) (*ResultSaver, error) {
	f := ResultSaver{SessionProvider: sessionProvider}
	return &f, nil
}

// Save saves result to DB
func (fs *ResultSaver) Save(ID string, entries []transcription.Entry) error {
	cmdapp.Log.Infof("Saving result for %s, %d entries", ID, len(entries))

	c, ctx, cancel, err := newColl(fs.SessionProvider, resultTable)
	if err != nil {
		return err
	}
	defer cancel()

	err = c.FindOneAndUpdate(ctx, bson.M{"ID": sanitize(ID)},
		bson.M{"$set": bson.M{"transcription": entries}},
		options.FindOneAndUpdate().SetUpsert(true)).Err()
	if err != nil && !isNoDocuments(err) {
		return errors.Wrap(err, "can't save result")
	}
	return nil
}
