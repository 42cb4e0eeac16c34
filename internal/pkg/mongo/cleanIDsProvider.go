package mongo

import (
	"time"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CleanIDsProvider returns expired job IDs to remove from the system
type CleanIDsProvider struct {
	SessionProvider *SessionProvider
	expireDuration  time.Duration
}

//NewCleanIDsProvider creates CleanIDsProvider instance
func NewCleanIDsProvider(sessionProvider *SessionProvider, expireDuration time.Duration) (*CleanIDsProvider, error) {
	f := CleanIDsProvider{SessionProvider: sessionProvider, expireDuration: expireDuration}
	return &f, nil
}

// Get returns expired IDs. Records are sorted by the creation time,
// so the scan stops at the first not yet expired record.
func (p *CleanIDsProvider) Get() ([]string, error) {
	expDate := time.Now().Add(-p.expireDuration)
	cmdapp.Log.Infof("Getting old records, time < %s", expDate.String())

	c, ctx, cancel, err := newColl(p.SessionProvider, statusTable)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "can't select from "+statusTable)
	}
	defer cursor.Close(ctx)

	result := make([]string, 0)
	for cursor.Next(ctx) {
		var m bson.M
		if err := cursor.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "can't decode record")
		}
		if !p.isOld(m, expDate) {
			return result, nil
		}
		id, err := getID(m)
		if err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, cursor.Err()
}

func (p *CleanIDsProvider) isOld(m bson.M, expireDate time.Time) bool {
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok {
		cmdapp.Log.Warn("_id not found in record")
		return false
	}
	return id.Timestamp().Before(expireDate)
}

func getID(m bson.M) (string, error) {
	id, ok := m["ID"].(string)
	if !ok || id == "" {
		return "", errors.New("empty ID")
	}
	return id, nil
}
