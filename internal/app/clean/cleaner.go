package clean

import (
	"errors"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/mongo"
)

type cleanerImpl struct {
	jobs []Cleaner
}

func newCleanerImpl(sessionProvider *mongo.SessionProvider, fileStorage string) (*cleanerImpl, error) {
	c := cleanerImpl{}
	c.jobs = make([]Cleaner, 0)
	lf, err := newLocalFile(fileStorage, "HOAudio_{ID}.*")
	if err != nil {
		return nil, err
	}
	c.jobs = append(c.jobs, lf)
	for _, cr := range mongo.NewCleanRecords(sessionProvider) {
		c.jobs = append(c.jobs, cr)
	}
	return &c, nil
}

func (c *cleanerImpl) Clean(ID string) error {
	failed := 0
	for _, job := range c.jobs {
		err := job.Clean(ID)
		if err != nil {
			cmdapp.Log.Error(err)
			failed++
		}
	}
	if failed == len(c.jobs) {
		return errors.New("All delete tasks failed")
	}
	return nil
}
