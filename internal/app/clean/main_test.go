package clean

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "/data/uploads_audios/", cmdapp.Config.GetString("fileStorage.path"))
	assert.Equal(t, 48*time.Hour, cmdapp.Config.GetDuration("cleaner.expire"))
	assert.Equal(t, time.Hour, cmdapp.Config.GetDuration("cleaner.runEvery"))
}
