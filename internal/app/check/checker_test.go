package check

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/test"
)

type proberFake struct {
	granted []string
	permErr error
	objects []string
	listErr error
}

func (p *proberFake) TestPermissions(ctx context.Context, permissions []string) ([]string, error) {
	return p.granted, p.permErr
}

func (p *proberFake) List(ctx context.Context) ([]string, error) {
	return p.objects, p.listErr
}

func TestRun(t *testing.T) {
	p := &proberFake{granted: requiredPermissions, objects: []string{"temp_audio_1.wav"}}
	res, err := Run(context.Background(), p)
	assert.Nil(t, err)
	assert.Equal(t, requiredPermissions, res.Granted)
	assert.Empty(t, res.Missing)
	assert.Equal(t, []string{"temp_audio_1.wav"}, res.Objects)
}

func TestRun_DetectsMissing(t *testing.T) {
	p := &proberFake{granted: []string{"storage.objects.get", "storage.objects.list"}}
	res, err := Run(context.Background(), p)
	assert.Nil(t, err)
	assert.Equal(t, []string{"storage.objects.create", "storage.objects.delete"}, res.Missing)
	assert.True(t, test.Contains(res.Granted, "storage.objects.get"))
	assert.False(t, test.Contains(res.Missing, "storage.objects.get"))
}

func TestRun_FailsOnPermissionsError(t *testing.T) {
	p := &proberFake{permErr: errors.New("olia")}
	res, err := Run(context.Background(), p)
	assert.NotNil(t, err)
	assert.Nil(t, res)
}

func TestRun_FailsOnListError(t *testing.T) {
	p := &proberFake{granted: requiredPermissions, listErr: errors.New("olia")}
	res, err := Run(context.Background(), p)
	assert.NotNil(t, err)
	assert.Nil(t, res)
}
