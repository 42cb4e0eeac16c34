package check

import (
	"context"

	"github.com/pkg/errors"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

//Permissions the transcription services need on the bucket
var requiredPermissions = []string{
	"storage.objects.get",
	"storage.objects.create",
	"storage.objects.delete",
	"storage.objects.list",
}

//BucketProber tests access to the audio bucket
type BucketProber interface {
	TestPermissions(ctx context.Context, permissions []string) ([]string, error)
	List(ctx context.Context) ([]string, error)
}

//Result keeps the outcome of one bucket probe
type Result struct {
	Granted []string
	Missing []string
	Objects []string
}

//Run probes the bucket permissions and lists leftover objects
func Run(ctx context.Context, prober BucketProber) (*Result, error) {
	cmdapp.Log.Info("Checking bucket permissions")
	granted, err := prober.TestPermissions(ctx, requiredPermissions)
	if err != nil {
		return nil, errors.Wrap(err, "Can't test permissions")
	}
	res := &Result{Granted: granted}
	for _, p := range requiredPermissions {
		if !contains(granted, p) {
			res.Missing = append(res.Missing, p)
		}
	}

	cmdapp.Log.Info("Listing bucket objects")
	res.Objects, err = prober.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Can't list bucket")
	}
	return res, nil
}

func contains(s []string, v string) bool {
	for _, a := range s {
		if a == v {
			return true
		}
	}
	return false
}
