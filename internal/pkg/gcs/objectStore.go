package gcs

import (
	"context"
	"io"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

//ObjectStore keeps audio objects in a Google Cloud Storage bucket
type ObjectStore struct {
	client *storage.Client
	bucket string
}

//NewObjectStore creates ObjectStore instance from config
func NewObjectStore(ctx context.Context) (*ObjectStore, error) {
	bucket := cmdapp.Config.GetString("gcs.bucket")
	if bucket == "" {
		return nil, errors.New("No gcs.bucket provided")
	}
	var opts []option.ClientOption
	credsFile := cmdapp.Config.GetString("gcs.credentialsFile")
	if credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Can't init storage client")
	}
	cmdapp.Log.Infof("Using bucket %s", bucket)
	return &ObjectStore{client: client, bucket: bucket}, nil
}

//Upload puts the reader content into the bucket and returns the gs:// URI
func (s *ObjectStore) Upload(ctx context.Context, name string, reader io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	_, err := io.Copy(w, reader)
	if err != nil {
		w.Close()
		return "", errors.Wrap(err, "Can't upload object "+name)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "Can't upload object "+name)
	}
	uri := s.URI(name)
	cmdapp.Log.Infof("Uploaded %s", uri)
	return uri, nil
}

//Delete removes the object from the bucket
func (s *ObjectStore) Delete(ctx context.Context, name string) error {
	err := s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "Can't delete object "+name)
	}
	cmdapp.Log.Infof("Deleted object %s", name)
	return nil
}

//URI returns the gs:// address of an object in the bucket
func (s *ObjectStore) URI(name string) string {
	return "gs://" + s.bucket + "/" + name
}

//List returns names of all objects in the bucket
func (s *ObjectStore) List(ctx context.Context) ([]string, error) {
	var res []string
	it := s.client.Bucket(s.bucket).Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "Can't list bucket "+s.bucket)
		}
		res = append(res, attrs.Name)
	}
	return res, nil
}

//IAM returns the IAM handle of the bucket
func (s *ObjectStore) IAM() *iam.Handle {
	return s.client.Bucket(s.bucket).IAM()
}

//TestPermissions returns which of the wanted permissions are granted on the bucket
func (s *ObjectStore) TestPermissions(ctx context.Context, permissions []string) ([]string, error) {
	granted, err := s.IAM().TestPermissions(ctx, permissions)
	if err != nil {
		return nil, errors.Wrap(err, "Can't test permissions on "+s.bucket)
	}
	return granted, nil
}

//Close releases the underlying client
func (s *ObjectStore) Close() error {
	return s.client.Close()
}
