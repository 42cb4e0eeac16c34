package translator

import (
	"context"

	"cloud.google.com/go/translate"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

//GoogleTranslator translates text using the Google Translate API
type GoogleTranslator struct {
	client *translate.Client
}

//NewGoogleTranslator creates GoogleTranslator instance from config
func NewGoogleTranslator(ctx context.Context) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	credsFile := cmdapp.Config.GetString("translate.credentialsFile")
	if credsFile == "" {
		credsFile = cmdapp.Config.GetString("gcs.credentialsFile")
	}
	if credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Can't init translate client")
	}
	return &GoogleTranslator{client: client}, nil
}

//Translate translates text from source to target language
func (g *GoogleTranslator) Translate(ctx context.Context, text string, source string, target string) (string, error) {
	sourceTag, err := language.Parse(source)
	if err != nil {
		return "", errors.Wrap(err, "Wrong source language "+source)
	}
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", errors.Wrap(err, "Wrong target language "+target)
	}
	res, err := g.client.Translate(ctx, []string{text}, targetTag,
		&translate.Options{Source: sourceTag})
	if err != nil {
		return "", errors.Wrap(err, "Can't translate")
	}
	if len(res) == 0 {
		return "", errors.New("Empty translation response")
	}
	return res[0].Text, nil
}

//Close releases the underlying client
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
