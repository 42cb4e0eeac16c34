package translator

import (
	"context"

	"github.com/pkg/errors"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/upload/api"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

//Translation methods reported to the caller
const (
	MethodGoogle   = "google_translate"
	MethodFallback = "fallback"
)

//Default translation languages
const (
	DefaultSource = "ka"
	DefaultTarget = "en"
)

const fallbackPrefix = "[Translation service unavailable] "

//Translator translates text between two languages
type Translator interface {
	Translate(ctx context.Context, text string, source string, target string) (string, error)
}

//Gateway calls the translator and degrades to a fallback payload on failure
type Gateway struct {
	translator Translator
}

//NewGateway creates Gateway instance
func NewGateway(translator Translator) (*Gateway, error) {
	if translator == nil {
		return nil, errors.New("No translator provided")
	}
	return &Gateway{translator: translator}, nil
}

//Translate returns the translation or the fallback payload, never an error
func (g *Gateway) Translate(ctx context.Context, text string, source string, target string) *api.TranslationResult {
	if source == "" {
		source = DefaultSource
	}
	if target == "" {
		target = DefaultTarget
	}
	translation, err := g.translator.Translate(ctx, text, source, target)
	if err != nil {
		cmdapp.Log.Warnf("Translation failed (%s -> %s): %s", source, target, err.Error())
		return &api.TranslationResult{Translation: fallbackPrefix + text, Method: MethodFallback}
	}
	return &api.TranslationResult{Translation: translation, Method: MethodGoogle}
}
