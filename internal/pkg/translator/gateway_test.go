package translator

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	gateway, _ := NewGateway(&fakeTranslator{result: "hello"})
	res := gateway.Translate(context.Background(), "gamarjoba", "ka", "en")
	assert.Equal(t, "hello", res.Translation)
	assert.Equal(t, MethodGoogle, res.Method)
}

func TestTranslate_Defaults(t *testing.T) {
	fake := &fakeTranslator{result: "hello"}
	gateway, _ := NewGateway(fake)
	gateway.Translate(context.Background(), "gamarjoba", "", "")
	assert.Equal(t, "ka", fake.source)
	assert.Equal(t, "en", fake.target)
}

func TestTranslate_Fallback(t *testing.T) {
	gateway, _ := NewGateway(&fakeTranslator{err: errors.New("olia")})
	res := gateway.Translate(context.Background(), "gamarjoba", "ka", "en")
	assert.Equal(t, "[Translation service unavailable] gamarjoba", res.Translation)
	assert.Equal(t, MethodFallback, res.Method)
}

func TestNewGateway_Fails(t *testing.T) {
	_, err := NewGateway(nil)
	assert.NotNil(t, err)
}

type fakeTranslator struct {
	result string
	err    error
	source string
	target string
}

func (f *fakeTranslator) Translate(ctx context.Context, text string, source string, target string) (string, error) {
	f.source = source
	f.target = target
	return f.result, f.err
}
