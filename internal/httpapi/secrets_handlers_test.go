package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGeminiKeySessionOnly(t *testing.T) {
	e := newTestEngine(t)

	var body map[string]any
	res := e.post(t, "/api/secrets/gemini", []byte(`{"key":"sk-test","persist":false}`), &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, false, body["persisted"])
	assert.Equal(t, "sk-test", e.sess.APIKey())
}

func TestSetGeminiKeyRejectsEmpty(t *testing.T) {
	e := newTestEngine(t)

	res := e.post(t, "/api/secrets/gemini", []byte(`{"key":"  "}`), nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, e.sess.APIKey())

	res = e.post(t, "/api/secrets/gemini", []byte(`not json`), nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
