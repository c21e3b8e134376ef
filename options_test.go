package verifykit

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
		headers: make(map[string]string),
		logger:  zerolog.Nop(),
	}

	assert.Equal(t, "https://api.verifykit.io/v2", cfg.baseURL)
	assert.Equal(t, 5*time.Second, cfg.timeout)
	assert.Nil(t, cfg.httpClient)
}

func TestOptions_Overrides(t *testing.T) {
	httpClient := &http.Client{}
	cfg := &clientConfig{headers: make(map[string]string)}

	for _, opt := range []Option{
		WithBaseURL("https://staging.verifykit.io/v2"),
		WithTimeout(10 * time.Second),
		WithHTTPClient(httpClient),
		WithHeader("Content-Type", "application/json; charset=utf-8"),
		WithHeader("User-Agent", "verifykit-test"),
	} {
		opt(cfg)
	}

	assert.Equal(t, "https://staging.verifykit.io/v2", cfg.baseURL)
	assert.Equal(t, 10*time.Second, cfg.timeout)
	assert.Same(t, httpClient, cfg.httpClient)
	assert.Equal(t, "application/json; charset=utf-8", cfg.headers["Content-Type"])
	assert.Equal(t, "verifykit-test", cfg.headers["User-Agent"])
}

func TestOptions_LastHeaderWins(t *testing.T) {
	cfg := &clientConfig{headers: make(map[string]string)}

	WithHeader("X-Trace", "a")(cfg)
	WithHeader("X-Trace", "b")(cfg)

	assert.Equal(t, "b", cfg.headers["X-Trace"])
}
