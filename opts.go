package chatbuf

import (
	"net/http"

	"github.com/chatbuf/chatbuf/provider"
	"github.com/fogfish/opts"
)

// Factory constructs a completion client for one remote model. Construction
// is synchronous and infallible; a bad key shows up later as a provider
// failure, not here.
type Factory func(apiKey, model string) provider.Provider

// Config collects the Setup options. Zero values mean: resolve the key from
// the environment or the default secret path, talk to OpenRouter directly,
// use the default HTTP client.
type Config struct {
	apiKey     string
	secretPath string
	baseURL    string
	httpClient *http.Client
	factory    Factory
}

var (
	// WithAPIKey supplies the provider key directly, bypassing credential
	// retrieval entirely.
	WithAPIKey = opts.ForName[Config, string]("apiKey")

	// WithSecretPath sets the pass store path the key is retrieved from.
	WithSecretPath = opts.ForName[Config, string]("secretPath")

	// WithBaseURL points the default client factory at a different endpoint.
	WithBaseURL = opts.ForName[Config, string]("baseURL")

	// WithHTTPClient sets the HTTP client used by the default factory.
	WithHTTPClient = opts.ForName[Config, *http.Client]("httpClient")

	// WithFactory replaces the completion client factory wholesale.
	WithFactory = opts.ForName[Config, Factory]("factory")
)
