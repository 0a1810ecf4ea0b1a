package chatbuf

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/chatbuf/chatbuf/credstore"
	"github.com/chatbuf/chatbuf/internal/registry"
	"github.com/chatbuf/chatbuf/provider"
	"github.com/chatbuf/chatbuf/provider/openrouter"
	"github.com/fogfish/opts"
	"github.com/openai/openai-go/option"
)

// DefaultSecretPath is the pass store entry the API key is read from when no
// option overrides it.
const DefaultSecretPath = "api/openrouter"

// EnvAPIKey is the environment variable consulted before the secret store.
const EnvAPIKey = "OPENROUTER_API_KEY"

// App owns the per-model completion client cache. It is built once at
// startup, shared by every conversation for the rest of the process, and
// never torn down explicitly.
type App struct {
	apiKey  string
	factory Factory
	clients registry.Registry[*clientEntry]
}

// clientEntry memoizes one constructed client. The registry resolves which
// entry a key maps to; the Once makes construction happen at most once per
// key, and construction for one key never blocks lookups for another.
type clientEntry struct {
	once sync.Once
	prov provider.Provider
}

var defaultApp atomic.Pointer[App]

// Setup resolves the provider credential, builds an app, and installs it as
// the process default if none is installed yet. The built app is returned
// either way; Default keeps answering with whichever app won the install.
func Setup(ctx context.Context, options ...opts.Option[Config]) (*App, error) {
	var cfg Config
	if err := opts.Apply(&cfg, options); err != nil {
		return nil, err
	}

	key := cfg.apiKey
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	if key == "" {
		path := cfg.secretPath
		if path == "" {
			path = DefaultSecretPath
		}
		var err error
		if key, err = credstore.Lookup(ctx, path); err != nil {
			return nil, err
		}
	}

	factory := cfg.factory
	if factory == nil {
		var reqOpts []option.RequestOption
		if cfg.baseURL != "" {
			reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
		}
		if cfg.httpClient != nil {
			reqOpts = append(reqOpts, option.WithHTTPClient(cfg.httpClient))
		}
		factory = func(apiKey, model string) provider.Provider {
			return openrouter.New(apiKey, model, reqOpts...)
		}
	}

	app := &App{
		apiKey:  key,
		factory: factory,
		clients: registry.New[*clientEntry](),
	}

	if defaultApp.CompareAndSwap(nil, app) {
		slog.Debug("chatbuf initialized")
	} else {
		slog.Warn("chatbuf already initialized, keeping the existing default")
	}
	return app, nil
}

// Default returns the process-wide app installed by Setup, or
// ErrUninitialized when Setup has not run yet.
func Default() (*App, error) {
	if app := defaultApp.Load(); app != nil {
		return app, nil
	}
	return nil, ErrUninitialized
}

// client returns the shared completion client for model, constructing it on
// first use. The model key must already be validated by the caller.
func (a *App) client(model Model) provider.Provider {
	entry, _ := a.clients.GetOrAdd(model.String(), func() *clientEntry {
		return &clientEntry{}
	})
	entry.once.Do(func() {
		slog.Debug("constructing completion client", slog.String("model", model.Name()))
		entry.prov = a.factory(a.apiKey, model.Name())
	})
	return entry.prov
}
