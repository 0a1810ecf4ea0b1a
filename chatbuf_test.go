package chatbuf

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/chatbuf/chatbuf/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider replays a scripted event sequence and records the params of
// the last request it saw.
type fakeProvider struct {
	model string

	mu     sync.Mutex
	events []provider.StreamEvent
	last   provider.CompletionParams
}

func (f *fakeProvider) ChatCompletion(_ context.Context, params provider.CompletionParams) (<-chan provider.StreamEvent, error) {
	f.mu.Lock()
	f.last = params
	events := f.events
	f.mu.Unlock()

	ch := make(chan provider.StreamEvent)
	go func() {
		defer close(ch)
		for _, e := range events {
			ch <- e
		}
	}()
	return ch, nil
}

func (f *fakeProvider) lastParams() provider.CompletionParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func newTestApp(t *testing.T, constructions *atomic.Int32, events []provider.StreamEvent) (*App, map[string]*fakeProvider) {
	t.Helper()

	built := make(map[string]*fakeProvider)
	var mu sync.Mutex
	app, err := Setup(context.Background(),
		WithAPIKey("test-key"),
		WithFactory(func(apiKey, model string) provider.Provider {
			if constructions != nil {
				constructions.Add(1)
			}
			assert.Equal(t, "test-key", apiKey)
			p := &fakeProvider{model: model, events: events}
			mu.Lock()
			built[model] = p
			mu.Unlock()
			return p
		}),
	)
	require.NoError(t, err)
	return app, built
}

func TestSetup_APIKeyFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	app, err := Setup(context.Background(), WithFactory(func(apiKey, model string) provider.Provider {
		return &fakeProvider{model: model}
	}))
	require.NoError(t, err)
	assert.Equal(t, "env-key", app.apiKey)
}

func TestSetup_InstallsDefault(t *testing.T) {
	newTestApp(t, nil, nil)

	installed, err := Default()
	require.NoError(t, err)
	assert.NotNil(t, installed)

	// A later Setup builds its own app but does not displace the default.
	again, _ := newTestApp(t, nil, nil)
	assert.NotSame(t, installed, again)

	still, err := Default()
	require.NoError(t, err)
	assert.Same(t, installed, still)
}

func TestClientCache_ConstructsOncePerKey(t *testing.T) {
	var constructions atomic.Int32
	app, _ := newTestApp(t, &constructions, nil)

	var wg sync.WaitGroup
	clients := make([]provider.Provider, 50)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clients[i] = app.client(ModelFast)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), constructions.Load(), "one construction for N concurrent gets")
	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}
}

func TestClientCache_DistinctKeys(t *testing.T) {
	var constructions atomic.Int32
	app, built := newTestApp(t, &constructions, nil)

	fast := app.client(ModelFast)
	premium := app.client(ModelPremium)

	assert.NotSame(t, fast, premium)
	assert.Equal(t, int32(2), constructions.Load())
	assert.Same(t, built[ModelFast.Name()], fast)
	assert.Same(t, built[ModelPremium.Name()], premium)

	assert.Same(t, fast, app.client(ModelFast), "repeat get reuses the cached client")
	assert.Equal(t, int32(2), constructions.Load())
}

func TestParseModel(t *testing.T) {
	for _, m := range Models() {
		parsed, err := ParseModel(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.NotEmpty(t, m.Name())
	}

	_, err := ParseModel("google/gemini-2.5-flash")
	assert.ErrorIs(t, err, ErrInvalidModel, "remote names are not cache keys")

	_, err = ParseModel("")
	assert.ErrorIs(t, err, ErrInvalidModel)
}
