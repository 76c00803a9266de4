package locationrepo_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfilment/internal/domain"
	"fulfilment/internal/pkg/cache"
	"fulfilment/internal/pkg/logger"
	"fulfilment/internal/repository/locationrepo"
)

// --- Catálogo ---

func TestDefaultCatalog_Resolve(t *testing.T) {
	catalog := locationrepo.DefaultCatalog()

	loc, err := catalog.ResolveByIdentifier(context.Background(), "ZWOLLE-001")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, 1, loc.MaxNumberOfWarehouses)
	assert.Equal(t, 40, loc.MaxCapacity)
	assert.Equal(t, len(locationrepo.DefaultLocations), catalog.Len())
}

func TestCatalog_UnknownIsNil(t *testing.T) {
	loc, err := locationrepo.DefaultCatalog().ResolveByIdentifier(context.Background(), "ROTTERDAM-001")

	assert.NoError(t, err)
	assert.Nil(t, loc)
}

func TestParseCatalog_Success(t *testing.T) {
	data := []byte(`
locations:
  - identification: UTRECHT-001
    maxNumberOfWarehouses: 2
    maxCapacity: 60
`)

	catalog, err := locationrepo.ParseCatalog(data)
	require.NoError(t, err)

	loc, _ := catalog.ResolveByIdentifier(context.Background(), "UTRECHT-001")
	require.NotNil(t, loc)
	assert.Equal(t, domain.Location{Identification: "UTRECHT-001", MaxNumberOfWarehouses: 2, MaxCapacity: 60}, *loc)
}

func TestParseCatalog_Fail(t *testing.T) {
	cases := map[string]string{
		"yaml inválido": "locations: [",
		"duplicada": `
locations:
  - identification: A
    maxNumberOfWarehouses: 1
    maxCapacity: 1
  - identification: A
    maxNumberOfWarehouses: 1
    maxCapacity: 1
`,
		"sem identificação": `
locations:
  - maxNumberOfWarehouses: 1
    maxCapacity: 1
`,
		"limite negativo": `
locations:
  - identification: A
    maxNumberOfWarehouses: -1
    maxCapacity: 1
`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := locationrepo.ParseCatalog([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_FromFileAndDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	content := "locations:\n  - identification: UTRECHT-001\n    maxNumberOfWarehouses: 1\n    maxCapacity: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := locationrepo.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())

	catalog, err = locationrepo.LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, len(locationrepo.DefaultLocations), catalog.Len())

	_, err = locationrepo.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// --- CachedResolver ---

// fakeCache é um cache.Client em memória com falhas configuráveis.
type fakeCache struct {
	mu      sync.Mutex
	items   map[string]string
	getErr  error
	setErr  error
	sets    int
	lastTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.items[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.lastTTL = expiration
	if c.setErr != nil {
		return c.setErr
	}
	switch v := value.(type) {
	case []byte:
		c.items[key] = string(v)
	default:
		c.items[key] = fmt.Sprint(v)
	}
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *fakeCache) Incr(context.Context, string) (int64, error) { return 0, nil }

func (c *fakeCache) Expire(context.Context, string, time.Duration) error { return nil }

// countingResolver conta as consultas que chegam à origem.
type countingResolver struct {
	mu    sync.Mutex
	calls int
	inner locationrepo.Resolver
	err   error
}

func (r *countingResolver) ResolveByIdentifier(ctx context.Context, identifier string) (*domain.Location, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.inner.ResolveByIdentifier(ctx, identifier)
}

func (r *countingResolver) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestCachedResolver_MissPopulatesThenHit(t *testing.T) {
	fc := newFakeCache()
	origin := &countingResolver{inner: locationrepo.DefaultCatalog()}
	resolver := locationrepo.NewCachedResolver(origin, fc, 10*time.Minute, logger.NewNop())
	ctx := context.Background()

	first, err := resolver.ResolveByIdentifier(ctx, "AMSTERDAM-001")
	require.NoError(t, err)
	second, err := resolver.ResolveByIdentifier(ctx, "AMSTERDAM-001")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 100, second.MaxCapacity)
	assert.Equal(t, 1, origin.Calls())
	assert.Equal(t, 1, fc.sets)
	assert.Equal(t, 10*time.Minute, fc.lastTTL)
	assert.Contains(t, fc.items, "location:AMSTERDAM-001")
}

func TestCachedResolver_NotFoundIsNotCached(t *testing.T) {
	fc := newFakeCache()
	origin := &countingResolver{inner: locationrepo.DefaultCatalog()}
	resolver := locationrepo.NewCachedResolver(origin, fc, time.Minute, logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		loc, err := resolver.ResolveByIdentifier(ctx, "ROTTERDAM-001")
		assert.NoError(t, err)
		assert.Nil(t, loc)
	}
	assert.Equal(t, 2, origin.Calls())
	assert.Zero(t, fc.sets)
}

func TestCachedResolver_CacheFailuresFallBack(t *testing.T) {
	fc := newFakeCache()
	fc.getErr = errors.New("redis indisponível")
	fc.setErr = errors.New("redis indisponível")
	origin := &countingResolver{inner: locationrepo.DefaultCatalog()}
	resolver := locationrepo.NewCachedResolver(origin, fc, time.Minute, logger.NewNop())

	loc, err := resolver.ResolveByIdentifier(context.Background(), "TILBURG-001")

	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "TILBURG-001", loc.Identification)
	assert.Equal(t, 1, origin.Calls())
}

func TestCachedResolver_CorruptEntryFallsBack(t *testing.T) {
	fc := newFakeCache()
	fc.items["location:TILBURG-001"] = "{not-json"
	origin := &countingResolver{inner: locationrepo.DefaultCatalog()}
	resolver := locationrepo.NewCachedResolver(origin, fc, time.Minute, logger.NewNop())

	loc, err := resolver.ResolveByIdentifier(context.Background(), "TILBURG-001")

	require.NoError(t, err)
	assert.Equal(t, 40, loc.MaxCapacity)
	assert.Equal(t, 1, origin.Calls())
}

func TestCachedResolver_OriginErrorPropagates(t *testing.T) {
	origin := &countingResolver{err: errors.New("catálogo indisponível")}
	resolver := locationrepo.NewCachedResolver(origin, newFakeCache(), time.Minute, logger.NewNop())

	loc, err := resolver.ResolveByIdentifier(context.Background(), "TILBURG-001")

	assert.Error(t, err)
	assert.Nil(t, loc)
}

func TestCachedResolver_Invalidate(t *testing.T) {
	fc := newFakeCache()
	origin := &countingResolver{inner: locationrepo.DefaultCatalog()}
	resolver := locationrepo.NewCachedResolver(origin, fc, time.Minute, logger.NewNop())
	ctx := context.Background()

	_, _ = resolver.ResolveByIdentifier(ctx, "ZWOLLE-002")
	require.NoError(t, resolver.Invalidate(ctx, "ZWOLLE-002"))
	_, _ = resolver.ResolveByIdentifier(ctx, "ZWOLLE-002")

	assert.Equal(t, 2, origin.Calls())
}

func TestCachedResolver_ConcurrentCallers(t *testing.T) {
	fc := newFakeCache()
	origin := &countingResolver{inner: locationrepo.DefaultCatalog()}
	resolver := locationrepo.NewCachedResolver(origin, fc, time.Minute, logger.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc, err := resolver.ResolveByIdentifier(context.Background(), "EINDHOVEN-001")
			assert.NoError(t, err)
			assert.Equal(t, 70, loc.MaxCapacity)
		}()
	}
	wg.Wait()

	// Misses concorrentes podem chegar à origem, mas nunca mais vezes do que chamadas.
	assert.GreaterOrEqual(t, origin.Calls(), 1)
	assert.LessOrEqual(t, origin.Calls(), 10)
}
