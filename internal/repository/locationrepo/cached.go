package locationrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"fulfilment/internal/domain"
	"fulfilment/internal/pkg/cache"
	"fulfilment/internal/pkg/logger"
)

// Resolver é o contrato decorado pelo CachedResolver.
type Resolver interface {
	ResolveByIdentifier(ctx context.Context, identifier string) (*domain.Location, error)
}

// Define a chave de cache para localizações.
const locationCacheKey = "location:%s"

// CachedResolver aplica Cache-Aside sobre outro Resolver. Falhas do cache são
// logadas e a consulta segue para o Resolver de origem. Localizações inexistentes
// não são cacheadas.
type CachedResolver struct {
	next   Resolver
	cache  cache.Client
	ttl    time.Duration
	group  singleflight.Group
	logger logger.Logger
}

// NewCachedResolver cria o decorator com o TTL informado.
func NewCachedResolver(next Resolver, cacheClient cache.Client, ttl time.Duration, log logger.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		cache:  cacheClient,
		ttl:    ttl,
		logger: log.With(map[string]interface{}{"component": "locationcache"}),
	}
}

// ResolveByIdentifier busca no cache; num miss, consultas concorrentes pela mesma
// identificação são agrupadas numa única chamada ao Resolver de origem.
func (r *CachedResolver) ResolveByIdentifier(ctx context.Context, identifier string) (*domain.Location, error) {
	key := fmt.Sprintf(locationCacheKey, identifier)

	if loc, ok := r.fromCache(ctx, key); ok {
		return loc, nil
	}

	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		if loc, ok := r.fromCache(ctx, key); ok {
			return loc, nil
		}

		loc, err := r.next.ResolveByIdentifier(ctx, identifier)
		if err != nil || loc == nil {
			return loc, err
		}

		data, err := json.Marshal(loc)
		if err != nil {
			r.logger.Warn("Falha ao serializar localização para cache.", map[string]interface{}{"key": key, "error": err.Error()})
			return loc, nil
		}
		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("Falha ao gravar localização no cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return loc, nil
	})
	if err != nil {
		return nil, err
	}

	loc, _ := v.(*domain.Location)
	if loc == nil {
		return nil, nil
	}
	// Chamadores agrupados recebem cópias independentes.
	cp := *loc
	return &cp, nil
}

func (r *CachedResolver) fromCache(ctx context.Context, key string) (*domain.Location, bool) {
	cached, err := r.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler localização do cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil, false
	}

	var loc domain.Location
	if err := json.Unmarshal([]byte(cached), &loc); err != nil {
		r.logger.Warn("Entrada de cache de localização inválida.", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false
	}
	return &loc, true
}

// Invalidate remove a localização do cache.
func (r *CachedResolver) Invalidate(ctx context.Context, identifier string) error {
	return r.cache.Delete(ctx, fmt.Sprintf(locationCacheKey, identifier))
}
