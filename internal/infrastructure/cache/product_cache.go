package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/metrics"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
)

const productsKey = "products:all"

var _ repository.ProductRepository = (*productRepoCacheDecorator)(nil)

// productRepoCacheDecorator cachea el catálogo completo; cualquier escritura lo invalida.
type productRepoCacheDecorator struct {
	inner repository.ProductRepository
	cache RedisClient
	ttl   time.Duration
	log   *logger.Logger
}

// NewProductRepoCacheDecorator envuelve el repositorio de productos con caché en Redis.
func NewProductRepoCacheDecorator(inner repository.ProductRepository, cache RedisClient, log *logger.Logger) repository.ProductRepository {
	return &productRepoCacheDecorator{inner: inner, cache: cache, ttl: 10 * time.Minute, log: log}
}

func (d *productRepoCacheDecorator) List(ctx context.Context) ([]*entity.VoucherPack, error) {
	val, err := d.cache.Get(ctx, productsKey)
	if err == nil {
		var products []*entity.VoucherPack
		if json.Unmarshal([]byte(val), &products) == nil {
			metrics.IncCacheRequest("products", "hit")
			return products, nil
		}
	} else if !errors.Is(err, ErrMiss) {
		d.log.Warn().Err(err).Msg("cache de productos no disponible")
	}

	metrics.IncCacheRequest("products", "miss")
	products, err := d.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(products); err == nil {
		if err := d.cache.Set(ctx, productsKey, b, d.ttl); err != nil {
			d.log.Warn().Err(err).Msg("no se pudo cachear el catálogo")
		}
	}
	return products, nil
}

func (d *productRepoCacheDecorator) GetByID(ctx context.Context, id string) (*entity.VoucherPack, error) {
	return d.inner.GetByID(ctx, id)
}

func (d *productRepoCacheDecorator) Create(ctx context.Context, p *entity.VoucherPack) error {
	if err := d.inner.Create(ctx, p); err != nil {
		return err
	}
	d.invalidate(ctx)
	return nil
}

func (d *productRepoCacheDecorator) Update(ctx context.Context, id string, p repository.ProductPatch) error {
	if err := d.inner.Update(ctx, id, p); err != nil {
		return err
	}
	d.invalidate(ctx)
	return nil
}

func (d *productRepoCacheDecorator) Delete(ctx context.Context, id string) error {
	if err := d.inner.Delete(ctx, id); err != nil {
		return err
	}
	d.invalidate(ctx)
	return nil
}

func (d *productRepoCacheDecorator) invalidate(ctx context.Context) {
	if err := d.cache.Del(ctx, productsKey); err != nil {
		d.log.Warn().Err(err).Msg("no se pudo invalidar el catálogo cacheado")
	}
}
