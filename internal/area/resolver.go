package area

import (
	"context"
	"fmt"

	"storefront_service/internal/interfaces"
	"storefront_service/internal/models"
)

// AreaStore подмножество операций БД, нужных для разрешения зоны
type AreaStore interface {
	FindDeliveryArea(ctx context.Context, id int64) (*models.DeliveryArea, error)
	ListDeliveryAreas(ctx context.Context, locationID int64) ([]models.DeliveryArea, error)
}

// Resolver разрешает позицию покупателя в зону доставки заведения.
// Порядок: кэшированный идентификатор, затем географический поиск,
// затем зона по умолчанию, иначе сентинел "нет покрытия"
type Resolver struct {
	store         AreaStore
	cache         interfaces.AreaCache
	locationID    int64
	defaultAreaID int64
}

// NewResolver создает резолвер зон для заведения
func NewResolver(store AreaStore, cache interfaces.AreaCache, locationID, defaultAreaID int64) *Resolver {
	return &Resolver{
		store:         store,
		cache:         cache,
		locationID:    locationID,
		defaultAreaID: defaultAreaID,
	}
}

// Resolve выполняет разрешение зоны доставки. Ошибки хранилища
// возвращаются вызывающему как есть и никогда не маскируются сентинелом:
// "нет покрытия" и "хранилище недоступно" — разные исходы
func (r *Resolver) Resolve(ctx context.Context, cachedAreaID int64, pos models.Coordinates) (CoveredArea, error) {
	// Шаг 1: пробуем кэшированный идентификатор зоны
	if cachedAreaID != 0 {
		a, err := r.loadArea(ctx, cachedAreaID)
		if err != nil {
			return NoCoverage(), err
		}
		// Зона другого заведения отбрасывается, поиск продолжается
		if a != nil && a.LocationID == r.locationID {
			return NewCoveredArea(a), nil
		}
	}

	// Шаг 2: географический поиск зоны, покрывающей позицию
	areas, err := r.store.ListDeliveryAreas(ctx, r.locationID)
	if err != nil {
		return NoCoverage(), fmt.Errorf("ошибка загрузки зон доставки: %w", err)
	}
	for i := range areas {
		covered := NewCoveredArea(&areas[i])
		if covered.CheckBoundary(pos) {
			r.cache.Set(&areas[i])
			return covered, nil
		}
	}

	// Шаг 3: зона по умолчанию, если настроена
	if r.defaultAreaID != 0 {
		a, err := r.loadArea(ctx, r.defaultAreaID)
		if err != nil {
			return NoCoverage(), err
		}
		if a != nil && a.LocationID == r.locationID {
			return NewCoveredArea(a), nil
		}
	}

	// Ничего не разрешилось: возвращаем сентинел, а не ошибку
	return NoCoverage(), nil
}

// ListAreas возвращает все зоны доставки заведения резолвера
func (r *Resolver) ListAreas(ctx context.Context) ([]models.DeliveryArea, error) {
	areas, err := r.store.ListDeliveryAreas(ctx, r.locationID)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки зон доставки: %w", err)
	}
	return areas, nil
}

// loadArea ищет зону в кэше, затем в хранилище. Отсутствие зоны не ошибка
func (r *Resolver) loadArea(ctx context.Context, id int64) (*models.DeliveryArea, error) {
	if a, ok := r.cache.Get(id); ok {
		return a, nil
	}
	a, err := r.store.FindDeliveryArea(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки зоны %d: %w", id, err)
	}
	if a != nil {
		r.cache.Set(a)
	}
	return a, nil
}
