package location

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"storefront_service/internal/area"
	"storefront_service/internal/models"
)

// AreaID кэшированный в сессии идентификатор зоны доставки; 0 если нет
func (c *Context) AreaID() int64 {
	v, ok := c.store.Get(c.sessionID, sessionKeyArea)
	if !ok {
		return 0
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// IsCurrentAreaID совпадает ли идентификатор с кэшированной зоной сессии
func (c *Context) IsCurrentAreaID(id int64) bool {
	return c.AreaID() == id
}

// ClearCoveredArea сбрасывает мемоизированную зону и кэш сессии;
// следующий доступ выполнит разрешение заново
func (c *Context) ClearCoveredArea() {
	c.coveredArea = nil
	c.store.Forget(c.sessionID, sessionKeyArea)
}

// setCoveredArea запоминает разрешенную зону. Идентификатор зоны
// сохраняется в сессии как наблюдаемый побочный эффект; событие
// публикуется только при фактической смене идентификатора
func (c *Context) setCoveredArea(ctx context.Context, covered area.CoveredArea) {
	oldID := c.AreaID()
	if oldID != covered.Key() {
		c.store.Put(c.sessionID, sessionKeyArea, strconv.FormatInt(covered.Key(), 10))
		c.fireEvent(ctx, models.EventAreaUpdated, map[string]any{
			"old_area_id": oldID,
			"area_id":     covered.Key(),
		})
	}
}

// CoveredArea лениво разрешает зону доставки для позиции сессии.
// Повторные вызовы до инвалидации возвращают мемоизированное значение
// без повторного разрешения. Ошибка хранилища возвращается вызывающему
// и не подменяется сентинелом "нет покрытия"
func (c *Context) CoveredArea(ctx context.Context) (area.CoveredArea, error) {
	if c.coveredArea != nil {
		return *c.coveredArea, nil
	}

	covered, err := c.resolver.Resolve(ctx, c.AreaID(), c.UserPosition())
	if err != nil {
		return area.NoCoverage(), fmt.Errorf("ошибка разрешения зоны доставки: %w", err)
	}

	if !covered.IsNoCoverage() {
		c.setCoveredArea(ctx, covered)
	} else if c.AreaID() != 0 {
		// Кэшированный идентификатор не пережил разрешение: зона чужого
		// заведения или удалена. Застарелое значение сбрасывается
		c.store.Forget(c.sessionID, sessionKeyArea)
	}

	c.coveredArea = &covered
	return covered, nil
}

// DeliveryAreas все зоны доставки заведения
func (c *Context) DeliveryAreas(ctx context.Context) ([]models.DeliveryArea, error) {
	return c.resolver.ListAreas(ctx)
}

// DeliveryAmount стоимость доставки для суммы корзины.
// ok == false означает "нет покрытия": стоимость не определена
func (c *Context) DeliveryAmount(ctx context.Context, cartTotal float64) (float64, bool, error) {
	covered, err := c.CoveredArea(ctx)
	if err != nil {
		return 0, false, err
	}
	amount, ok := covered.DeliveryAmount(cartTotal)
	return amount, ok, nil
}

// MinimumOrder минимальная сумма заказа для суммы корзины
func (c *Context) MinimumOrder(ctx context.Context, cartTotal float64) (float64, bool, error) {
	covered, err := c.CoveredArea(ctx)
	if err != nil {
		return 0, false, err
	}
	minimum, ok := covered.MinimumOrderTotal(cartTotal)
	return minimum, ok, nil
}

// CheckMinimumOrder достигнут ли минимум заказа для суммы корзины
func (c *Context) CheckMinimumOrder(ctx context.Context, cartTotal float64) (bool, error) {
	minimum, ok, err := c.MinimumOrder(ctx, cartTotal)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return cartTotal >= minimum, nil
}

// CheckDeliveryCoverage покрывает ли разрешенная зона позицию.
// Позиция nil означает позицию сессии
func (c *Context) CheckDeliveryCoverage(ctx context.Context, pos *models.Coordinates) (bool, error) {
	p := c.UserPosition()
	if pos != nil {
		p = *pos
	}
	covered, err := c.CoveredArea(ctx)
	if err != nil {
		return false, err
	}
	return covered.CheckBoundary(p), nil
}

// CheckDistance расстояние от заведения до позиции сессии в километрах,
// округленное до заданного количества знаков
func (c *Context) CheckDistance(decimalPoints int) float64 {
	origin := models.Coordinates{Latitude: c.model.Latitude, Longitude: c.model.Longitude}
	distance := origin.DistanceKm(c.UserPosition())
	factor := math.Pow(10, float64(decimalPoints))
	return math.Round(distance*factor) / factor
}
