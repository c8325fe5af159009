// Package area реализует разрешение географической позиции покупателя
// в зону доставки и расчет тарифа зоны по сумме корзины
package area

import (
	"storefront_service/internal/models"
)

// CoveredArea разрешенная зона доставки с операциями тарифа.
// Нулевой идентификатор означает сентинел "нет покрытия": доставка
// недоступна, стоимость не определена (не ноль)
type CoveredArea struct {
	area *models.DeliveryArea
}

// NewCoveredArea оборачивает загруженную зону доставки
func NewCoveredArea(a *models.DeliveryArea) CoveredArea {
	return CoveredArea{area: a}
}

// NoCoverage возвращает сентинел "нет покрытия"
func NoCoverage() CoveredArea {
	return CoveredArea{area: &models.DeliveryArea{}}
}

// Key идентификатор зоны; 0 для сентинела
func (c CoveredArea) Key() int64 {
	return c.area.ID
}

// LocationID идентификатор заведения-владельца зоны
func (c CoveredArea) LocationID() int64 {
	return c.area.LocationID
}

// IsNoCoverage признак сентинела "нет покрытия"
func (c CoveredArea) IsNoCoverage() bool {
	return c.area.ID == 0 || len(c.area.Tiers) == 0
}

// tierFor выбирает ступень тарифа по сумме корзины: старшая ступень с
// порогом не выше суммы; если ни одна не подходит, младшая ступень
func (c CoveredArea) tierFor(subtotal float64) (models.ChargeTier, bool) {
	if len(c.area.Tiers) == 0 {
		return models.ChargeTier{}, false
	}
	tier := c.area.Tiers[0]
	for _, t := range c.area.Tiers {
		if t.Threshold <= subtotal {
			tier = t
		}
	}
	return tier, true
}

// DeliveryAmount стоимость доставки для суммы корзины.
// ok == false только для сентинела: стоимость не определена
func (c CoveredArea) DeliveryAmount(subtotal float64) (float64, bool) {
	tier, ok := c.tierFor(subtotal)
	if !ok {
		return 0, false
	}
	return tier.Charge, true
}

// MinimumOrderTotal минимальная сумма заказа для суммы корзины
func (c CoveredArea) MinimumOrderTotal(subtotal float64) (float64, bool) {
	tier, ok := c.tierFor(subtotal)
	if !ok {
		return 0, false
	}
	return tier.MinimumOrder, true
}

// ListTiers возвращает ступени тарифа зоны
func (c CoveredArea) ListTiers() []models.ChargeTier {
	return c.area.Tiers
}

// CheckBoundary делегирует проверку принадлежности точки границе зоны
func (c CoveredArea) CheckBoundary(pos models.Coordinates) bool {
	if c.IsNoCoverage() {
		return false
	}
	if c.area.Boundary != nil {
		return c.area.Boundary.Contains(pos)
	}
	return c.area.Circle.Contains(pos)
}
