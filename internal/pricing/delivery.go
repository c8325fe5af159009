// Package pricing реализует условие корзины "доставка": стоимость
// доставки как добавочная строка корзины и барьер минимальной суммы заказа
package pricing

import (
	"context"
	"fmt"

	"storefront_service/internal/location"
)

// Тексты, показываемые покупателю в строке доставки
const (
	TextFree           = "Free"
	TextNoDelivery     = "delivery not available"
	WarnNoDelivery     = "Sorry, delivery is not available for your location."
	WarnMinDeliveryFmt = "Please add %s or more to your order total to checkout."
)

// Rule одно барьерное выражение условия корзины
type Rule struct {
	Expression string `json:"expression"`
	Passed     bool   `json:"passed"`
}

// Result итог применения условия доставки к корзине
type Result struct {
	Applies       bool    `json:"applies"`        // Условие действует только для типа "доставка"
	Charge        float64 `json:"charge"`         // Добавочная стоимость доставки
	ChargeDefined bool    `json:"charge_defined"` // false для зоны "нет покрытия": не ноль, а неопределено
	MinimumOrder  float64 `json:"minimum_order"`
	DisplayValue  string  `json:"display_value"`
	Rules         []Rule  `json:"rules"`
	Valid         bool    `json:"valid"`             // Все барьеры пройдены
	Warning       string  `json:"warning,omitempty"` // Нефатальное предупреждение при провале барьера
}

// DeliveryCondition условие корзины, начисляющее стоимость доставки.
// Единственный компонент движка, который касается корзины
type DeliveryCondition struct {
	Priority int
}

// NewDeliveryCondition создает условие доставки
func NewDeliveryCondition() *DeliveryCondition {
	return &DeliveryCondition{Priority: 100}
}

// Apply вычисляет условие доставки для контекста заказа и суммы корзины.
// Для типов заказа кроме доставки условие не применяется. Ошибка
// коллаборатора (хранилище зон) возвращается вызывающему как есть
func (d *DeliveryCondition) Apply(ctx context.Context, loc *location.Context, subtotal float64) (*Result, error) {
	// Условие не применяется, когда тип заказа не "доставка"
	if !loc.OrderTypeIsDelivery() {
		return &Result{Applies: false, Valid: true}, nil
	}

	covered, err := loc.CoveredArea(ctx)
	if err != nil {
		return nil, err
	}

	charge, chargeOK := covered.DeliveryAmount(subtotal)
	minimum, minimumOK := covered.MinimumOrderTotal(subtotal)
	if !minimumOK {
		minimum = 0
	}

	res := &Result{
		Applies:       true,
		Charge:        charge,
		ChargeDefined: chargeOK,
		MinimumOrder:  minimum,
	}

	// Барьер "charge >= 0" всегда истинен и служит заглушкой-ограничением;
	// реальный барьер — минимальная сумма заказа
	chargeRule := Rule{Expression: fmt.Sprintf("%.2f >= 0", charge), Passed: chargeOK}
	minimumRule := Rule{Expression: fmt.Sprintf("subtotal >= %.2f", minimum), Passed: chargeOK && subtotal >= minimum}
	res.Rules = []Rule{chargeRule, minimumRule}
	res.Valid = chargeRule.Passed && minimumRule.Passed

	res.DisplayValue = displayValue(charge, chargeOK)

	// Нефатальное предупреждение при провале барьера; пустая корзина
	// предупреждений не порождает
	if !res.Valid && subtotal > 0 {
		if !chargeOK {
			res.Warning = WarnNoDelivery
		} else {
			res.Warning = fmt.Sprintf(WarnMinDeliveryFmt, formatCurrency(minimum))
		}
	}

	return res, nil
}

// displayValue отображаемое значение строки доставки: "Free" только для
// фактически нулевой стоимости; для неопределенной стоимости — явная
// пометка о недоступности доставки, никогда не числовой ноль
func displayValue(charge float64, defined bool) string {
	if !defined {
		return TextNoDelivery
	}
	if charge == 0 {
		return TextFree
	}
	return formatCurrency(charge)
}

// formatCurrency форматирует денежную сумму для покупателя
func formatCurrency(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
