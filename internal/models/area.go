package models

import (
	"errors"
	"math"
)

// Coordinates географическая позиция пользователя или заведения
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// IsZero признак того, что позиция не задана
func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

const earthRadiusKm = 6371.0

// DistanceKm расстояние до другой точки по формуле гаверсинусов, в километрах
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - c.Latitude) * math.Pi / 180
	dLng := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// ChargeTier ступень тарифа зоны доставки, привязанная к порогу суммы корзины.
// Ступени хранятся по возрастанию порога, выигрывает старшая подходящая
type ChargeTier struct {
	Threshold    float64 `json:"threshold" validate:"min=0"` // Минимальная сумма корзины для ступени
	Charge       float64 `json:"charge" validate:"min=0"`    // Стоимость доставки
	MinimumOrder float64 `json:"minimum_order" validate:"min=0"`
}

// Boundary проверка принадлежности точки границе зоны доставки.
// Геометрия делегируется реализации границы
type Boundary interface {
	Contains(c Coordinates) bool
}

// CircleBoundary круговая зона доставки вокруг заведения
type CircleBoundary struct {
	Center   Coordinates `json:"center"`
	RadiusKm float64     `json:"radius_km" validate:"gt=0"`
}

// Contains проверяет, попадает ли точка внутрь круга
func (b CircleBoundary) Contains(c Coordinates) bool {
	if c.IsZero() {
		return false
	}
	return b.Center.DistanceKm(c) <= b.RadiusKm
}

// DeliveryArea зона доставки заведения со своими ступенями тарифа.
// Неизменяема после загрузки из БД
type DeliveryArea struct {
	ID         int64          `json:"id"`
	LocationID int64          `json:"location_id"`
	Name       string         `json:"name"`
	Boundary   Boundary       `json:"-"`
	Circle     CircleBoundary `json:"circle"` // Сериализуемое описание границы
	Tiers      []ChargeTier   `json:"tiers" validate:"dive"`
}

// Подтверждение зоны доставки после загрузки.
func (a *DeliveryArea) Validate() error {
	if a == nil {
		return errors.New("delivery area is nil")
	}
	if err := validate.Struct(a); err != nil {
		return err
	}
	// Ступени должны быть упорядочены по возрастанию порога
	for i := 1; i < len(a.Tiers); i++ {
		if a.Tiers[i].Threshold < a.Tiers[i-1].Threshold {
			return errors.New("ступени тарифа должны быть упорядочены по возрастанию порога")
		}
	}
	return nil
}
