package kafka

import (
	"fmt"
	"log"
	"time"

	"storefront_service/internal/models"

	"github.com/go-faker/faker/v4"
)

// GenerateTestOrder создает тестовый размещенный заказ для демонстрации
// и наполнения окон лимитирования фейковыми данными
func GenerateTestOrder(index int, locationID int64, day time.Time) *models.Order {
	var order models.Order

	// Генерация фейковых данных для заказа
	_ = faker.FakeData(&order)

	// Установка значений, которые должны соответствовать требованиям валидации
	orderUID := fmt.Sprintf("testorderuid%020d", index)
	order.OrderUID = orderUID[:32] // Обеспечить ровно 32 буквенно-цифровых символа
	order.LocationID = locationID
	order.OrderDate = day.Format(models.DateKeyLayout)

	// Заказы раскладываются по получасовым окнам рабочего дня
	slot := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location()).
		Add(time.Duration(index%24) * 30 * time.Minute)
	order.OrderTime = slot.Format(models.OrderTimeLayout)

	// Чередуем типы заказов
	order.OrderType = models.OrderTypeDelivery
	if index%3 == 0 {
		order.OrderType = models.OrderTypeCollection
	}

	order.StatusID = 1 + index%3 // Обеспечить, чтобы заказ не был аннулирован
	if order.Subtotal <= 0 {
		order.Subtotal = float64(10 + (index*7)%90)
	}
	if order.CustomerID == "" {
		order.CustomerID = fmt.Sprintf("customer_%d", index)
	}
	order.CreatedAt = time.Now()

	// Валидация сгенерированного заказа
	if err := order.Validate(); err != nil {
		log.Printf("Сгенерированный заказ не прошел валидацию: %v", err)
	}

	return &order
}
