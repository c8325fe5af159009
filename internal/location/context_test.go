package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront_service/internal/area"
	"storefront_service/internal/mocks"
	"storefront_service/internal/models"
	"storefront_service/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// contextLocation заведение с дневным расписанием всю неделю
func contextLocation() *models.Location {
	hours := make([]models.WorkingPeriod, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours = append(hours, models.WorkingPeriod{Weekday: d, Open: "09:00", Close: "22:00"})
	}
	return &models.Location{
		ID:                 1,
		Name:               "Test Bistro",
		Latitude:           55.7558,
		Longitude:          37.6173,
		DeliveryEnabled:    true,
		CollectionEnabled:  true,
		FutureOrders:       true,
		FutureOrderDays:    5,
		DeliveryLeadTime:   15,
		CollectionLeadTime: 10,
		DeliveryInterval:   30,
		CollectionInterval: 15,
		Hours: map[models.OrderType][]models.WorkingPeriod{
			models.OrderTypeOpening: hours,
		},
	}
}

// monday момент времени в понедельник 2026-09-07
func monday(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.Local)
}

// newTestContext контекст с реальным сессионным хранилищем и фиксированным временем
func newTestContext(t *testing.T, notifier *mocks.MockNotifier, resolver *area.Resolver) *Context {
	t.Helper()
	store := session.NewStore(30 * time.Minute)
	c := NewContext(contextLocation(), store, notifier, resolver, nil, "session-1", models.OrderTypeDelivery)
	return c.WithClock(func() time.Time { return monday(12, 0) })
}

func TestContext_OrderType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	c := newTestContext(t, notifier, nil)

	// Без выбора действует тип по умолчанию
	assert.Equal(t, models.OrderTypeDelivery, c.OrderType())
	assert.True(t, c.OrderTypeIsDelivery())

	t.Run("UpdateFiresEvent", func(t *testing.T) {
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e models.Event) {
			assert.Equal(t, models.EventOrderTypeUpdated, e.Name)
			assert.Equal(t, "session-1", e.SessionID)
			assert.Equal(t, "delivery", e.Payload["old"])
			assert.Equal(t, "collection", e.Payload["new"])
		})

		c.UpdateOrderType(context.Background(), models.OrderTypeCollection)
		assert.Equal(t, models.OrderTypeCollection, c.OrderType())
		assert.True(t, c.OrderTypeIsCollection())
	})

	t.Run("SameTypeNoEvent", func(t *testing.T) {
		// Повторная установка того же типа не публикует событие
		c.UpdateOrderType(context.Background(), models.OrderTypeCollection)
		assert.Equal(t, models.OrderTypeCollection, c.OrderType())
	})

	t.Run("EmptyTypeResets", func(t *testing.T) {
		c.UpdateOrderType(context.Background(), "")
		assert.Equal(t, models.OrderTypeDelivery, c.OrderType(),
			"после сброса должен действовать тип по умолчанию")
	})

	t.Run("InvalidTypeIgnored", func(t *testing.T) {
		c.UpdateOrderType(context.Background(), models.OrderType("pickup"))
		assert.Equal(t, models.OrderTypeDelivery, c.OrderType())
	})
}

func TestContext_CheckOrderType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := newTestContext(t, mocks.NewMockNotifier(ctrl), nil)

	// Открыто: заказы принимаются
	assert.True(t, c.CheckOrderType(models.OrderTypeDelivery))

	// Выключенный тип недоступен даже в рабочее время
	c.model.DeliveryEnabled = false
	assert.False(t, c.CheckOrderType(models.OrderTypeDelivery))
	c.model.DeliveryEnabled = true

	// До открытия работает только при разрешенных будущих заказах
	c.WithClock(func() time.Time { return monday(7, 0) })
	assert.True(t, c.CheckOrderType(models.OrderTypeDelivery),
		"до открытия с разрешенными будущими заказами тип должен приниматься")

	c.model.FutureOrders = false
	assert.False(t, c.CheckOrderType(models.OrderTypeDelivery))
}

func TestContext_UserPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	c := newTestContext(t, notifier, nil)

	assert.True(t, c.UserPosition().IsZero(), "без сохраненной позиции должна возвращаться нулевая")

	pos := models.Coordinates{Latitude: 55.76, Longitude: 37.64}
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e models.Event) {
		assert.Equal(t, models.EventPositionUpdated, e.Name)
	})

	c.UpdateUserPosition(context.Background(), pos)
	assert.Equal(t, pos, c.UserPosition())
}

func TestContext_Timeslot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	c := newTestContext(t, notifier, nil)

	t.Run("NoSelectionIsAsap", func(t *testing.T) {
		assert.True(t, c.OrderTimeIsAsap(), "без выбора заказ должен считаться asap")
	})

	t.Run("NearSlotIsAsap", func(t *testing.T) {
		// Слот в пределах now + 2×упреждение считается asap
		near := monday(12, 20)
		asap := false
		c.UpdateTimeslot(context.Background(), &near, &asap)
		assert.True(t, c.OrderTimeIsAsap(), "слот в пределах двойного упреждения должен считаться asap")
	})

	t.Run("FarSlotIsNotAsap", func(t *testing.T) {
		far := monday(18, 0)
		asap := false
		c.UpdateTimeslot(context.Background(), &far, &asap)
		assert.False(t, c.OrderTimeIsAsap())

		sel, ok := c.TimeslotSelection()
		assert.True(t, ok)
		assert.True(t, far.Equal(*sel.DateTime), "выбор должен пережить сессионный круг")
	})

	t.Run("ResetSelection", func(t *testing.T) {
		c.UpdateTimeslot(context.Background(), nil, nil)
		_, ok := c.TimeslotSelection()
		assert.False(t, ok, "после сброса выбора быть не должно")
		assert.True(t, c.OrderTimeIsAsap())
	})
}

func TestContext_CheckOrderTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := newTestContext(t, mocks.NewMockNotifier(ctrl), nil)

	t.Run("PastRejected", func(t *testing.T) {
		assert.False(t, c.CheckOrderTime(monday(11, 0), models.OrderTypeDelivery),
			"момент в прошлом должен отклоняться")
	})

	t.Run("WithinScheduleAccepted", func(t *testing.T) {
		assert.True(t, c.CheckOrderTime(monday(18, 0), models.OrderTypeDelivery))
	})

	t.Run("OutsideScheduleRejected", func(t *testing.T) {
		assert.False(t, c.CheckOrderTime(monday(23, 0), models.OrderTypeDelivery),
			"момент после закрытия должен отклоняться")
	})

	t.Run("WithinHorizonAccepted", func(t *testing.T) {
		inHorizon := monday(18, 0).AddDate(0, 0, 5)
		assert.True(t, c.CheckOrderTime(inHorizon, models.OrderTypeDelivery))
	})

	t.Run("BeyondHorizonRejected", func(t *testing.T) {
		beyond := monday(18, 0).AddDate(0, 0, 6)
		assert.False(t, c.CheckOrderTime(beyond, models.OrderTypeDelivery),
			"момент за горизонтом будущих заказов должен отклоняться")
	})
}

func TestDaysBetween(t *testing.T) {
	t.Run("CalendarDays", func(t *testing.T) {
		assert.Equal(t, 0, daysBetween(monday(9, 0), monday(23, 0)))
		assert.Equal(t, 5, daysBetween(monday(23, 0), monday(1, 0).AddDate(0, 0, 5)))
	})

	t.Run("ShortDayOnClockChange", func(t *testing.T) {
		// Перевод часов: сутки 2026-03-29 в Берлине длятся 23 часа,
		// но календарный день между полуднями ровно один
		zone, err := time.LoadLocation("Europe/Berlin")
		if err != nil {
			t.Skip("tzdata недоступна")
		}
		from := time.Date(2026, 3, 28, 12, 0, 0, 0, zone)
		to := time.Date(2026, 3, 29, 12, 0, 0, 0, zone)
		assert.Equal(t, 1, daysBetween(from, to))
	})
}

func TestContext_ScheduleAccessors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := newTestContext(t, mocks.NewMockNotifier(ctrl), nil)

	assert.Equal(t, models.ScheduleOpen, c.ScheduleStatus())
	assert.True(t, c.IsOpened())
	assert.False(t, c.IsClosed())
	assert.Equal(t, 15, c.OrderLeadTime())
	assert.Equal(t, 30, c.OrderTimeInterval())

	open, ok := c.OpenTime(models.OrderTypeDelivery)
	assert.True(t, ok)
	assert.Equal(t, monday(9, 0), open)

	last, ok := c.LastOrderTime()
	assert.True(t, ok)
	assert.Equal(t, monday(21, 45), last)
}

func TestContext_CoveredArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	resolver := area.NewResolver(mockDB, mockCache, 1, 0)
	c := newTestContext(t, notifier, resolver)

	deliveryZone := &models.DeliveryArea{
		ID:         7,
		LocationID: 1,
		Name:       "Центр",
		Circle: models.CircleBoundary{
			Center:   models.Coordinates{Latitude: 55.7558, Longitude: 37.6173},
			RadiusKm: 5,
		},
		Tiers: []models.ChargeTier{{Threshold: 0, Charge: 5, MinimumOrder: 10}},
	}

	// Позиция внутри зоны
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	c.UpdateUserPosition(context.Background(), models.Coordinates{Latitude: 55.76, Longitude: 37.64})

	t.Run("ResolvedAndMemoized", func(t *testing.T) {
		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return([]models.DeliveryArea{*deliveryZone}, nil)
		mockCache.EXPECT().Set(gomock.Any())

		covered, err := c.CoveredArea(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(7), covered.Key())
		assert.True(t, c.IsCurrentAreaID(7), "идентификатор зоны должен сохраниться в сессии")

		// Повторный вызов не обращается к резолверу: ожиданий больше нет
		covered, err = c.CoveredArea(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(7), covered.Key())
	})

	t.Run("InvalidatedByPositionUpdate", func(t *testing.T) {
		c.UpdateUserPosition(context.Background(), models.Coordinates{Latitude: 59.9343, Longitude: 30.3351})
		assert.Equal(t, int64(0), c.AreaID(), "смена позиции должна сбрасывать кэш зоны")

		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return([]models.DeliveryArea{*deliveryZone}, nil)

		covered, err := c.CoveredArea(context.Background())
		assert.NoError(t, err)
		assert.True(t, covered.IsNoCoverage(), "непокрытая позиция должна давать сентинел")
		assert.Equal(t, int64(0), c.AreaID(), "сентинел не должен сохраняться в сессии")
	})

	t.Run("ResolveErrorPropagates", func(t *testing.T) {
		c.ClearCoveredArea()
		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(nil, errors.New("database error"))

		_, err := c.CoveredArea(context.Background())
		assert.Error(t, err, "ошибка хранилища не должна маскироваться сентинелом")
	})

	t.Run("StaleForeignAreaIDCleared", func(t *testing.T) {
		// В сессии застрял идентификатор зоны чужого заведения
		c.ClearCoveredArea()
		c.store.Put(c.sessionID, sessionKeyArea, "7")

		foreign := *deliveryZone
		foreign.LocationID = 99
		mockCache.EXPECT().Get(int64(7)).Return(&foreign, true)
		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(nil, nil)

		covered, err := c.CoveredArea(context.Background())
		assert.NoError(t, err)
		assert.True(t, covered.IsNoCoverage())
		assert.Equal(t, int64(0), c.AreaID(), "застарелый идентификатор должен сбрасываться")
		assert.False(t, c.IsCurrentAreaID(7))
	})
}

func TestContext_DeliveryChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

	resolver := area.NewResolver(mockDB, mockCache, 1, 0)
	c := newTestContext(t, notifier, resolver)
	c.UpdateUserPosition(context.Background(), models.Coordinates{Latitude: 55.76, Longitude: 37.64})

	deliveryZone := models.DeliveryArea{
		ID:         7,
		LocationID: 1,
		Name:       "Центр",
		Circle: models.CircleBoundary{
			Center:   models.Coordinates{Latitude: 55.7558, Longitude: 37.6173},
			RadiusKm: 5,
		},
		Tiers: []models.ChargeTier{{Threshold: 0, Charge: 5, MinimumOrder: 20}},
	}
	mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return([]models.DeliveryArea{deliveryZone}, nil)
	mockCache.EXPECT().Set(gomock.Any())

	amount, ok, err := c.DeliveryAmount(context.Background(), 30)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0, amount)

	// Минимум 20: сумма 15 не проходит, 30 проходит
	passed, err := c.CheckMinimumOrder(context.Background(), 15)
	assert.NoError(t, err)
	assert.False(t, passed)

	passed, err = c.CheckMinimumOrder(context.Background(), 30)
	assert.NoError(t, err)
	assert.True(t, passed)

	covered, err := c.CheckDeliveryCoverage(context.Background(), nil)
	assert.NoError(t, err)
	assert.True(t, covered)

	// Расстояние от заведения до позиции сессии, около 1.5 км
	distance := c.CheckDistance(1)
	assert.Greater(t, distance, 0.0)
	assert.Less(t, distance, 5.0)
}
