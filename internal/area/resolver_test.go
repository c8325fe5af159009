package area

import (
	"context"
	"errors"
	"testing"

	"storefront_service/internal/mocks"
	"storefront_service/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestResolver_CachedAreaID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)

	resolver := NewResolver(mockDB, mockCache, 1, 0)
	a := tieredArea()

	t.Run("FoundInCache", func(t *testing.T) {
		mockCache.EXPECT().Get(int64(7)).Return(a, true)

		covered, err := resolver.Resolve(context.Background(), 7, models.Coordinates{})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), covered.Key(), "кэшированная зона должна разрешаться без обращения к БД")
	})

	t.Run("FoundInStore", func(t *testing.T) {
		mockCache.EXPECT().Get(int64(7)).Return(nil, false)
		mockDB.EXPECT().FindDeliveryArea(gomock.Any(), int64(7)).Return(a, nil)
		mockCache.EXPECT().Set(a)

		covered, err := resolver.Resolve(context.Background(), 7, models.Coordinates{})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), covered.Key())
	})

	t.Run("WrongLocationFallsThrough", func(t *testing.T) {
		// Зона другого заведения отбрасывается, поиск продолжается
		foreign := tieredArea()
		foreign.LocationID = 99
		mockCache.EXPECT().Get(int64(7)).Return(foreign, true)
		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(nil, nil)

		covered, err := resolver.Resolve(context.Background(), 7, models.Coordinates{})
		assert.NoError(t, err)
		assert.True(t, covered.IsNoCoverage(), "зона чужого заведения должна отбрасываться")
	})
}

func TestResolver_GeoSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)

	resolver := NewResolver(mockDB, mockCache, 1, 0)

	inside := models.Coordinates{Latitude: 55.76, Longitude: 37.64}
	areas := []models.DeliveryArea{*tieredArea()}

	mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(areas, nil)
	mockCache.EXPECT().Set(gomock.Any())

	covered, err := resolver.Resolve(context.Background(), 0, inside)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), covered.Key(), "зона, покрывающая позицию, должна быть найдена географически")
}

func TestResolver_DefaultArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)

	resolver := NewResolver(mockDB, mockCache, 1, 7)
	a := tieredArea()

	// Географический поиск ничего не нашел: используется зона по умолчанию
	outside := models.Coordinates{Latitude: 59.9343, Longitude: 30.3351}
	mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return([]models.DeliveryArea{*a}, nil)
	mockCache.EXPECT().Get(int64(7)).Return(a, true)

	covered, err := resolver.Resolve(context.Background(), 0, outside)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), covered.Key(), "при непокрытой позиции должна использоваться зона по умолчанию")
}

func TestResolver_NoCoverageSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)

	resolver := NewResolver(mockDB, mockCache, 1, 0)

	mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(nil, nil)

	covered, err := resolver.Resolve(context.Background(), 0, models.Coordinates{Latitude: 1, Longitude: 1})
	assert.NoError(t, err, "отсутствие покрытия — не ошибка")
	assert.True(t, covered.IsNoCoverage(), "без зон должен возвращаться сентинел")
}

func TestResolver_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)

	resolver := NewResolver(mockDB, mockCache, 1, 0)

	mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(nil, errors.New("database error"))

	_, err := resolver.Resolve(context.Background(), 0, models.Coordinates{Latitude: 1, Longitude: 1})
	assert.Error(t, err, "ошибка хранилища не должна маскироваться сентинелом")
	assert.Contains(t, err.Error(), "database error")
}

func TestResolver_ListAreas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockAreaCache(ctrl)

	resolver := NewResolver(mockDB, mockCache, 1, 0)

	t.Run("ReturnsLocationAreas", func(t *testing.T) {
		second := *tieredArea()
		second.ID = 8
		second.Name = "Окраина"
		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).
			Return([]models.DeliveryArea{*tieredArea(), second}, nil)

		areas, err := resolver.ListAreas(context.Background())
		assert.NoError(t, err)
		assert.Len(t, areas, 2)
		assert.Equal(t, int64(7), areas[0].ID)
		assert.Equal(t, "Окраина", areas[1].Name)
	})

	t.Run("StoreErrorPropagates", func(t *testing.T) {
		mockDB.EXPECT().ListDeliveryAreas(gomock.Any(), int64(1)).Return(nil, errors.New("database error"))

		_, err := resolver.ListAreas(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database error")
	})
}
