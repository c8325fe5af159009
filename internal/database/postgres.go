// Package database содержит логику работы с базой данных PostgreSQL
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront_service/internal/models"
	"storefront_service/internal/retry"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres представляет подключение к базе данных PostgreSQL
type Postgres struct {
	pool    *pgxpool.Pool // Пул соединений с базой данных
	metrics *DBMetrics    // Метрики для мониторинга
}

// NewPostgres создает новое подключение к базе данных PostgreSQL
func NewPostgres(ctx context.Context, connectStr string) (*Postgres, error) {
	// Парсим строку подключения
	config, err := pgxpool.ParseConfig(connectStr)
	if err != nil {
		return nil, fmt.Errorf("Ошибка при анализе строки для подключения:%v", err)
	}

	// Создаем пул соединений
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("Ошибка при создании подключения:%v", err)
	}

	// Проверяем соединение с базой данных
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("Ошибка соединения с БД:%v", err)
	}

	return &Postgres{pool: pool, metrics: NewDBMetrics()}, nil
}

// Init инициализирует базу данных, создавая необходимые таблицы и индексы
func (p *Postgres) Init(ctx context.Context) error {
	// Используем retry механизм для инициализации базы данных
	retryPolicy := retry.CriticalPolicy()

	return retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		// SQL запросы для создания таблиц и индексов
		queries := []string{
			CreateLocationsTable,
			CreateWorkingHoursTable,
			CreateDeliveryAreasTable,
			CreateOrdersTable,
			CreateOrdersIndex,
			CreateWorkingHoursIndex,
		}

		// Выполняем все SQL запросы
		for _, query := range queries {
			if _, err := p.pool.Exec(ctx, query); err != nil {
				p.metrics.QueryErrorsTotal.Inc()
				return fmt.Errorf("Ошибка выполнения запроса %s: %v", query, err)
			}
		}

		log.Println("БД инициализирована")
		return nil
	})
}

// SaveOrder сохраняет размещенный заказ в базу данных
func (p *Postgres) SaveOrder(ctx context.Context, order *models.Order) error {
	retryPolicy := retry.CriticalPolicy()

	err := retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		start := time.Now()
		_, err := p.pool.Exec(ctx, SaveOrderQuery,
			order.OrderUID, order.LocationID, string(order.OrderType),
			order.OrderDate, order.OrderTime, order.StatusID,
			order.Subtotal, order.CustomerID, order.CreatedAt)
		p.metrics.QueryDuration.WithLabelValues("save_order").Observe(time.Since(start).Seconds())
		if err != nil {
			p.metrics.QueryErrors.WithLabelValues("save_order").Inc()
			return fmt.Errorf("Ошибка при записи заказа: %v", err)
		}
		return nil
	})

	if err != nil {
		p.metrics.FailedSavesTotal.Inc()
		return err
	}
	p.metrics.SuccessfulSavesTotal.Inc()
	return nil
}

// CountOrders возвращает количество заказов заведения в окне [start, end)
// указанной даты. Аннулированные заказы (status_id = 0) не считаются
func (p *Postgres) CountOrders(ctx context.Context, locationID int64, dateKey string, start, end time.Time) (int, error) {
	var count int
	retryPolicy := retry.ReadPolicy()

	err := retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		began := time.Now()
		row := p.pool.QueryRow(ctx, CountOrdersQuery, locationID, dateKey,
			start.Format(models.OrderTimeLayout), end.Format(models.OrderTimeLayout))
		err := row.Scan(&count)
		p.metrics.CountDuration.Observe(time.Since(began).Seconds())
		if err != nil {
			p.metrics.QueryErrors.WithLabelValues("count_orders").Inc()
			return fmt.Errorf("Ошибка подсчета заказов: %v", err)
		}
		return nil
	})

	if err != nil {
		p.metrics.FailedCountsTotal.Inc()
		return 0, err
	}
	p.metrics.SuccessfulCountsTotal.Inc()
	return count, nil
}

// LoadLocation загружает настройки заведения вместе с недельными расписаниями
func (p *Postgres) LoadLocation(ctx context.Context, id int64) (*models.Location, error) {
	var loc *models.Location
	retryPolicy := retry.ReadPolicy()

	err := retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		began := time.Now()
		defer func() {
			p.metrics.LoadDuration.Observe(time.Since(began).Seconds())
		}()

		var tempLoc models.Location
		var optionsRaw []byte

		row := p.pool.QueryRow(ctx, GetLocationQuery, id)
		err := row.Scan(
			&tempLoc.ID, &tempLoc.Name, &tempLoc.Latitude, &tempLoc.Longitude,
			&tempLoc.DeliveryEnabled, &tempLoc.CollectionEnabled,
			&tempLoc.FutureOrders, &tempLoc.FutureOrderDays, &tempLoc.Open24x7,
			&tempLoc.DeliveryLeadTime, &tempLoc.CollectionLeadTime,
			&tempLoc.DeliveryInterval, &tempLoc.CollectionInterval,
			&tempLoc.DefaultDeliveryArea, &optionsRaw,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("Заведение %d не найдено: %v", id, err)
			}
			p.metrics.QueryErrors.WithLabelValues("load_location").Inc()
			return fmt.Errorf("Ошибка загрузки заведения: %v", err)
		}

		tempLoc.Options = map[string]string{}
		if len(optionsRaw) > 0 {
			if err := json.Unmarshal(optionsRaw, &tempLoc.Options); err != nil {
				return fmt.Errorf("Ошибка разбора опций заведения: %v", err)
			}
		}

		// Загружаем недельные расписания по типам заказов
		rows, err := p.pool.Query(ctx, GetWorkingHoursQuery, id)
		if err != nil {
			p.metrics.QueryErrors.WithLabelValues("load_hours").Inc()
			return fmt.Errorf("Не удалось запросить расписание: %v", err)
		}
		defer rows.Close()

		tempLoc.Hours = map[models.OrderType][]models.WorkingPeriod{}
		for rows.Next() {
			var orderType string
			var period models.WorkingPeriod
			var weekday int
			if err := rows.Scan(&orderType, &weekday, &period.Open, &period.Close); err != nil {
				return fmt.Errorf("Ошибка при чтении расписания:%v", err)
			}
			period.Weekday = time.Weekday(weekday)
			t := models.OrderType(orderType)
			tempLoc.Hours[t] = append(tempLoc.Hours[t], period)
		}

		// Проверяем ошибки при итерации
		if err := rows.Err(); err != nil {
			return fmt.Errorf("Ошибка при переборе расписания: %v", err)
		}

		loc = &tempLoc
		return nil
	})

	if err != nil {
		p.metrics.FailedLoadsTotal.Inc()
		return nil, err
	}
	p.metrics.SuccessfulLoadsTotal.Inc()
	return loc, nil
}

// FindDeliveryArea получает зону доставки по идентификатору.
// Отсутствие зоны не считается ошибкой: возвращается nil
func (p *Postgres) FindDeliveryArea(ctx context.Context, id int64) (*models.DeliveryArea, error) {
	var found *models.DeliveryArea
	retryPolicy := retry.ReadPolicy()

	err := retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		began := time.Now()
		defer func() {
			p.metrics.LoadDuration.Observe(time.Since(began).Seconds())
		}()

		row := p.pool.QueryRow(ctx, GetDeliveryAreaQuery, id)
		a, err := scanArea(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				found = nil
				return nil
			}
			p.metrics.QueryErrors.WithLabelValues("find_area").Inc()
			return fmt.Errorf("Ошибка загрузки зоны доставки: %v", err)
		}
		found = a
		return nil
	})

	if err != nil {
		p.metrics.FailedLoadsTotal.Inc()
		return nil, err
	}
	p.metrics.SuccessfulLoadsTotal.Inc()
	return found, nil
}

// ListDeliveryAreas возвращает все зоны доставки заведения
func (p *Postgres) ListDeliveryAreas(ctx context.Context, locationID int64) ([]models.DeliveryArea, error) {
	var areas []models.DeliveryArea
	retryPolicy := retry.ReadPolicy()

	err := retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		began := time.Now()
		defer func() {
			p.metrics.LoadDuration.Observe(time.Since(began).Seconds())
		}()

		rows, err := p.pool.Query(ctx, ListDeliveryAreasQuery, locationID)
		if err != nil {
			p.metrics.QueryErrors.WithLabelValues("list_areas").Inc()
			return fmt.Errorf("Ошибка при запросе зон доставки: %v", err)
		}
		defer rows.Close()

		areas = make([]models.DeliveryArea, 0)
		for rows.Next() {
			a, err := scanArea(rows)
			if err != nil {
				return fmt.Errorf("Ошибка при чтении зоны доставки: %v", err)
			}
			areas = append(areas, *a)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("Ошибка перебора зон доставки: %v", err)
		}
		return nil
	})

	if err != nil {
		p.metrics.FailedLoadsTotal.Inc()
		return nil, err
	}
	p.metrics.SuccessfulLoadsTotal.Inc()
	return areas, nil
}

// scanArea читает строку зоны доставки и разворачивает ступени тарифа из JSONB
func scanArea(row pgx.Row) (*models.DeliveryArea, error) {
	var a models.DeliveryArea
	var tiersRaw []byte
	err := row.Scan(&a.ID, &a.LocationID, &a.Name,
		&a.Circle.Center.Latitude, &a.Circle.Center.Longitude, &a.Circle.RadiusKm, &tiersRaw)
	if err != nil {
		return nil, err
	}
	if len(tiersRaw) > 0 {
		if err := json.Unmarshal(tiersRaw, &a.Tiers); err != nil {
			return nil, fmt.Errorf("Ошибка разбора ступеней тарифа зоны %d: %v", a.ID, err)
		}
	}
	return &a, nil
}

// Close закрывает соединение с базой данных
func (p *Postgres) Close() {
	p.pool.Close()
}
