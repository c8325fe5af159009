// Package database содержит SQL запросы для работы с базой данных
package database

// SQL Queries
const (
	// Создание таблиц
	CreateLocationsTable = `CREATE TABLE IF NOT EXISTS locations (
		id BIGINT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		delivery_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		collection_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		future_orders BOOLEAN NOT NULL DEFAULT FALSE,
		future_order_days INTEGER NOT NULL DEFAULT 0,
		open_24x7 BOOLEAN NOT NULL DEFAULT FALSE,
		delivery_lead_time INTEGER NOT NULL DEFAULT 15,
		collection_lead_time INTEGER NOT NULL DEFAULT 15,
		delivery_interval INTEGER NOT NULL DEFAULT 15,
		collection_interval INTEGER NOT NULL DEFAULT 15,
		default_delivery_area BIGINT NOT NULL DEFAULT 0,
		options JSONB NOT NULL DEFAULT '{}'::jsonb
	)`

	CreateWorkingHoursTable = `CREATE TABLE IF NOT EXISTS working_hours (
		id SERIAL PRIMARY KEY,
		location_id BIGINT REFERENCES locations(id) ON DELETE CASCADE,
		order_type VARCHAR(20) NOT NULL,
		weekday SMALLINT NOT NULL,
		open_time VARCHAR(5) NOT NULL,
		close_time VARCHAR(5) NOT NULL
	)`

	CreateDeliveryAreasTable = `CREATE TABLE IF NOT EXISTS delivery_areas (
		id BIGINT PRIMARY KEY,
		location_id BIGINT REFERENCES locations(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		center_lat DOUBLE PRECISION NOT NULL,
		center_lng DOUBLE PRECISION NOT NULL,
		radius_km DOUBLE PRECISION NOT NULL,
		tiers JSONB NOT NULL DEFAULT '[]'::jsonb
	)`

	CreateOrdersTable = `CREATE TABLE IF NOT EXISTS orders (
		order_uid VARCHAR(255) PRIMARY KEY,
		location_id BIGINT NOT NULL,
		order_type VARCHAR(20) NOT NULL,
		order_date DATE NOT NULL,
		order_time TIME NOT NULL,
		status_id INTEGER NOT NULL DEFAULT 1,
		subtotal NUMERIC(10,2) NOT NULL DEFAULT 0,
		customer_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`

	// Индекс под запрос лимитера: заведение + дата + время
	CreateOrdersIndex = `CREATE INDEX IF NOT EXISTS idx_orders_location_date_time
		ON orders(location_id, order_date, order_time)`

	CreateWorkingHoursIndex = `CREATE INDEX IF NOT EXISTS idx_working_hours_location
		ON working_hours(location_id, order_type)`

	// Запрос лимитера: заказы заведения в окне [start, end) даты,
	// аннулированные (status_id = 0) не считаются
	CountOrdersQuery = `SELECT COUNT(*) FROM orders
		WHERE location_id = $1 AND order_date = $2
		AND order_time >= $3 AND order_time < $4
		AND status_id != 0`

	// Сохранение размещенного заказа (UPSERT)
	SaveOrderQuery = `INSERT INTO orders
		(order_uid, location_id, order_type, order_date, order_time, status_id, subtotal, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (order_uid) DO UPDATE SET
		location_id = EXCLUDED.location_id,
		order_type = EXCLUDED.order_type,
		order_date = EXCLUDED.order_date,
		order_time = EXCLUDED.order_time,
		status_id = EXCLUDED.status_id,
		subtotal = EXCLUDED.subtotal,
		customer_id = EXCLUDED.customer_id`

	GetLocationQuery = `SELECT id, name, latitude, longitude,
		delivery_enabled, collection_enabled, future_orders, future_order_days, open_24x7,
		delivery_lead_time, collection_lead_time, delivery_interval, collection_interval,
		default_delivery_area, options
		FROM locations WHERE id = $1`

	GetWorkingHoursQuery = `SELECT order_type, weekday, open_time, close_time
		FROM working_hours WHERE location_id = $1
		ORDER BY order_type, weekday, open_time`

	GetDeliveryAreaQuery = `SELECT id, location_id, name, center_lat, center_lng, radius_km, tiers
		FROM delivery_areas WHERE id = $1`

	ListDeliveryAreasQuery = `SELECT id, location_id, name, center_lat, center_lng, radius_km, tiers
		FROM delivery_areas WHERE location_id = $1 ORDER BY id`
)
