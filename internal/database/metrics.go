package database

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DBMetrics содержит все метрики, связанные с базой данных
type DBMetrics struct {
	SuccessfulSavesTotal  prometheus.Counter
	FailedSavesTotal      prometheus.Counter
	SuccessfulCountsTotal prometheus.Counter
	FailedCountsTotal     prometheus.Counter
	SuccessfulLoadsTotal  prometheus.Counter
	FailedLoadsTotal      prometheus.Counter

	SaveDuration  prometheus.Histogram
	CountDuration prometheus.Histogram
	LoadDuration  prometheus.Histogram

	ConnectionErrorsTotal prometheus.Counter
	QueryErrorsTotal      prometheus.Counter

	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// Global metrics для предотвращения дублирования метрик
var globalDBMetrics *DBMetrics

// NewDBMetrics создает и регистрирует новые метрики БД
func NewDBMetrics() *DBMetrics {
	// Возвращаем глобальный экземпляр, чтобы избежать дублирования метрик
	if globalDBMetrics != nil {
		return globalDBMetrics
	}

	globalDBMetrics = &DBMetrics{
		SuccessfulSavesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_successful_order_saves_total",
			Help: "Общее количество успешных сохранений заказов в БД",
		}),
		FailedSavesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_failed_order_saves_total",
			Help: "Общее количество неудачных сохранений заказов в БД",
		}),
		SuccessfulCountsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_successful_order_counts_total",
			Help: "Общее количество успешных подсчетов заказов в окне лимитирования",
		}),
		FailedCountsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_failed_order_counts_total",
			Help: "Общее количество неудачных подсчетов заказов в окне лимитирования",
		}),
		SuccessfulLoadsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_successful_loads_total",
			Help: "Общее количество успешных загрузок заведений и зон доставки",
		}),
		FailedLoadsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_failed_loads_total",
			Help: "Общее количество неудачных загрузок заведений и зон доставки",
		}),
		SaveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "db_order_save_duration_seconds",
			Help:    "Время сохранения заказа в БД в секундах",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),
		CountDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "db_order_count_duration_seconds",
			Help:    "Время подсчета заказов в окне лимитирования в секундах",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),
		LoadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "db_load_duration_seconds",
			Help:    "Время загрузки заведений и зон доставки в секундах",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),
		ConnectionErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_connection_errors_total",
			Help: "Общее количество ошибок подключения к БД",
		}),
		QueryErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Общее количество ошибок запросов к БД",
		}),
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Время выполнения SQL-запросов в секундах, разбитое по типу операции",
				Buckets: []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"operation"},
		),
		QueryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_by_operation_total",
				Help: "Количество ошибок SQL-запросов, разбитое по типу операции",
			},
			[]string{"operation"},
		),
	}

	return globalDBMetrics
}

// ResetDBMetricsForTest сбрасывает глобальные метрики БД (для использования в тестах)
func ResetDBMetricsForTest() {
	globalDBMetrics = nil
}
