package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas del servicio, expuestas en GET /metrics.
var (
	// RequestsTotal peticiones HTTP atendidas, por ruta y código de estado.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogo_http_requests_total",
		Help: "Peticiones HTTP atendidas.",
	}, []string{"ruta", "estado"})

	// StockUpdatesTotal actualizaciones de stock aplicadas en memoria.
	StockUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogo_stock_updates_total",
		Help: "Actualizaciones de stock aplicadas a la tabla en memoria.",
	})

	// PersistenceErrorsTotal fallos de persistencia posteriores al update en
	// memoria, por sumidero (db | snapshot).
	PersistenceErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogo_persistencia_errores_total",
		Help: "Fallos al persistir la actualización de stock.",
	}, []string{"sumidero"})
)
