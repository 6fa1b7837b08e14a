package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestLabels = []string{"method", "route", "role", "status"}

var (
	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "postomat_service",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Requests currently being served, by caller role.",
	}, []string{"role"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "postomat_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Handled requests.",
	}, requestLabels)

	// Операции с дверью идут через транзакцию с блокировкой, хвост важнее среднего
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "postomat_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, requestLabels)
)

// roleLabel берёт роль из заголовка, не доверяя ему: неизвестное значение
// не должно плодить серии.
func roleLabel(r *http.Request) string {
	switch role := entities.Role(r.Header.Get(HeaderUserRole)); role {
	case entities.RoleClient, entities.RoleCourier, entities.RoleStaff:
		return string(role)
	default:
		return "anonymous"
	}
}

func routeLabel(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unmatched"
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := roleLabel(r)
		inFlight := httpInFlight.WithLabelValues(role)
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)
		next.ServeHTTP(rw, r)

		// Шаблон маршрута известен только после роутинга
		labels := []string{r.Method, routeLabel(r), role, strconv.Itoa(rw.status)}
		httpRequestsTotal.WithLabelValues(labels...).Inc()
		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}
