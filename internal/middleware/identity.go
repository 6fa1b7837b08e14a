package middleware

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rejectedCallers = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "postomat_service",
	Subsystem: "http",
	Name:      "rejected_callers_total",
	Help:      "Requests rejected before reaching a handler, by reason.",
}, []string{"reason"})

const (
	rejectBadID        = "bad_user_id"
	rejectBadRole      = "bad_role"
	rejectNoCaller     = "no_caller"
	rejectRoleMismatch = "role_mismatch"
)

// Заголовки проставляет auth-шлюз перед сервисом
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type callerKey struct{}

func WithCaller(ctx context.Context, c entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

func CallerFrom(ctx context.Context) (entities.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(entities.Caller)
	return c, ok
}

func parseCaller(r *http.Request) (entities.Caller, string) {
	id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
	if err != nil || id <= 0 {
		return entities.Caller{}, rejectBadID
	}
	role := entities.Role(r.Header.Get(HeaderUserRole))
	switch role {
	case entities.RoleClient, entities.RoleCourier, entities.RoleStaff:
		return entities.Caller{ID: id, Role: role}, ""
	default:
		return entities.Caller{}, rejectBadRole
	}
}

func reject(w http.ResponseWriter, reason string, err error, code string, status int) {
	rejectedCallers.WithLabelValues(reason).Inc()
	utils.WriteError(w, err.Error(), code, status)
}

func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, reason := parseCaller(r)
		if reason != "" {
			reject(w, reason, entities.ErrUnauthorized, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// RequireRole ставится после Identity
func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFrom(r.Context())
			if !ok {
				reject(w, rejectNoCaller, entities.ErrUnauthorized, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, caller.Role) {
				reject(w, rejectRoleMismatch, entities.ErrForbidden, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
