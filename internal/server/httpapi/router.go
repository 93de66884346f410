// Package httpapi exposes the user service over HTTP/JSON:
//
//	POST /users/register   create a user          201 | 400 | 409
//	GET  /users/{username} look a user up         200 | 404
//	PUT  /users/{id}       replace name/password  200 | 400 | 404 | 409
//	GET  /health           liveness               200
//	GET  /metrics          Prometheus exposition
//
// Errors are answered as {"error": "..."}.
package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophaccount/internal/logging"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UserService is the business logic the handlers call.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id int64, username, password string) (*models.User, error)
}

type Router struct {
	mux    *mux.Router
	users  UserService
	logger logging.Logger

	registry       *prometheus.Registry
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewRouter wires the routes. Each Router has its own metrics registry.
func NewRouter(users UserService, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.Nop()
	}
	r := &Router{
		mux:      mux.NewRouter(),
		users:    users,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	r.initMetrics()

	r.mux.Use(r.withRequestID, r.withObservability)

	r.mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.mux.HandleFunc("/users/register", r.handleRegister).Methods(http.MethodPost)
	r.mux.HandleFunc("/users/{username}", r.handleGetUser).Methods(http.MethodGet)
	r.mux.HandleFunc("/users/{id}", r.handleUpdateUser).Methods(http.MethodPut)

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
