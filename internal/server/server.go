//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/repository"
	"github.com/centrominero/gil/internal/workflow"
)

// Workflow is the engine surface exposed over HTTP.
type Workflow interface {
	RegisterEquipment(ctx context.Context, eq *repository.Equipment) (*repository.Equipment, error)
	DecommissionEquipment(ctx context.Context, equipmentID int64, reason string) (*repository.Equipment, error)
	ListAvailableEquipment(ctx context.Context) ([]*repository.Equipment, error)
	MaintenanceHistory(ctx context.Context, equipmentID int64) ([]*repository.MaintenanceRecord, error)

	RequestLoan(ctx context.Context, equipmentID, requesterID int64, purpose string, scheduledStart, scheduledEnd time.Time) (*repository.Loan, error)
	ApproveLoan(ctx context.Context, loanID, approverID int64) (*repository.Loan, error)
	RejectLoan(ctx context.Context, loanID int64, reason string) (*repository.Loan, error)
	ActivateLoan(ctx context.Context, loanID int64) (*repository.Loan, error)
	ReturnLoan(ctx context.Context, loanID int64, returnGrade repository.ConditionGrade, observations string) (*repository.Loan, error)
	GetLoan(ctx context.Context, loanID int64) (*workflow.LoanView, error)
	ListActiveLoans(ctx context.Context, requesterID int64) ([]workflow.LoanView, error)

	ListPendingAlerts(ctx context.Context) ([]workflow.AlertView, error)
	AssignAlert(ctx context.Context, alertID, assigneeID int64) (*repository.Alert, error)
	ResolveAlert(ctx context.Context, alertID int64, notes string) (*repository.Alert, error)
	CancelAlert(ctx context.Context, alertID int64, notes string) (*repository.Alert, error)
	ReportPredictedFailure(ctx context.Context, equipmentID int64, description string, deadline time.Time, priority repository.AlertPriority) (*repository.Alert, error)

	RecordMaintenance(ctx context.Context, in workflow.MaintenanceInput) (*repository.MaintenanceRecord, error)
	RunPass(ctx context.Context) error
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	engine   Workflow
	userRepo UserRepo
	server   *http.Server
	log      *zap.Logger
}

func New(engine Workflow, userRepo UserRepo, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		engine:   engine,
		userRepo: userRepo,
		log:      log,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.log.Info("http server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	// Metrics stay outside basic auth so the scraper needs no credentials.
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/equipos", s.handleRegisterEquipment).Methods(http.MethodPost)
	api.HandleFunc("/equipos/disponibles", s.handleListAvailableEquipment).Methods(http.MethodGet)
	api.HandleFunc("/equipos/{id}/baja", s.handleDecommissionEquipment).Methods(http.MethodPost)
	api.HandleFunc("/equipos/{id}/mantenimientos", s.handleMaintenanceHistory).Methods(http.MethodGet)

	api.HandleFunc("/prestamos", s.handleRequestLoan).Methods(http.MethodPost)
	api.HandleFunc("/prestamos/activos", s.handleListActiveLoans).Methods(http.MethodGet)
	api.HandleFunc("/prestamos/{id}", s.handleGetLoan).Methods(http.MethodGet)
	api.HandleFunc("/prestamos/{id}/aprobar", s.handleApproveLoan).Methods(http.MethodPost)
	api.HandleFunc("/prestamos/{id}/rechazar", s.handleRejectLoan).Methods(http.MethodPost)
	api.HandleFunc("/prestamos/{id}/activar", s.handleActivateLoan).Methods(http.MethodPost)
	api.HandleFunc("/prestamos/{id}/devolver", s.handleReturnLoan).Methods(http.MethodPost)

	api.HandleFunc("/alertas/pendientes", s.handleListPendingAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alertas/falla-predicha", s.handleReportPredictedFailure).Methods(http.MethodPost)
	api.HandleFunc("/alertas/{id}/asignar", s.handleAssignAlert).Methods(http.MethodPost)
	api.HandleFunc("/alertas/{id}/resolver", s.handleResolveAlert).Methods(http.MethodPost)
	api.HandleFunc("/alertas/{id}/cancelar", s.handleCancelAlert).Methods(http.MethodPost)

	api.HandleFunc("/mantenimientos", s.handleRecordMaintenance).Methods(http.MethodPost)
	api.HandleFunc("/mantenimientos/programar", s.handleRunSchedulerPass).Methods(http.MethodPost)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError translates engine error kinds into HTTP statuses.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workflow.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, workflow.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrConflictingLoan),
		errors.Is(err, workflow.ErrInvalidEquipmentState):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, workflow.ErrStoreConflict):
		respondError(w, http.StatusServiceUnavailable, "store busy, retry later")
	default:
		s.log.Error("unhandled request error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
