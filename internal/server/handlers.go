package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/centrominero/gil/internal/repository"
	"github.com/centrominero/gil/internal/workflow"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleRegisterEquipment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InternalCode     string          `json:"codigo_interno"`
		Name             string          `json:"nombre_equipo"`
		Brand            string          `json:"marca"`
		Model            string          `json:"modelo"`
		SerialNumber     string          `json:"numero_serie"`
		CategoryID       int64           `json:"id_categoria"`
		LaboratoryID     int64           `json:"id_laboratorio"`
		AcquisitionValue decimal.Decimal `json:"valor_adquisicion"`
		AcquiredAt       *time.Time      `json:"fecha_adquisicion"`
		Condition        string          `json:"estado_fisico"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	eq := &repository.Equipment{
		InternalCode:     req.InternalCode,
		Name:             req.Name,
		Brand:            req.Brand,
		Model:            req.Model,
		SerialNumber:     req.SerialNumber,
		CategoryID:       req.CategoryID,
		LaboratoryID:     req.LaboratoryID,
		AcquisitionValue: req.AcquisitionValue,
		AcquiredAt:       req.AcquiredAt,
		Condition:        repository.ConditionGrade(req.Condition),
	}
	created, err := s.engine.RegisterEquipment(r.Context(), eq)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDecommissionEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	var req struct {
		Reason string `json:"motivo"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	eq, err := s.engine.DecommissionEquipment(r.Context(), id, req.Reason)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eq)
}

func (s *Server) handleListAvailableEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := s.engine.ListAvailableEquipment(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleMaintenanceHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	recs, err := s.engine.MaintenanceHistory(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (s *Server) handleRequestLoan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EquipmentID    int64     `json:"id_equipo"`
		RequesterID    int64     `json:"id_usuario_solicitante"`
		Purpose        string    `json:"proposito_prestamo"`
		ScheduledStart time.Time `json:"fecha_prestamo"`
		ScheduledEnd   time.Time `json:"fecha_devolucion_programada"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := s.engine.RequestLoan(r.Context(), req.EquipmentID, req.RequesterID, req.Purpose, req.ScheduledStart, req.ScheduledEnd)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, loan)
}

func (s *Server) handleApproveLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid loan ID")
		return
	}

	var req struct {
		ApproverID int64 `json:"id_usuario_autorizador"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := s.engine.ApproveLoan(r.Context(), id, req.ApproverID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (s *Server) handleRejectLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid loan ID")
		return
	}

	var req struct {
		Reason string `json:"motivo"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	loan, err := s.engine.RejectLoan(r.Context(), id, req.Reason)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (s *Server) handleActivateLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid loan ID")
		return
	}

	loan, err := s.engine.ActivateLoan(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (s *Server) handleReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid loan ID")
		return
	}

	var req struct {
		Grade        string `json:"calificacion_devolucion"`
		Observations string `json:"observaciones_devolucion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := s.engine.ReturnLoan(r.Context(), id, repository.ConditionGrade(req.Grade), req.Observations)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (s *Server) handleGetLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid loan ID")
		return
	}

	loan, err := s.engine.GetLoan(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (s *Server) handleListActiveLoans(w http.ResponseWriter, r *http.Request) {
	var requesterID int64
	if v := r.URL.Query().Get("solicitante"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'solicitante' parameter")
			return
		}
		requesterID = id
	}

	loans, err := s.engine.ListActiveLoans(r.Context(), requesterID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

func (s *Server) handleListPendingAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.engine.ListPendingAlerts(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleAssignAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	var req struct {
		AssigneeID int64 `json:"asignado_a"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	alert, err := s.engine.AssignAlert(r.Context(), id, req.AssigneeID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, alert)
}

func (s *Server) handleResolveAlert(w http.ResponseWriter, r *http.Request) {
	s.handleCloseAlert(w, r, s.engine.ResolveAlert)
}

func (s *Server) handleCancelAlert(w http.ResponseWriter, r *http.Request) {
	s.handleCloseAlert(w, r, s.engine.CancelAlert)
}

func (s *Server) handleCloseAlert(w http.ResponseWriter, r *http.Request, closeFn func(ctx context.Context, alertID int64, notes string) (*repository.Alert, error)) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	var req struct {
		Notes string `json:"observaciones_resolucion"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	alert, err := closeFn(r.Context(), id, req.Notes)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, alert)
}

func (s *Server) handleReportPredictedFailure(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EquipmentID int64     `json:"id_equipo"`
		Description string    `json:"descripcion_alerta"`
		Deadline    time.Time `json:"fecha_limite"`
		Priority    string    `json:"prioridad"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	alert, err := s.engine.ReportPredictedFailure(r.Context(), req.EquipmentID, req.Description, req.Deadline, repository.AlertPriority(req.Priority))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, alert)
}

func (s *Server) handleRecordMaintenance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EquipmentID     int64           `json:"id_equipo"`
		TypeID          int64           `json:"id_tipo_mantenimiento"`
		TechnicianID    int64           `json:"tecnico_responsable_id"`
		WorkDescription string          `json:"descripcion_trabajo"`
		Cost            decimal.Decimal `json:"costo_mantenimiento"`
		DowntimeHours   decimal.Decimal `json:"tiempo_inactividad_horas"`
		ResultGrade     string          `json:"estado_post_mantenimiento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := s.engine.RecordMaintenance(r.Context(), workflow.MaintenanceInput{
		EquipmentID:     req.EquipmentID,
		TypeID:          req.TypeID,
		TechnicianID:    req.TechnicianID,
		WorkDescription: req.WorkDescription,
		Cost:            req.Cost,
		DowntimeHours:   req.DowntimeHours,
		ResultGrade:     repository.ConditionGrade(req.ResultGrade),
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleRunSchedulerPass(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.RunPass(r.Context()); err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Scheduler pass completed"})
}
