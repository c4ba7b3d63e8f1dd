package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// AlertNotification is the payload published for every alert raised by the
// workflow engine. External notifiers (email, voice assistant) consume it.
type AlertNotification struct {
	AlertID     int64     `json:"id_alerta"`
	EquipmentID int64     `json:"id_equipo"`
	Kind        string    `json:"tipo_alerta"`
	Priority    string    `json:"prioridad"`
	Deadline    time.Time `json:"fecha_limite"`
	Description string    `json:"descripcion_alerta"`
	RaisedAt    time.Time `json:"fecha_alerta"`
}
