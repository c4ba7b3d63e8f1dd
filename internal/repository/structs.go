package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrObjectNotFound = errors.New("not found")

// Enum values mirror the legacy MySQL schema so existing data and the
// frontend keep working against the ported service.

type EquipmentState string

const (
	EquipmentAvailable      EquipmentState = "disponible"
	EquipmentLoaned         EquipmentState = "prestado"
	EquipmentMaintenance    EquipmentState = "mantenimiento"
	EquipmentRepair         EquipmentState = "reparacion"
	EquipmentDecommissioned EquipmentState = "dado_baja"
)

type ConditionGrade string

const (
	GradeExcellent ConditionGrade = "excelente"
	GradeGood      ConditionGrade = "bueno"
	GradeRegular   ConditionGrade = "regular"
	GradeBad       ConditionGrade = "malo"
)

type LoanStatus string

const (
	LoanRequested LoanStatus = "solicitado"
	LoanApproved  LoanStatus = "aprobado"
	LoanRejected  LoanStatus = "rechazado"
	LoanActive    LoanStatus = "activo"
	LoanReturned  LoanStatus = "devuelto"
)

type AlertKind string

const (
	AlertScheduledMaintenance AlertKind = "mantenimiento_programado"
	AlertOverdueMaintenance   AlertKind = "mantenimiento_vencido"
	AlertPredictedFailure     AlertKind = "falla_predicha"
	AlertUrgentReview         AlertKind = "revision_urgente"
)

type AlertPriority string

const (
	PriorityLow      AlertPriority = "baja"
	PriorityMedium   AlertPriority = "media"
	PriorityHigh     AlertPriority = "alta"
	PriorityCritical AlertPriority = "critica"
)

type AlertState string

const (
	AlertPending    AlertState = "pendiente"
	AlertInProgress AlertState = "en_proceso"
	AlertResolved   AlertState = "resuelta"
	AlertCancelled  AlertState = "cancelada"
)

type Equipment struct {
	ID               int64           `db:"id_equipo" json:"id_equipo"`
	InternalCode     string          `db:"codigo_interno" json:"codigo_interno"`
	Name             string          `db:"nombre_equipo" json:"nombre_equipo"`
	Brand            string          `db:"marca" json:"marca"`
	Model            string          `db:"modelo" json:"modelo"`
	SerialNumber     string          `db:"numero_serie" json:"numero_serie"`
	CategoryID       int64           `db:"id_categoria" json:"id_categoria"`
	LaboratoryID     int64           `db:"id_laboratorio" json:"id_laboratorio"`
	AcquisitionValue decimal.Decimal `db:"valor_adquisicion" json:"valor_adquisicion"`
	AcquiredAt       *time.Time      `db:"fecha_adquisicion" json:"fecha_adquisicion"`
	State            EquipmentState  `db:"estado_equipo" json:"estado_equipo"`
	Condition        ConditionGrade  `db:"estado_fisico" json:"estado_fisico"`
	RegisteredAt     time.Time       `db:"fecha_registro" json:"fecha_registro"`
	UpdatedAt        time.Time       `db:"fecha_actualizacion" json:"fecha_actualizacion"`
}

type Loan struct {
	ID             int64           `db:"id_prestamo" json:"id_prestamo"`
	Code           string          `db:"codigo_prestamo" json:"codigo_prestamo"`
	EquipmentID    int64           `db:"id_equipo" json:"id_equipo"`
	RequesterID    int64           `db:"id_usuario_solicitante" json:"id_usuario_solicitante"`
	ApproverID     *int64          `db:"id_usuario_autorizador" json:"id_usuario_autorizador"`
	RequestedAt    time.Time       `db:"fecha_solicitud" json:"fecha_solicitud"`
	ScheduledStart time.Time       `db:"fecha_prestamo" json:"fecha_prestamo"`
	ScheduledEnd   time.Time       `db:"fecha_devolucion_programada" json:"fecha_devolucion_programada"`
	ReturnedAt     *time.Time      `db:"fecha_devolucion_real" json:"fecha_devolucion_real"`
	Purpose        string          `db:"proposito_prestamo" json:"proposito_prestamo"`
	Notes          *string         `db:"observaciones_prestamo" json:"observaciones_prestamo"`
	ReturnNotes    *string         `db:"observaciones_devolucion" json:"observaciones_devolucion"`
	Status         LoanStatus      `db:"estado_prestamo" json:"estado_prestamo"`
	ReturnGrade    *ConditionGrade `db:"calificacion_devolucion" json:"calificacion_devolucion"`
}

type MaintenanceType struct {
	ID             int64  `db:"id_tipo_mantenimiento" json:"id_tipo_mantenimiento"`
	Name           string `db:"nombre_tipo" json:"nombre_tipo"`
	Description    string `db:"descripcion" json:"descripcion"`
	RecurrenceDays int    `db:"frecuencia_dias" json:"frecuencia_dias"`
	Preventive     bool   `db:"es_preventivo" json:"es_preventivo"`
}

// MaintenanceRecord is immutable once written.
type MaintenanceRecord struct {
	ID              int64           `db:"id_mantenimiento" json:"id_mantenimiento"`
	EquipmentID     int64           `db:"id_equipo" json:"id_equipo"`
	TypeID          int64           `db:"id_tipo_mantenimiento" json:"id_tipo_mantenimiento"`
	PerformedAt     time.Time       `db:"fecha_mantenimiento" json:"fecha_mantenimiento"`
	TechnicianID    int64           `db:"tecnico_responsable_id" json:"tecnico_responsable_id"`
	WorkDescription string          `db:"descripcion_trabajo" json:"descripcion_trabajo"`
	Cost            decimal.Decimal `db:"costo_mantenimiento" json:"costo_mantenimiento"`
	DowntimeHours   decimal.Decimal `db:"tiempo_inactividad_horas" json:"tiempo_inactividad_horas"`
	ResultGrade     ConditionGrade  `db:"estado_post_mantenimiento" json:"estado_post_mantenimiento"`
	NextDueAt       *time.Time      `db:"proxima_fecha_mantenimiento" json:"proxima_fecha_mantenimiento"`
	CreatedAt       time.Time       `db:"fecha_registro" json:"fecha_registro"`
}

type Alert struct {
	ID              int64         `db:"id_alerta" json:"id_alerta"`
	EquipmentID     int64         `db:"id_equipo" json:"id_equipo"`
	TypeID          *int64        `db:"id_tipo_mantenimiento" json:"id_tipo_mantenimiento"`
	Kind            AlertKind     `db:"tipo_alerta" json:"tipo_alerta"`
	Description     string        `db:"descripcion_alerta" json:"descripcion_alerta"`
	RaisedAt        time.Time     `db:"fecha_alerta" json:"fecha_alerta"`
	Deadline        time.Time     `db:"fecha_limite" json:"fecha_limite"`
	Priority        AlertPriority `db:"prioridad" json:"prioridad"`
	State           AlertState    `db:"estado_alerta" json:"estado_alerta"`
	AssigneeID      *int64        `db:"asignado_a" json:"asignado_a"`
	ResolvedAt      *time.Time    `db:"fecha_resolucion" json:"fecha_resolucion"`
	ResolutionNotes *string       `db:"observaciones_resolucion" json:"observaciones_resolucion"`
}

type User struct {
	ID           int64  `db:"id_usuario" json:"id_usuario"`
	Username     string `db:"nombre_usuario" json:"nombre_usuario"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"rol" json:"rol"`
}
