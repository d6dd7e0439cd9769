package api

import (
	"encoding/json"
	"time"
)

// User is the account record returned by the auth endpoints.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CursoActual string    `json:"curso_actual,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// Materia is a school subject.
type Materia struct {
	ID          int64     `json:"id"`
	Codigo      string    `json:"codigo"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Color       string    `json:"color"` // hex, e.g. #3B82F6
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Curso is a school grade with its subjects.
type Curso struct {
	ID             int64     `json:"id"`
	Codigo         string    `json:"codigo"`
	Nombre         string    `json:"nombre"`
	NivelEducativo string    `json:"nivel_educativo"`
	Descripcion    string    `json:"descripcion"`
	Activo         bool      `json:"activo"`
	Materias       []Materia `json:"materias,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// ProfileData holds the profile sub-objects as raw JSON keyed by their
// top-level name, so keys the client never touches are sent back exactly
// as they were received.
type ProfileData map[string]json.RawMessage

// StudentProfile is the learner's profile record.
type StudentProfile struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	Edad        *int        `json:"edad,omitempty"`
	CursoActual string      `json:"curso_actual,omitempty"`
	ProfileData ProfileData `json:"profile_data"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateProfileRequest is the body of POST /api/profiles.
type CreateProfileRequest struct {
	UserID      int64       `json:"user_id" validate:"required,gt=0"`
	Edad        *int        `json:"edad,omitempty" validate:"omitempty,gte=5,lte=100"`
	CursoActual string      `json:"curso_actual,omitempty"`
	ProfileData ProfileData `json:"profile_data"`
}

// UpdateProfileRequest is the body of PATCH /api/profiles/{userId}. A
// present ProfileData replaces the stored one whole.
type UpdateProfileRequest struct {
	Edad        *int        `json:"edad,omitempty" validate:"omitempty,gte=5,lte=100"`
	CursoActual string      `json:"curso_actual,omitempty"`
	ProfileData ProfileData `json:"profile_data,omitempty"`
}

// Question is one backend-served question of a diagnostic or practice
// session. QuestionData's shape depends on Tipo.
type Question struct {
	ID                 int64           `json:"id"`
	OABloomObjectiveID int64           `json:"oa_bloom_objective_id"`
	Tipo               string          `json:"tipo"`
	QuestionData       json.RawMessage `json:"question_data"`
	QuestionNumber     int             `json:"question_number"`
	TotalQuestions     int             `json:"total_questions"`
	CurrentBloomLevel  int             `json:"current_bloom_level"`
}

// AnswerRequest submits one answer. UserAnswer is encoded per question
// type: {"selected": v}, {"answer": bool} or {"blanks": {"1": "..."}}.
type AnswerRequest struct {
	QuestionID     int64           `json:"question_id" validate:"required,gt=0"`
	UserAnswer     json.RawMessage `json:"user_answer" validate:"required"`
	TiempoSegundos *int            `json:"tiempo_segundos,omitempty" validate:"omitempty,gte=0"`
}

// DiagnosticSession is a server-side diagnostic attempt for one subject.
type DiagnosticSession struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"user_id"`
	MateriaID          int64           `json:"materia_id"`
	NumeroIntento      int             `json:"numero_intento"`
	Estado             string          `json:"estado"`
	Estrategia         json.RawMessage `json:"estrategia,omitempty"`
	PreguntasTotales   int             `json:"preguntas_totales"`
	PreguntasCorrectas int             `json:"preguntas_correctas"`
	StartedAt          time.Time       `json:"started_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
}

// DiagnosticAnswer is the backend's verdict on a diagnostic answer.
type DiagnosticAnswer struct {
	IsCorrect     bool    `json:"is_correct"`
	Score         float64 `json:"score"`
	AnswerID      int64   `json:"answer_id"`
	NewBloomLevel int     `json:"new_bloom_level"`
}

// DiagnosticCompletion is returned when a diagnostic session is closed.
type DiagnosticCompletion struct {
	Message           string            `json:"message"`
	Session           DiagnosticSession `json:"session"`
	AverageBloomLevel float64           `json:"average_bloom_level"`
}

// OASummary is the short form of a learning objective embedded in results.
type OASummary struct {
	ID          int64  `json:"id"`
	Codigo      string `json:"codigo"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// DiagnosticResult is the mastered Bloom level for one objective.
type DiagnosticResult struct {
	ID                   int64      `json:"id"`
	SessionID            int64      `json:"session_id"`
	OAID                 int64      `json:"oa_id"`
	NivelBloomDominado   int        `json:"nivel_bloom_dominado"`
	NivelBloomNombre     string     `json:"nivel_bloom_nombre"`
	PreguntasRespondidas int        `json:"preguntas_respondidas"`
	PreguntasCorrectas   int        `json:"preguntas_correctas"`
	PorcentajeAciertos   float64    `json:"porcentaje_aciertos"`
	Recomendacion        string     `json:"recomendacion"`
	OA                   *OASummary `json:"oa,omitempty"`
}

// PracticeSession is a server-side practice run on one Bloom objective.
type PracticeSession struct {
	ID                   int64           `json:"id"`
	UserID               int64           `json:"user_id"`
	OAID                 int64           `json:"oa_id"`
	OABloomObjectiveID   int64           `json:"oa_bloom_objective_id"`
	BloomLevelInicial    int             `json:"bloom_level_inicial"`
	BloomLevelFinal      *int            `json:"bloom_level_final,omitempty"`
	NumeroPreguntas      int             `json:"numero_preguntas"`
	PreguntasRespondidas int             `json:"preguntas_respondidas"`
	PreguntasCorrectas   int             `json:"preguntas_correctas"`
	Estado               string          `json:"estado"`
	Estrategia           json.RawMessage `json:"estrategia,omitempty"`
	Resultado            json.RawMessage `json:"resultado,omitempty"`
	StartedAt            time.Time       `json:"started_at"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
}

// Practice session states.
const (
	PracticeInProgress = "en_progreso"
	PracticeCompleted  = "completado"
)

// StartPracticeRequest is the body of POST /api/practice-sessions.
type StartPracticeRequest struct {
	OAID               int64 `json:"oa_id" validate:"required,gt=0"`
	OABloomObjectiveID int64 `json:"oa_bloom_objective_id" validate:"required,gt=0"`
	NumeroPreguntas    int   `json:"numero_preguntas" validate:"gte=1,lte=50"`
}

// DefaultPracticeQuestions is the question count used when none is given.
const DefaultPracticeQuestions = 10

// PracticeFilter narrows ListPracticeSessions. Zero fields are omitted.
type PracticeFilter struct {
	OAID   int64
	Estado string
}

// PracticeAnswer is the backend's verdict on a practice answer.
type PracticeAnswer struct {
	IsCorrect            bool    `json:"is_correct"`
	Score                float64 `json:"score"`
	NewBloomLevel        int     `json:"new_bloom_level"`
	PreguntasRespondidas int     `json:"preguntas_respondidas"`
	TotalPreguntas       int     `json:"total_preguntas"`
	IsComplete           bool    `json:"is_complete"`
}

// PracticeOutcome summarises a completed practice session.
type PracticeOutcome struct {
	PorcentajeAciertos float64        `json:"porcentaje_aciertos"`
	PreguntasTotales   int            `json:"preguntas_totales"`
	PreguntasCorrectas int            `json:"preguntas_correctas"`
	AciertosPorNivel   map[string]int `json:"aciertos_por_nivel"`
	FallosPorNivel     map[string]int `json:"fallos_por_nivel"`
	PatronRespuestas   []string       `json:"patron_respuestas"`
}

// PracticeResult is returned when a practice session is closed.
type PracticeResult struct {
	Session           PracticeSession `json:"session"`
	BloomLevelInicial int             `json:"bloom_level_inicial"`
	BloomLevelFinal   int             `json:"bloom_level_final"`
	CambioNivel       int             `json:"cambio_nivel"`
	Resultado         PracticeOutcome `json:"resultado"`
}

// OABloomObjective is one Bloom-level objective of a learning objective.
type OABloomObjective struct {
	ID                    int64    `json:"id"`
	OAID                  int64    `json:"oa_id"`
	BloomLevelID          int      `json:"bloom_level_id"`
	ObjetivoEspecifico    string   `json:"objetivo_especifico"`
	IndicadoresLogro      []string `json:"indicadores_logro"`
	TipoActividadSugerida string   `json:"tipo_actividad_sugerida"`
	ComplejidadEstimada   int      `json:"complejidad_estimada"`
}

// ObjetivoAprendizaje is a curriculum learning objective (OA).
type ObjetivoAprendizaje struct {
	ID              int64              `json:"id"`
	Codigo          string             `json:"codigo"`
	Titulo          string             `json:"titulo"`
	Descripcion     string             `json:"descripcion"`
	MateriaID       int64              `json:"materia_id,omitempty"`
	Activo          bool               `json:"activo"`
	BloomObjectives []OABloomObjective `json:"bloom_objectives,omitempty"`
}

// Learning plan and component states.
const (
	StatePending    = "pendiente"
	StateGenerating = "generando"
	StateGenerated  = "generado"
	StateError      = "error"
)

// LearningPlanComponent is one step of a learning plan.
type LearningPlanComponent struct {
	ID                    int64           `json:"id"`
	LearningPlanID        int64           `json:"learning_plan_id"`
	Orden                 int             `json:"orden"`
	TipoComponente        string          `json:"tipo_componente"`
	ObjetivoEspecifico    string          `json:"objetivo_especifico"`
	TiempoEstimadoMinutos int             `json:"tiempo_estimado_minutos"`
	Estado                string          `json:"estado"`
	ContenidoProps        json.RawMessage `json:"contenido_props,omitempty"`
	ErrorMensaje          string          `json:"error_mensaje,omitempty"`
}

// LearningPlan is an adaptive plan generated for a Bloom objective.
type LearningPlan struct {
	ID                    int64                   `json:"id"`
	UserID                int64                   `json:"user_id"`
	OABloomObjectiveID    int64                   `json:"oa_bloom_objective_id"`
	Titulo                string                  `json:"titulo"`
	Descripcion           string                  `json:"descripcion"`
	TiempoEstimadoMinutos int                     `json:"tiempo_estimado_minutos"`
	Estado                string                  `json:"estado"`
	ErrorMensaje          string                  `json:"error_mensaje,omitempty"`
	Components            []LearningPlanComponent `json:"components,omitempty"`
	Completado            bool                    `json:"completado"`
	FechaInicio           *time.Time              `json:"fecha_inicio,omitempty"`
	FechaCompletado       *time.Time              `json:"fecha_completado,omitempty"`
	ProgresoActual        int                     `json:"progreso_actual"`
	TotalSlides           int                     `json:"total_slides"`
	CreatedAt             time.Time               `json:"created_at,omitempty"`
	UpdatedAt             time.Time               `json:"updated_at,omitempty"`
}

// CustomizationItem is an avatar or frame from the catalog.
type CustomizationItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Rarity        string `json:"rarity"`
	Tier          int    `json:"tier"`
	ImageURL      string `json:"image_url"`
	Description   string `json:"description"`
	BaseCoinsCost int    `json:"base_coins_cost"`
	IsDefault     bool   `json:"is_default"`
	IsOwned       bool   `json:"is_owned"`
	CanPurchase   bool   `json:"can_purchase"`
	IsEquipped    bool   `json:"is_equipped"`
	Status        string `json:"status"` // owned, locked or can_purchase
}

// UserEquipment is what the user currently wears.
type UserEquipment struct {
	UserID           int64              `json:"user_id"`
	EquippedAvatarID *int64             `json:"equipped_avatar_id"`
	EquippedFrameID  *int64             `json:"equipped_frame_id"`
	EquippedAvatar   *CustomizationItem `json:"equipped_avatar,omitempty"`
	EquippedFrame    *CustomizationItem `json:"equipped_frame,omitempty"`
}

// InventoryItem is an item the user owns.
type InventoryItem struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	ItemID     int64             `json:"item_id"`
	Item       CustomizationItem `json:"item"`
	UnlockedAt time.Time         `json:"unlocked_at,omitempty"`
}

// Equipment slots.
const (
	SlotAvatar = "avatar"
	SlotFrame  = "frame"
)

// EquipRequest is the body of POST /api/customization/equip.
type EquipRequest struct {
	ItemID int64  `json:"item_id" validate:"required,gt=0"`
	Slot   string `json:"slot" validate:"required,oneof=avatar frame"`
}

// GamificationStats holds the user's progression counters.
type GamificationStats struct {
	UserID           int64  `json:"user_id"`
	Level            int    `json:"level"`
	XP               int    `json:"xp"`
	XPForNextLevel   int    `json:"xp_for_next_level"`
	XPProgress       int    `json:"xp_progress"`
	Coins            int    `json:"coins"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	LastActivityDate string `json:"last_activity_date,omitempty"`
}

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	XP     int    `json:"xp"`
}

// Leaderboard is the top of the XP ranking plus the caller's position.
type Leaderboard struct {
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	UserPosition *LeaderboardEntry  `json:"user_position,omitempty"`
}

// Audio is synthesized speech.
type Audio struct {
	Data        []byte
	ContentType string
}
