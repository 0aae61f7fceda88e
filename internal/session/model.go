package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// AwaitingInput marks which slot the next user message should fill.
type AwaitingInput string

const (
	AwaitFarmSize       AwaitingInput = "farm_size"
	AwaitCropName       AwaitingInput = "crop_name"
	AwaitLocation       AwaitingInput = "location"
	AwaitProblemDetails AwaitingInput = "problem_details"
	AwaitConfirmation   AwaitingInput = "confirmation"
)

// Unit is a land area unit as farmers state it.
type Unit string

const (
	UnitAcre    Unit = "acre"
	UnitHectare Unit = "hectare"
	UnitBigha   Unit = "bigha"
	UnitGuntha  Unit = "guntha"
)

// FarmSize is an area with its stated unit.
type FarmSize struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// FarmContext accumulates what is known about the user's farm.
type FarmContext struct {
	State          string    `json:"state,omitempty"`
	District       string    `json:"district,omitempty"`
	FarmSize       *FarmSize `json:"farm_size,omitempty"`
	SoilType       string    `json:"soil_type,omitempty"`
	IrrigationType string    `json:"irrigation_type,omitempty"`
	FarmingType    string    `json:"farming_type,omitempty"`
}

// CropContext accumulates what is known about the current crop.
type CropContext struct {
	CurrentCrop string     `json:"current_crop,omitempty"`
	CropStage   string     `json:"crop_stage,omitempty"`
	Season      string     `json:"season,omitempty"`
	SowingDate  *time.Time `json:"sowing_date,omitempty"`
	Variety     string     `json:"variety,omitempty"`
}

// ProblemContext tracks the active problem, including disease model output.
type ProblemContext struct {
	ActiveProblem      string  `json:"active_problem,omitempty"`
	DiseaseDetected    string  `json:"disease_detected,omitempty"`
	DiseaseConfidence  float64 `json:"disease_confidence,omitempty"`
	PestDetected       string  `json:"pest_detected,omitempty"`
	SymptomDescription string  `json:"symptom_description,omitempty"`
	AffectedArea       float64 `json:"affected_area,omitempty"`
}

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	ID        string              `json:"id"`
	Role      Role                `json:"role"`
	Content   string              `json:"content"`
	Timestamp time.Time           `json:"timestamp"`
	Intent    intent.Intent       `json:"intent,omitempty"`
	Entities  map[string][]string `json:"entities,omitempty"`
}

// Session is the full conversation state persisted between turns.
type Session struct {
	ID               string          `json:"session_id"`
	UserID           string          `json:"user_id,omitempty"`
	StartTime        time.Time       `json:"start_time"`
	LastActivity     time.Time       `json:"last_activity"`
	Language         lang.Language   `json:"language"`
	Farm             FarmContext     `json:"farm"`
	Crop             CropContext     `json:"crop"`
	Problem          ProblemContext  `json:"problem"`
	Messages         []Message       `json:"messages"`
	PendingQuestions []string        `json:"pending_questions"`
	AwaitingInput    AwaitingInput   `json:"awaiting_input,omitempty"`
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

func newSessionID() string {
	return fmt.Sprintf("kc_%d_%s", time.Now().UnixMilli(), randomSuffix(9))
}

func newMessageID() string {
	return fmt.Sprintf("msg_%d_%s", time.Now().UnixMilli(), randomSuffix(5))
}
