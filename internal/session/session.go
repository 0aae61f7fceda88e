package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// MaxContextMessages is the default message window retained per session.
const MaxContextMessages = 20

// Session transformations are pure: every With* method returns a new value
// with lastActivity refreshed and never mutates the receiver, so each turn's
// state history stays reconstructible.

// New creates a fresh session in the given language.
func New(language lang.Language, userID string) Session {
	now := time.Now()
	return Session{
		ID:               newSessionID(),
		UserID:           userID,
		StartTime:        now,
		LastActivity:     now,
		Language:         language,
		Messages:         []Message{},
		PendingQuestions: []string{},
	}
}

// WithLanguage switches the session language.
func (s Session) WithLanguage(language lang.Language) Session {
	s.Language = language
	return s.touched()
}

// WithMessage appends a turn and trims history to maxMessages. A
// non-positive maxMessages falls back to MaxContextMessages.
func (s Session) WithMessage(role Role, content string, in intent.Intent, entities map[string][]string, maxMessages int) Session {
	if maxMessages <= 0 {
		maxMessages = MaxContextMessages
	}
	msgs := make([]Message, 0, len(s.Messages)+1)
	msgs = append(msgs, s.Messages...)
	msgs = append(msgs, Message{
		ID:        newMessageID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Intent:    in,
		Entities:  entities,
	})
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}
	s.Messages = msgs
	return s.touched()
}

// WithFarm merges non-zero fields of updates into the farm context.
func (s Session) WithFarm(updates FarmContext) Session {
	if updates.State != "" {
		s.Farm.State = updates.State
	}
	if updates.District != "" {
		s.Farm.District = updates.District
	}
	if updates.FarmSize != nil {
		s.Farm.FarmSize = updates.FarmSize
	}
	if updates.SoilType != "" {
		s.Farm.SoilType = updates.SoilType
	}
	if updates.IrrigationType != "" {
		s.Farm.IrrigationType = updates.IrrigationType
	}
	if updates.FarmingType != "" {
		s.Farm.FarmingType = updates.FarmingType
	}
	return s.touched()
}

// WithCrop merges non-zero fields of updates into the crop context.
func (s Session) WithCrop(updates CropContext) Session {
	if updates.CurrentCrop != "" {
		s.Crop.CurrentCrop = updates.CurrentCrop
	}
	if updates.CropStage != "" {
		s.Crop.CropStage = updates.CropStage
	}
	if updates.Season != "" {
		s.Crop.Season = updates.Season
	}
	if updates.SowingDate != nil {
		s.Crop.SowingDate = updates.SowingDate
	}
	if updates.Variety != "" {
		s.Crop.Variety = updates.Variety
	}
	return s.touched()
}

// WithProblem merges non-zero fields of updates into the problem context.
func (s Session) WithProblem(updates ProblemContext) Session {
	if updates.ActiveProblem != "" {
		s.Problem.ActiveProblem = updates.ActiveProblem
	}
	if updates.DiseaseDetected != "" {
		s.Problem.DiseaseDetected = updates.DiseaseDetected
	}
	if updates.DiseaseConfidence != 0 {
		s.Problem.DiseaseConfidence = updates.DiseaseConfidence
	}
	if updates.PestDetected != "" {
		s.Problem.PestDetected = updates.PestDetected
	}
	if updates.SymptomDescription != "" {
		s.Problem.SymptomDescription = updates.SymptomDescription
	}
	if updates.AffectedArea != 0 {
		s.Problem.AffectedArea = updates.AffectedArea
	}
	return s.touched()
}

// WithAwaitingInput marks the slot the next message should fill.
func (s Session) WithAwaitingInput(input AwaitingInput) Session {
	s.AwaitingInput = input
	return s.touched()
}

// WithoutAwaitingInput resets the slot-filling state.
func (s Session) WithoutAwaitingInput() Session {
	s.AwaitingInput = ""
	return s.touched()
}

// WithPendingQuestion queues a question to ask the user later.
func (s Session) WithPendingQuestion(question string) Session {
	qs := make([]string, 0, len(s.PendingQuestions)+1)
	qs = append(qs, s.PendingQuestions...)
	qs = append(qs, question)
	s.PendingQuestions = qs
	return s.touched()
}

// PopPendingQuestion removes the oldest queued question, returning the new
// session state and the question. ok is false when none are pending; the
// session is returned unchanged in that case.
func (s Session) PopPendingQuestion() (Session, string, bool) {
	if len(s.PendingQuestions) == 0 {
		return s, "", false
	}
	q := s.PendingQuestions[0]
	s.PendingQuestions = append([]string{}, s.PendingQuestions[1:]...)
	return s.touched(), q, true
}

// HasFarmSize reports whether the farm size slot is filled.
func (s Session) HasFarmSize() bool {
	return s.Farm.FarmSize != nil
}

// RecentContext renders the last count messages as "Role: content" lines.
func (s Session) RecentContext(count int) string {
	msgs := s.Messages
	if count > 0 && len(msgs) > count {
		msgs = msgs[len(msgs)-count:]
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		role := "Assistant"
		if m.Role == RoleUser {
			role = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, m.Content))
	}
	return strings.Join(lines, "\n")
}

// ContextSummary renders the known context in a single display line.
func (s Session) ContextSummary() string {
	var parts []string
	if s.Farm.State != "" {
		parts = append(parts, "Location: "+s.Farm.State)
	}
	if s.Farm.FarmSize != nil {
		parts = append(parts, fmt.Sprintf("Farm: %g %s", s.Farm.FarmSize.Value, s.Farm.FarmSize.Unit))
	}
	if s.Farm.IrrigationType != "" {
		parts = append(parts, "Irrigation: "+s.Farm.IrrigationType)
	}
	if s.Farm.FarmingType != "" {
		parts = append(parts, "Type: "+s.Farm.FarmingType)
	}
	if s.Crop.CurrentCrop != "" {
		parts = append(parts, "Crop: "+s.Crop.CurrentCrop)
	}
	if s.Crop.Season != "" {
		parts = append(parts, "Season: "+s.Crop.Season)
	}
	if s.Crop.CropStage != "" {
		parts = append(parts, "Stage: "+s.Crop.CropStage)
	}
	if s.Problem.DiseaseDetected != "" {
		parts = append(parts, "Disease: "+s.Problem.DiseaseDetected)
	}
	if len(parts) == 0 {
		return "No context yet"
	}
	return strings.Join(parts, " | ")
}

func (s Session) touched() Session {
	s.LastActivity = time.Now()
	return s
}
