// Package chat orchestrates the dialogue pipeline: classification, awaited
// slot resolution, response generation, external data augmentation, and
// session persistence.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/disease"
	"github.com/kisanconnect/kisanconnect/internal/events"
	"github.com/kisanconnect/kisanconnect/internal/external"
	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/metrics"
	"github.com/kisanconnect/kisanconnect/internal/respond"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

// Action names an external data fetch performed during a turn.
type Action string

const (
	ActionWeather Action = "weather"
	ActionMarket  Action = "market"
)

// TurnResult is what a completed chat turn returns to the caller.
type TurnResult struct {
	SessionID     string                `json:"session_id"`
	Response      string                `json:"response"`
	Intent        intent.Intent         `json:"intent"`
	Language      lang.Language         `json:"language"`
	Confidence    float64               `json:"confidence"`
	AwaitingInput session.AwaitingInput `json:"awaiting_input,omitempty"`
	Action        Action                `json:"action,omitempty"`
}

// DiseaseTurnResult is what a processed disease detection returns.
type DiseaseTurnResult struct {
	SessionID     string                `json:"session_id"`
	Response      string                `json:"response"`
	Language      lang.Language         `json:"language"`
	Label         disease.Label         `json:"label"`
	Confidence    float64               `json:"confidence"`
	AwaitingInput session.AwaitingInput `json:"awaiting_input,omitempty"`
}

// Service owns one conversation session and processes its turns strictly
// sequentially. Construct one per active session.
type Service struct {
	mu   sync.Mutex
	busy atomic.Bool

	sess       session.Session
	cfg        config.ChatConfig
	classifier *intent.Classifier
	responder  *respond.Generator
	store      *session.Store
	ext        *external.Client
	publisher  *events.Publisher
}

// NewService wraps an existing session. The publisher may be nil.
func NewService(sess session.Session, cfg config.ChatConfig, classifier *intent.Classifier, responder *respond.Generator, store *session.Store, ext *external.Client, publisher *events.Publisher) *Service {
	return &Service{
		sess:       sess,
		cfg:        cfg,
		classifier: classifier,
		responder:  responder,
		store:      store,
		ext:        ext,
		publisher:  publisher,
	}
}

// Session returns a snapshot of the current session state.
func (s *Service) Session() session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// Busy reports whether a turn is currently being processed. Callers can use
// it to queue submissions instead of blocking on ProcessMessage.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// ContextSummary renders the session context in one line.
func (s *Service) ContextSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.ContextSummary()
}

// SetLanguage overrides the session language. Persistence is best-effort,
// as for chat turns.
func (s *Service) SetLanguage(ctx context.Context, lg lang.Language) error {
	if !lg.Valid() {
		return fmt.Errorf("unsupported language %q", lg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = s.sess.WithLanguage(lg)
	if err := s.persist(ctx); err != nil {
		slog.Warn("failed to persist session", "session_id", s.sess.ID, "error", err)
	}
	return nil
}

// Reset discards the session and starts a fresh one in the same language.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.sess.ID
	s.sess = session.New(s.sess.Language, s.sess.UserID)
	if err := s.store.Delete(ctx, old); err != nil {
		slog.Warn("failed to delete old session", "session_id", old, "error", err)
	}
	if err := s.persist(ctx); err != nil {
		slog.Warn("failed to persist session", "session_id", s.sess.ID, "error", err)
	}
	return nil
}

// ProcessMessage runs one user message through the full turn pipeline and
// returns the assistant's response. Turns for the same session are
// serialized; a concurrent call blocks until the previous turn completes.
func (s *Service) ProcessMessage(ctx context.Context, text string) (TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.Store(true)
	defer s.busy.Store(false)

	res := s.classifier.Classify(text)

	// Most recently detected language wins.
	if res.Language != s.sess.Language {
		s.sess = s.sess.WithLanguage(res.Language)
	}

	// An unresolvable slot falls through to normal routing with the
	// marker left in place, so a later message can still fill it.
	if s.sess.AwaitingInput != "" {
		if result, handled := s.resolveAwaitedInput(ctx, text, res); handled {
			return result, nil
		}
	}

	// Merge extracted entities into durable context, first value per turn.
	if len(res.Entities.Crops) > 0 {
		s.sess = s.sess.WithCrop(session.CropContext{CurrentCrop: res.Entities.Crops[0]})
		if s.sess.AwaitingInput == session.AwaitCropName {
			s.sess = s.sess.WithoutAwaitingInput()
		}
	}
	if len(res.Entities.Seasons) > 0 {
		s.sess = s.sess.WithCrop(session.CropContext{Season: res.Entities.Seasons[0]})
	}
	if len(res.Entities.States) > 0 {
		s.sess = s.sess.WithFarm(session.FarmContext{State: res.Entities.States[0]})
	}

	guardrail := res.RequiresFarmSize && !s.sess.HasFarmSize()
	if guardrail {
		s.sess = s.sess.WithAwaitingInput(session.AwaitFarmSize)
		metrics.GuardrailHitsTotal.Inc()
	}

	reply := s.responder.Generate(res, s.sess)
	full := reply.Response
	if reply.FollowUp != "" && res.Intent != intent.Unknown {
		full += "\n\n❓ " + reply.FollowUp
	}

	// No rule matched anything; give the backend chat service a chance to
	// answer before falling back to the clarification template.
	if res.Intent == intent.Unknown {
		if answer := s.backendAnswer(ctx, text); answer != "" {
			full = answer
		}
	}

	var action Action
	switch {
	case res.Intent == intent.WeatherAdvice && s.sess.Farm.State != "":
		action = ActionWeather
		if section := s.weatherSection(ctx, s.sess.Farm.State); section != "" {
			full += "\n\n" + section
		}
	case res.Intent == intent.MarketSellAdvice && s.sess.Crop.CurrentCrop != "":
		action = ActionMarket
		if section := s.marketSection(ctx, s.sess.Crop.CurrentCrop); section != "" {
			full += "\n\n" + section
		}
	}

	s.sess = s.sess.WithMessage(session.RoleUser, text, res.Intent, map[string][]string{
		"crops":   res.Entities.Crops,
		"seasons": res.Entities.Seasons,
	}, s.cfg.MaxContextMessages)
	s.sess = s.sess.WithMessage(session.RoleAssistant, full, "", nil, s.cfg.MaxContextMessages)

	if err := s.persist(ctx); err != nil {
		slog.Warn("failed to persist session", "session_id", s.sess.ID, "error", err)
	}

	metrics.ChatTurnsTotal.WithLabelValues(string(res.Intent), string(res.Language)).Inc()
	s.publishTurn(ctx, res, guardrail)

	return TurnResult{
		SessionID:     s.sess.ID,
		Response:      full,
		Intent:        res.Intent,
		Language:      res.Language,
		Confidence:    res.Confidence,
		AwaitingInput: s.sess.AwaitingInput,
		Action:        action,
	}, nil
}

// resolveAwaitedInput tries the message against the pending slot. A
// successful fill short-circuits normal routing and resumes the deferred
// intent. Only the farm size slot is auto-resolvable today; other slots
// fall through and rely on entity extraction in normal routing.
func (s *Service) resolveAwaitedInput(ctx context.Context, text string, res intent.Result) (TurnResult, bool) {
	if s.sess.AwaitingInput != session.AwaitFarmSize {
		return TurnResult{}, false
	}

	size := session.ParseFarmSize(text)
	if size == nil {
		return TurnResult{}, false
	}

	s.sess = s.sess.WithFarm(session.FarmContext{FarmSize: size})
	s.sess = s.sess.WithoutAwaitingInput()

	// Resume the deferred fertilizer flow, now with the size known.
	deferred := res
	deferred.Intent = intent.FertilizerHelp
	reply := s.responder.Generate(deferred, s.sess)

	full := acknowledgment(res.Language, *size) + "\n\n" + reply.Response
	if reply.FollowUp != "" {
		full += "\n\n❓ " + reply.FollowUp
	}

	s.sess = s.sess.WithMessage(session.RoleUser, text, "", nil, s.cfg.MaxContextMessages)
	s.sess = s.sess.WithMessage(session.RoleAssistant, full, "", nil, s.cfg.MaxContextMessages)

	if err := s.persist(ctx); err != nil {
		slog.Warn("failed to persist session", "session_id", s.sess.ID, "error", err)
	}

	metrics.ChatTurnsTotal.WithLabelValues(string(intent.FertilizerHelp), string(res.Language)).Inc()
	s.publishTurn(ctx, deferred, false)

	return TurnResult{
		SessionID:     s.sess.ID,
		Response:      full,
		Intent:        intent.FertilizerHelp,
		Language:      res.Language,
		Confidence:    res.Confidence,
		AwaitingInput: s.sess.AwaitingInput,
	}, true
}

// ProcessDiseaseDetection continues the chat from an external disease
// detection result, bypassing text classification entirely.
func (s *Service) ProcessDiseaseDetection(ctx context.Context, result external.DiseaseDetectionResult) (DiseaseTurnResult, error) {
	return s.ProcessModelResult(ctx, result.Disease, result.Confidence)
}

// ProcessModelResult interprets a raw model label and produces the
// label-specific advisory.
func (s *Service) ProcessModelResult(ctx context.Context, rawLabel string, confidence float64) (DiseaseTurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.Store(true)
	defer s.busy.Store(false)

	result := disease.ModelResult{
		Label:         disease.ParseModelLabel(rawLabel),
		Confidence:    confidence,
		RawPrediction: rawLabel,
	}

	s.sess = s.sess.WithProblem(session.ProblemContext{
		DiseaseDetected:   string(result.Label),
		DiseaseConfidence: result.Confidence,
	})

	advice := disease.Generate(result, s.sess, s.sess.Language)

	full := advice.Response
	if advice.FollowUp != "" {
		full += "\n\n❓ " + advice.FollowUp
	}

	switch advice.NeededSlot {
	case disease.NeedFarmSize:
		s.sess = s.sess.WithAwaitingInput(session.AwaitFarmSize)
	case disease.NeedCropType:
		s.sess = s.sess.WithAwaitingInput(session.AwaitCropName)
	}

	s.sess = s.sess.WithMessage(session.RoleAssistant, full, intent.DiseaseHelp, nil, s.cfg.MaxContextMessages)

	if err := s.persist(ctx); err != nil {
		slog.Warn("failed to persist session", "session_id", s.sess.ID, "error", err)
	}

	metrics.DiseaseResultsTotal.WithLabelValues(string(result.Label)).Inc()
	if err := s.publisher.PublishDiseaseEvent(ctx, events.DiseaseEvent{
		SessionID:  s.sess.ID,
		Label:      string(result.Label),
		Confidence: result.Confidence,
		NeededSlot: string(advice.NeededSlot),
		Timestamp:  time.Now(),
	}); err != nil {
		slog.Warn("failed to publish disease event", "error", err)
	}

	return DiseaseTurnResult{
		SessionID:     s.sess.ID,
		Response:      full,
		Language:      s.sess.Language,
		Label:         result.Label,
		Confidence:    result.Confidence,
		AwaitingInput: s.sess.AwaitingInput,
	}, nil
}

func (s *Service) weatherSection(ctx context.Context, location string) string {
	weather, err := s.ext.FetchWeather(ctx, location)
	if err != nil {
		slog.Warn("omitting weather section", "location", location, "error", err)
		return ""
	}
	return external.FormatWeather(weather, s.sess.Language)
}

func (s *Service) backendAnswer(ctx context.Context, text string) string {
	bc := external.BackendContext{
		Crop:   s.sess.Crop.CurrentCrop,
		Season: s.sess.Crop.Season,
		State:  s.sess.Farm.State,
	}
	if s.sess.Farm.FarmSize != nil {
		bc.FarmSize = s.sess.Farm.FarmSize.Value
	}

	// Recent turns give the backend enough context to answer in-thread.
	message := text
	if transcript := s.sess.RecentContext(4); transcript != "" {
		message = transcript + "\nUser: " + text
	}

	resp, err := s.ext.SendChatMessage(ctx, message, s.sess.ID, bc)
	if err != nil {
		slog.Debug("no backend text available", "session_id", s.sess.ID, "error", err)
		return ""
	}
	return resp.Message
}

func (s *Service) marketSection(ctx context.Context, commodity string) string {
	prices, err := s.ext.FetchMandiPrices(ctx, commodity, s.sess.Farm.State, "")
	if err != nil {
		slog.Warn("omitting market section", "commodity", commodity, "error", err)
		return ""
	}
	return external.FormatMandiPrices(prices, s.sess.Language)
}

func (s *Service) persist(ctx context.Context) error {
	return s.store.Save(ctx, s.sess)
}

func (s *Service) publishTurn(ctx context.Context, res intent.Result, guardrail bool) {
	err := s.publisher.PublishTurnEvent(ctx, events.TurnEvent{
		SessionID:  s.sess.ID,
		Intent:     string(res.Intent),
		Language:   string(res.Language),
		Confidence: res.Confidence,
		Guardrail:  guardrail,
		Timestamp:  time.Now(),
	})
	if err != nil {
		slog.Warn("failed to publish turn event", "error", err)
	}
}

func acknowledgment(lg lang.Language, size session.FarmSize) string {
	value := strconv.FormatFloat(size.Value, 'f', -1, 64)
	switch lg {
	case lang.Hindi:
		return fmt.Sprintf("✅ समझ गया - %s %s", value, size.Unit)
	case lang.Marathi:
		return fmt.Sprintf("✅ समजले - %s %s", value, size.Unit)
	default:
		return fmt.Sprintf("✅ Got it - %s %s", value, size.Unit)
	}
}
