package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/disease"
	"github.com/kisanconnect/kisanconnect/internal/external"
	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/knowledge"
	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/respond"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{
		MaxContextMessages: 20,
		SessionTTL:         24 * time.Hour,
		ConfidenceDivisor:  5,
	}
}

func newTestDeps(t *testing.T) (*intent.Classifier, *respond.Generator, *session.Store, *external.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	kb, err := knowledge.Load()
	require.NoError(t, err)
	responder, err := respond.New(kb)
	require.NoError(t, err)

	classifier := intent.NewClassifier(5)
	store := session.NewStore(client, 24*time.Hour)
	ext := external.NewClient(config.ExternalConfig{OfflineMode: true})

	return classifier, responder, store, ext
}

func newTestService(t *testing.T, lg lang.Language) *Service {
	t.Helper()
	classifier, responder, store, ext := newTestDeps(t)
	return NewService(session.New(lg, ""), testChatConfig(), classifier, responder, store, ext, nil)
}

func TestFertilizerGuardrailThenResume(t *testing.T) {
	svc := newTestService(t, lang.English)
	ctx := context.Background()

	first, err := svc.ProcessMessage(ctx, "Urea dosage for cotton?")
	require.NoError(t, err)

	assert.Equal(t, intent.FertilizerHelp, first.Intent)
	assert.Equal(t, session.AwaitFarmSize, first.AwaitingInput)
	assert.Contains(t, first.Response, "For accurate chemical dosage")
	assert.NotContains(t, first.Response, "Nitrogen (N)")

	second, err := svc.ProcessMessage(ctx, "3 acres")
	require.NoError(t, err)

	assert.Equal(t, intent.FertilizerHelp, second.Intent)
	assert.Empty(t, second.AwaitingInput)
	assert.Contains(t, second.Response, "✅ Got it - 3 acre")
	assert.Contains(t, second.Response, "Nitrogen (N): 121 kg")

	sess := svc.Session()
	require.NotNil(t, sess.Farm.FarmSize)
	assert.Equal(t, 3.0, sess.Farm.FarmSize.Value)
	assert.Equal(t, session.UnitAcre, sess.Farm.FarmSize.Unit)
	assert.Equal(t, "cotton", sess.Crop.CurrentCrop)
}

func TestAwaitedSlotUnparsableFallsThrough(t *testing.T) {
	svc := newTestService(t, lang.English)
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, "Urea dosage for cotton?")
	require.NoError(t, err)

	reply, err := svc.ProcessMessage(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, intent.Greeting, reply.Intent)
	// The slot stays pending so a later message can still fill it.
	assert.Equal(t, session.AwaitFarmSize, reply.AwaitingInput)
	assert.Nil(t, svc.Session().Farm.FarmSize)
}

func TestWeatherAugmentation(t *testing.T) {
	svc := newTestService(t, lang.English)

	reply, err := svc.ProcessMessage(context.Background(), "How is the weather in Maharashtra?")
	require.NoError(t, err)

	assert.Equal(t, intent.WeatherAdvice, reply.Intent)
	assert.Equal(t, ActionWeather, reply.Action)
	assert.Contains(t, reply.Response, "Temperature: 28°C")
	assert.Equal(t, "maharashtra", svc.Session().Farm.State)
}

func TestMarketAugmentation(t *testing.T) {
	svc := newTestService(t, lang.English)

	reply, err := svc.ProcessMessage(context.Background(), "What is the mandi price of wheat?")
	require.NoError(t, err)

	assert.Equal(t, intent.MarketSellAdvice, reply.Intent)
	assert.Equal(t, ActionMarket, reply.Action)
	assert.Contains(t, reply.Response, "Indore")
	assert.Contains(t, reply.Response, "₹2200")
}

func TestLanguageMostRecentWins(t *testing.T) {
	svc := newTestService(t, lang.English)
	ctx := context.Background()

	reply, err := svc.ProcessMessage(ctx, "नमस्ते")
	require.NoError(t, err)

	assert.Equal(t, lang.Hindi, reply.Language)
	assert.Equal(t, lang.Hindi, svc.Session().Language)
}

func TestUnknownIntentSkipsFollowUp(t *testing.T) {
	svc := newTestService(t, lang.English)

	reply, err := svc.ProcessMessage(context.Background(), "xyzzy plugh")
	require.NoError(t, err)

	assert.Equal(t, intent.Unknown, reply.Intent)
	assert.NotContains(t, reply.Response, "❓")
}

func TestUnknownIntentBackendFallback(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(external.BackendResponse{Success: true, Message: "Try mixed cropping with pigeon pea."})
	}))
	t.Cleanup(backend.Close)

	classifier, responder, store, _ := newTestDeps(t)
	ext := external.NewClient(config.ExternalConfig{BackendURL: backend.URL, Timeout: time.Second})
	svc := NewService(session.New(lang.English, ""), testChatConfig(), classifier, responder, store, ext, nil)

	reply, err := svc.ProcessMessage(context.Background(), "xyzzy plugh")
	require.NoError(t, err)

	assert.Equal(t, intent.Unknown, reply.Intent)
	assert.Equal(t, "Try mixed cropping with pigeon pea.", reply.Response)
}

func TestTurnsAppendToSessionLog(t *testing.T) {
	svc := newTestService(t, lang.English)
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, "hello")
	require.NoError(t, err)

	sess := svc.Session()
	require.Len(t, sess.Messages, 2)
	assert.Equal(t, session.RoleUser, sess.Messages[0].Role)
	assert.Equal(t, "hello", sess.Messages[0].Content)
	assert.Equal(t, session.RoleAssistant, sess.Messages[1].Role)
}

func TestDiseaseHealthyHindi(t *testing.T) {
	svc := newTestService(t, lang.Hindi)

	reply, err := svc.ProcessModelResult(context.Background(), "Healthy - 92% confidence", 0.92)
	require.NoError(t, err)

	assert.Equal(t, disease.Healthy, reply.Label)
	assert.Contains(t, reply.Response, "फसल स्वस्थ है")
	assert.Empty(t, reply.AwaitingInput)

	sess := svc.Session()
	assert.Equal(t, string(disease.Healthy), sess.Problem.DiseaseDetected)
	assert.InDelta(t, 0.92, sess.Problem.DiseaseConfidence, 1e-9)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, session.RoleAssistant, sess.Messages[0].Role)
}

func TestDiseaseNitrogenAsksForFarmSize(t *testing.T) {
	svc := newTestService(t, lang.English)
	ctx := context.Background()

	reply, err := svc.ProcessModelResult(ctx, "Nitrogen_Deficiency", 0.87)
	require.NoError(t, err)

	assert.Equal(t, disease.NitrogenDeficiency, reply.Label)
	assert.Equal(t, session.AwaitFarmSize, reply.AwaitingInput)

	// The next sized message fills the slot and clears the marker.
	resumed, err := svc.ProcessMessage(ctx, "2 acre")
	require.NoError(t, err)

	assert.Empty(t, resumed.AwaitingInput)
	assert.Contains(t, resumed.Response, "✅ Got it - 2 acre")
	require.NotNil(t, svc.Session().Farm.FarmSize)
	assert.Equal(t, 2.0, svc.Session().Farm.FarmSize.Value)
}

func TestProcessDiseaseDetection(t *testing.T) {
	svc := newTestService(t, lang.English)

	reply, err := svc.ProcessDiseaseDetection(context.Background(), external.DiseaseDetectionResult{
		Disease:    "Nitrogen Deficiency detected",
		Confidence: 0.87,
	})
	require.NoError(t, err)

	assert.Equal(t, disease.NitrogenDeficiency, reply.Label)
	assert.Equal(t, 0.87, reply.Confidence)
	assert.Equal(t, session.AwaitFarmSize, reply.AwaitingInput)
	assert.NotEmpty(t, reply.Response)

	// The detection turn lands in the conversation log as an assistant
	// message only.
	sess := svc.Session()
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, session.RoleAssistant, sess.Messages[0].Role)
}

func TestDiseaseFungalAsksForCrop(t *testing.T) {
	svc := newTestService(t, lang.English)

	reply, err := svc.ProcessModelResult(context.Background(), "Fungal_Spot", 0.8)
	require.NoError(t, err)

	assert.Equal(t, disease.FungalSpot, reply.Label)
	assert.Equal(t, session.AwaitCropName, reply.AwaitingInput)
}

func TestResetStartsFreshSession(t *testing.T) {
	svc := newTestService(t, lang.Marathi)
	ctx := context.Background()

	// A Marathi turn keeps the session language mr; an English one would
	// flip it first (most recent detection wins) and Reset would keep en.
	_, err := svc.ProcessMessage(ctx, "शेती माहिती हवी आहे")
	require.NoError(t, err)
	oldID := svc.Session().ID

	require.NoError(t, svc.Reset(ctx))

	sess := svc.Session()
	assert.NotEqual(t, oldID, sess.ID)
	assert.Equal(t, lang.Marathi, sess.Language)
	assert.Empty(t, sess.Messages)
}

func TestBusyClearsAfterTurn(t *testing.T) {
	svc := newTestService(t, lang.English)

	_, err := svc.ProcessMessage(context.Background(), "hello")
	require.NoError(t, err)

	assert.False(t, svc.Busy())
}
