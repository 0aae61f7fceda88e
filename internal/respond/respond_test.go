package respond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/knowledge"
	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	kb, err := knowledge.Load()
	require.NoError(t, err)
	g, err := New(kb)
	require.NoError(t, err)
	return g
}

func TestGenerateGreeting(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.Hindi, "")

	reply := g.Generate(intent.Result{Intent: intent.Greeting, Language: lang.Hindi}, sess)

	assert.Contains(t, reply.Response, "नमस्ते")
	assert.Contains(t, reply.FollowUp, "फसल")
}

func TestGenerateCropInfo(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "")

	reply := g.Generate(intent.Result{
		Intent:   intent.CropInfo,
		Language: lang.English,
		Entities: intent.Entities{Crops: []string{"wheat"}},
	}, sess)

	assert.Contains(t, reply.Response, "Wheat")
	assert.Contains(t, reply.Response, "Sowing:")
	assert.Contains(t, reply.Response, "10-25°C")
}

func TestGenerateCropInfoUnknownCrop(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "")

	reply := g.Generate(intent.Result{
		Intent:   intent.CropInfo,
		Language: lang.English,
		Entities: intent.Entities{Crops: []string{"dragonfruit"}},
	}, sess)

	assert.Contains(t, reply.Response, "not available")
}

func TestGenerateCropInfoNoCropAsks(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.Marathi, "")

	reply := g.Generate(intent.Result{Intent: intent.CropInfo, Language: lang.Marathi}, sess)

	assert.Contains(t, reply.Response, "कोणत्या पिकाबद्दल")
}

func TestGenerateCropInfoFromSessionCrop(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "").WithCrop(session.CropContext{CurrentCrop: "rice"})

	reply := g.Generate(intent.Result{Intent: intent.CropInfo, Language: lang.English}, sess)

	assert.Contains(t, reply.Response, "Rice")
}

func TestFertilizerGuardrailWithoutFarmSize(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "")

	reply := g.Generate(intent.Result{
		Intent:           intent.FertilizerHelp,
		Language:         lang.English,
		RequiresFarmSize: true,
	}, sess)

	assert.Contains(t, reply.Response, "farm size")
	// No numeric dosage escapes the guardrail.
	assert.NotContains(t, reply.Response, "kg")
}

func TestFertilizerDosageScaledToHectares(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "").
		WithCrop(session.CropContext{CurrentCrop: "cotton"}).
		WithFarm(session.FarmContext{FarmSize: &session.FarmSize{Value: 3, Unit: session.UnitAcre}})

	reply := g.Generate(intent.Result{
		Intent:           intent.FertilizerHelp,
		Language:         lang.English,
		RequiresFarmSize: true,
	}, sess)

	// 3 acres = 1.2141 ha; cotton N 100/ha -> 121, P 50/ha -> 61, K 50/ha -> 61.
	assert.Contains(t, reply.Response, "Nitrogen (N): 121 kg")
	assert.Contains(t, reply.Response, "Phosphorus (P): 61 kg")
	assert.Contains(t, reply.Response, "Potash (K): 61 kg")
}

func TestFertilizerGeneralAdviceWithoutCrop(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.Hindi, "").
		WithFarm(session.FarmContext{FarmSize: &session.FarmSize{Value: 2, Unit: session.UnitAcre}})

	reply := g.Generate(intent.Result{Intent: intent.FertilizerHelp, Language: lang.Hindi}, sess)

	assert.Contains(t, reply.Response, "उर्वरक मार्गदर्शन")
}

func TestGenerateSchemeIncludesDisclaimer(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "")

	reply := g.Generate(intent.Result{Intent: intent.GovernmentScheme, Language: lang.English}, sess)

	assert.Contains(t, reply.Response, "PM-KISAN")
	assert.Contains(t, reply.Response, "Verify from official sources")
}

func TestGenerateDiseaseWithDetection(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.Hindi, "").
		WithProblem(session.ProblemContext{DiseaseDetected: "Fungal_Spot"})

	reply := g.Generate(intent.Result{Intent: intent.DiseaseHelp, Language: lang.Hindi}, sess)

	assert.Contains(t, reply.Response, "Fungal_Spot")
	assert.Contains(t, reply.Response, "फफूंदनाशक")
}

func TestGenerateUnknownClarifies(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.Marathi, "")

	reply := g.Generate(intent.Result{Intent: intent.Unknown, Language: lang.Marathi}, sess)

	assert.Contains(t, reply.Response, "स्पष्ट करा")
	assert.NotEmpty(t, reply.FollowUp)
}

func TestResponseLineBudget(t *testing.T) {
	g := newGenerator(t)
	sess := session.New(lang.English, "")

	for _, in := range intent.Intents() {
		for _, lg := range lang.Languages() {
			reply := g.Generate(intent.Result{Intent: in, Language: lg}, sess)
			count := len(strings.Split(reply.Response, "\n"))
			assert.LessOrEqualf(t, count, MaxResponseLines, "intent %s lang %s", in, lg)
			assert.NotEmptyf(t, reply.FollowUp, "intent %s lang %s", in, lg)
		}
	}
}
