// Package respond turns a classified utterance plus conversation state into
// localized, bounded advisory text.
package respond

import (
	"fmt"
	"math"
	"strings"

	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/knowledge"
	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

// MaxResponseLines bounds every generated response.
const MaxResponseLines = 5

// Reply is one generated turn: the response body and a follow-up question
// the caller may append.
type Reply struct {
	Response string
	FollowUp string
}

// Generator produces advisory responses from templates and the crop
// knowledge base.
type Generator struct {
	kb *knowledge.Base
}

// New builds a generator, verifying at startup that every template and
// follow-up question is localized into every supported language.
func New(kb *knowledge.Base) (*Generator, error) {
	for _, in := range intent.Intents() {
		fu, ok := followUps[in]
		if !ok {
			return nil, fmt.Errorf("no follow-up questions for intent %q", in)
		}
		if !fu.complete() {
			return nil, fmt.Errorf("incomplete follow-up localization for intent %q", in)
		}
	}
	for i, tmpl := range staticTemplates {
		if !tmpl.complete() {
			return nil, fmt.Errorf("incomplete localization in template %d", i)
		}
	}
	return &Generator{kb: kb}, nil
}

// Generate renders the response for a classified message. It is a pure
// function of its inputs and never fails; the worst case is a localized
// clarification request.
func (g *Generator) Generate(res intent.Result, sess session.Session) Reply {
	lg := res.Language
	var response string

	switch res.Intent {
	case intent.Greeting:
		response = render(greetingTemplate.forLang(lg))
	case intent.CropInfo:
		response = g.cropInfo(res, sess, lg)
	case intent.DiseaseHelp:
		response = g.diseaseHelp(sess, lg)
	case intent.FertilizerHelp:
		response = g.fertilizerHelp(res, sess, lg)
	case intent.MarketSellAdvice:
		response = render(marketTemplate.forLang(lg))
	case intent.WeatherAdvice:
		response = render(weatherTemplate.forLang(lg))
	case intent.GovernmentScheme:
		lines := append([]string{}, schemeTemplate.forLang(lg)...)
		lines = append(lines, schemeDisclaimer.forLang(lg)[0])
		response = render(lines)
	case intent.PestManagement:
		response = render(pestTemplate.forLang(lg))
	case intent.IrrigationHelp:
		response = render(irrigationTemplate.forLang(lg))
	case intent.SoilHelp:
		response = render(soilTemplate.forLang(lg))
	case intent.OrganicFarming:
		response = render(organicTemplate.forLang(lg))
	default:
		response = render(clarifyTemplate.forLang(lg))
	}

	fu, ok := followUps[res.Intent]
	if !ok {
		fu = followUps[intent.Unknown]
	}
	return Reply{Response: response, FollowUp: fu.forLang(lg)[0]}
}

// Guardrail returns the dosage safety message for a language.
func Guardrail(lg lang.Language) string {
	return render(dosageGuardrail.forLang(lg))
}

func (g *Generator) cropInfo(res intent.Result, sess session.Session, lg lang.Language) string {
	cropID := ""
	if len(res.Entities.Crops) > 0 {
		cropID = res.Entities.Crops[0]
	} else if sess.Crop.CurrentCrop != "" {
		cropID = sess.Crop.CurrentCrop
	}
	if cropID == "" {
		return render(cropAskTemplate.forLang(lg))
	}

	crop, ok := g.kb.CropByID(cropID)
	if !ok {
		return render(cropUnknownTemplate.forLang(lg))
	}

	cropName := crop.Names.For(lg)
	seasonName := crop.Season
	if season, ok := g.kb.SeasonByID(crop.Season); ok {
		seasonName = season.Name.For(lg)
	}
	sowing := "N/A"
	if len(crop.SowingMonths) > 0 {
		sowing = strings.Join(crop.SowingMonths, ", ")
	}

	switch lg {
	case lang.Hindi:
		return render([]string{
			fmt.Sprintf("🌾 **%s** - संपूर्ण गाइड:", cropName),
			fmt.Sprintf("📅 बुवाई: %s (%s)", sowing, seasonName),
			fmt.Sprintf("🌡️ तापमान: %d-%d°C", crop.Temperature.Min, crop.Temperature.Max),
			fmt.Sprintf("💧 पानी: %s", localizeWater(crop.WaterRequirement, lg)),
			fmt.Sprintf("📊 उपज: %g %s", crop.ExpectedYield.Value, crop.ExpectedYield.Unit),
		})
	case lang.Marathi:
		return render([]string{
			fmt.Sprintf("🌾 **%s** - संपूर्ण मार्गदर्शक:", cropName),
			fmt.Sprintf("📅 पेरणी: %s (%s)", sowing, seasonName),
			fmt.Sprintf("🌡️ तापमान: %d-%d°C", crop.Temperature.Min, crop.Temperature.Max),
			fmt.Sprintf("💧 पाणी: %s", localizeWater(crop.WaterRequirement, lg)),
			fmt.Sprintf("📊 उत्पादन: %g %s", crop.ExpectedYield.Value, crop.ExpectedYield.Unit),
		})
	default:
		return render([]string{
			fmt.Sprintf("🌾 **%s** - Complete Guide:", cropName),
			fmt.Sprintf("📅 Sowing: %s (%s)", sowing, seasonName),
			fmt.Sprintf("🌡️ Temperature: %d-%d°C", crop.Temperature.Min, crop.Temperature.Max),
			fmt.Sprintf("💧 Water: %s requirement", crop.WaterRequirement),
			fmt.Sprintf("📊 Yield: %g %s", crop.ExpectedYield.Value, crop.ExpectedYield.Unit),
		})
	}
}

func (g *Generator) diseaseHelp(sess session.Session, lg lang.Language) string {
	disease := sess.Problem.DiseaseDetected
	if disease == "" {
		return render(diseaseGeneralTemplate.forLang(lg))
	}
	tmpl := diseaseDetectedTemplate.forLang(lg)
	lines := make([]string, len(tmpl))
	lines[0] = fmt.Sprintf(tmpl[0], disease)
	copy(lines[1:], tmpl[1:])
	return render(lines)
}

func (g *Generator) fertilizerHelp(res intent.Result, sess session.Session, lg lang.Language) string {
	// Safety gate: no numeric dosage without a known farm size. This check
	// runs before any dosage arithmetic.
	if res.RequiresFarmSize && !sess.HasFarmSize() {
		return Guardrail(lg)
	}

	if sess.Crop.CurrentCrop != "" && sess.Farm.FarmSize != nil {
		if crop, ok := g.kb.CropByID(sess.Crop.CurrentCrop); ok && crop.FertilizerSchedule != nil {
			return g.dosage(crop, *sess.Farm.FarmSize, lg)
		}
	}
	return render(fertilizerGeneralTemplate.forLang(lg))
}

func (g *Generator) dosage(crop knowledge.Crop, size session.FarmSize, lg lang.Language) string {
	hectares := size.Hectares()
	fert := crop.FertilizerSchedule
	n := int(math.Round(fert.Nitrogen.Total * hectares))
	p := int(math.Round(fert.Phosphorus.Total * hectares))
	k := int(math.Round(fert.Potassium.Total * hectares))

	switch lg {
	case lang.Hindi:
		return render([]string{
			fmt.Sprintf("💊 **%s** के लिए खाद (%g %s):", crop.Names.HI, size.Value, size.Unit),
			fmt.Sprintf("🔵 नाइट्रोजन (N): %d kg (%d बार में)", n, fert.Nitrogen.Splits),
			fmt.Sprintf("🟢 फॉस्फोरस (P): %d kg (बुवाई पर)", p),
			fmt.Sprintf("🟡 पोटाश (K): %d kg (बुवाई पर)", k),
			"⚠️ मिट्टी जांच के अनुसार समायोजित करें",
		})
	case lang.Marathi:
		return render([]string{
			fmt.Sprintf("💊 **%s** साठी खत (%g %s):", crop.Names.MR, size.Value, size.Unit),
			fmt.Sprintf("🔵 नायट्रोजन (N): %d kg (%d वेळा)", n, fert.Nitrogen.Splits),
			fmt.Sprintf("🟢 फॉस्फरस (P): %d kg (पेरणीवेळी)", p),
			fmt.Sprintf("🟡 पोटॅश (K): %d kg (पेरणीवेळी)", k),
			"⚠️ माती चाचणीनुसार समायोजित करा",
		})
	default:
		return render([]string{
			fmt.Sprintf("💊 Fertilizer for **%s** (%g %s):", crop.Names.EN, size.Value, size.Unit),
			fmt.Sprintf("🔵 Nitrogen (N): %d kg (in %d splits)", n, fert.Nitrogen.Splits),
			fmt.Sprintf("🟢 Phosphorus (P): %d kg (basal)", p),
			fmt.Sprintf("🟡 Potash (K): %d kg (basal)", k),
			"⚠️ Adjust based on soil test results",
		})
	}
}

func localizeWater(requirement string, lg lang.Language) string {
	switch lg {
	case lang.Hindi:
		switch requirement {
		case "high":
			return "अधिक"
		case "low":
			return "कम"
		default:
			return "मध्यम"
		}
	case lang.Marathi:
		switch requirement {
		case "high":
			return "जास्त"
		case "low":
			return "कमी"
		default:
			return "मध्यम"
		}
	default:
		return requirement
	}
}

// render joins lines, truncating to the response budget.
func render(lines []string) string {
	if len(lines) > MaxResponseLines {
		lines = lines[:MaxResponseLines]
	}
	return strings.Join(lines, "\n")
}
