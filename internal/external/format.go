package external

import (
	"fmt"
	"math"
	"strings"

	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// FormatWeather renders weather for inclusion in a chat response.
func FormatWeather(w WeatherData, lg lang.Language) string {
	switch lg {
	case lang.Hindi:
		return strings.Join([]string{
			"🌤️ **मौसम जानकारी:**",
			fmt.Sprintf("🌡️ तापमान: %d°C", w.Temperature),
			fmt.Sprintf("💧 नमी: %d%%", w.Humidity),
			fmt.Sprintf("☔ बारिश: %dmm", w.Rainfall),
			fmt.Sprintf("💨 हवा: %d km/h", w.WindSpeed),
		}, "\n")
	case lang.Marathi:
		return strings.Join([]string{
			"🌤️ **हवामान माहिती:**",
			fmt.Sprintf("🌡️ तापमान: %d°C", w.Temperature),
			fmt.Sprintf("💧 आर्द्रता: %d%%", w.Humidity),
			fmt.Sprintf("☔ पाऊस: %dmm", w.Rainfall),
			fmt.Sprintf("💨 वारा: %d km/h", w.WindSpeed),
		}, "\n")
	default:
		return strings.Join([]string{
			"🌤️ **Weather Information:**",
			fmt.Sprintf("🌡️ Temperature: %d°C", w.Temperature),
			fmt.Sprintf("💧 Humidity: %d%%", w.Humidity),
			fmt.Sprintf("☔ Rainfall: %dmm", w.Rainfall),
			fmt.Sprintf("💨 Wind: %d km/h", w.WindSpeed),
		}, "\n")
	}
}

// FormatMandiPrices renders at most the top 3 quotes.
func FormatMandiPrices(prices []MandiPrice, lg lang.Language) string {
	if len(prices) == 0 {
		switch lg {
		case lang.Hindi:
			return "📊 इस कमोडिटी के लिए कोई भाव उपलब्ध नहीं है।"
		case lang.Marathi:
			return "📊 या वस्तूसाठी कोणताही भाव उपलब्ध नाही."
		default:
			return "📊 No prices available for this commodity."
		}
	}

	if len(prices) > 3 {
		prices = prices[:3]
	}

	var header string
	switch lg {
	case lang.Hindi:
		header = "📊 **मंडी भाव (₹/क्विंटल):**"
	case lang.Marathi:
		header = "📊 **बाजारभाव (₹/क्विंटल):**"
	default:
		header = "📊 **Mandi Prices (₹/quintal):**"
	}

	out := []string{header}
	for _, p := range prices {
		out = append(out, fmt.Sprintf("• %s: ₹%d (%d-%d)", p.Market, p.ModalPrice, p.MinPrice, p.MaxPrice))
	}
	return strings.Join(out, "\n")
}

// FormatDiseaseResult renders a full detection payload.
func FormatDiseaseResult(r DiseaseDetectionResult, lg lang.Language) string {
	confidence := int(math.Round(r.Confidence * 100))
	treatment := ""
	if len(r.Treatment) > 0 {
		treatment = r.Treatment[0]
	}
	prevention := ""
	if len(r.Prevention) > 0 {
		prevention = r.Prevention[0]
	}

	switch lg {
	case lang.Hindi:
		return strings.Join([]string{
			fmt.Sprintf("🔬 **रोग पहचाना गया:** %s", r.Disease),
			fmt.Sprintf("📊 विश्वास: %d%%", confidence),
			fmt.Sprintf("📋 %s", r.Description),
			fmt.Sprintf("💊 उपचार: %s", treatment),
			fmt.Sprintf("🛡️ रोकथाम: %s", prevention),
		}, "\n")
	case lang.Marathi:
		return strings.Join([]string{
			fmt.Sprintf("🔬 **रोग ओळखला:** %s", r.Disease),
			fmt.Sprintf("📊 आत्मविश्वास: %d%%", confidence),
			fmt.Sprintf("📋 %s", r.Description),
			fmt.Sprintf("💊 उपचार: %s", treatment),
			fmt.Sprintf("🛡️ प्रतिबंध: %s", prevention),
		}, "\n")
	default:
		return strings.Join([]string{
			fmt.Sprintf("🔬 **Disease Detected:** %s", r.Disease),
			fmt.Sprintf("📊 Confidence: %d%%", confidence),
			fmt.Sprintf("📋 %s", r.Description),
			fmt.Sprintf("💊 Treatment: %s", treatment),
			fmt.Sprintf("🛡️ Prevention: %s", prevention),
		}, "\n")
	}
}
