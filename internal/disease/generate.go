package disease

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

// overridable in tests
var timeNow = time.Now

// NeededSlot names the single piece of information a disease advisory is
// missing, if any.
type NeededSlot string

const (
	NeedFarmSize NeededSlot = "farm_size"
	NeedCropType NeededSlot = "crop_type"
)

// Advice is the rendered outcome of interpreting one model result.
type Advice struct {
	Response   string
	FollowUp   string
	NeededSlot NeededSlot
}

// fungalCrops is the whitelist of crops with a known spray schedule,
// including transliterated spellings.
var fungalCrops = []string{"cotton", "tomato", "soybean", "kapas", "tamatar", "soyabin"}

var followUpQuestions = map[Label]map[lang.Language]string{
	NitrogenDeficiency: {
		lang.English: "Have you done a soil test recently? It helps confirm the deficiency.",
		lang.Hindi:   "क्या हाल ही में मिट्टी जांच कराई है? इससे कमी की पुष्टि होती है।",
		lang.Marathi: "अलीकडे माती परीक्षण केले आहे का? यामुळे कमतरतेची खात्री होते.",
	},
	AphidAttack: {
		lang.English: "Are the aphids on leaves or on the stem? This helps target the spray.",
		lang.Hindi:   "माहू पत्तों पर हैं या तने पर? इससे स्प्रे का सही जगह पता चलता है।",
		lang.Marathi: "माव्या पानांवर आहेत की खोडावर? यामुळे फवारणी योग्य जागी होते.",
	},
	FungalSpot: {
		lang.English: "Are the spots spreading rapidly? This determines spray urgency.",
		lang.Hindi:   "क्या धब्बे तेजी से फैल रहे हैं? इससे स्प्रे की जरूरत पता चलती है।",
		lang.Marathi: "डाग वेगाने पसरत आहेत का? यावरून फवारणीची निकड समजते.",
	},
	Healthy: {
		lang.English: "Would you like market price advice for Nagpur/Akola mandi?",
		lang.Hindi:   "क्या नागपुर/अकोला मंडी के भाव जानना चाहते हैं?",
		lang.Marathi: "नागपूर/अकोला मंडी भाव जाणून घ्यायचे आहेत का?",
	},
	Unknown: {
		lang.English: "Can you upload a clearer photo for better analysis?",
		lang.Hindi:   "क्या आप बेहतर विश्लेषण के लिए साफ तस्वीर भेज सकते हैं?",
		lang.Marathi: "चांगल्या विश्लेषणासाठी स्पष्ट फोटो पाठवू शकता का?",
	},
}

// FollowUp returns the post-advisory question for a label.
func FollowUp(label Label, lg lang.Language) string {
	return followUpQuestions[label][lg]
}

// Generate renders the advisory for one model result in the session's
// context. It never fails; an unrecognized label yields a re-upload request.
func Generate(result ModelResult, sess session.Session, lg lang.Language) Advice {
	var advice Advice
	switch result.Label {
	case NitrogenDeficiency:
		advice = nitrogenDeficiency(result, sess, lg)
	case AphidAttack:
		advice = aphidAttack(result, sess, lg)
	case FungalSpot:
		advice = fungalSpot(result, sess, lg)
	case Healthy:
		advice = Advice{Response: healthy(result, sess, lg)}
	default:
		advice = Advice{Response: unknownAnalysis(lg)}
	}
	advice.FollowUp = FollowUp(result.Label, lg)
	return advice
}

func pct(confidence float64) int {
	return int(math.Round(confidence * 100))
}

func cropOrFallback(sess session.Session, lg lang.Language) string {
	if sess.Crop.CurrentCrop != "" {
		return sess.Crop.CurrentCrop
	}
	switch lg {
	case lang.Hindi:
		return "फसल"
	case lang.Marathi:
		return "पीक"
	default:
		return "your crop"
	}
}

func nitrogenDeficiency(result ModelResult, sess session.Session, lg lang.Language) Advice {
	crop := cropOrFallback(sess, lg)
	season := SeasonName(CurrentSeason(timeNow()), lg)

	if !sess.HasFarmSize() {
		var lines []string
		switch lg {
		case lang.Marathi:
			lines = []string{
				fmt.Sprintf("🟡 **नायट्रोजन कमतरता ओळखली** (%d%% खात्री)", pct(result.Confidence)),
				fmt.Sprintf("📋 %s - %s", crop, season),
				"",
				"⚠️ खत मात्रा सांगण्यासाठी तुमची जमीन किती एकर/हेक्टर आहे ते सांगा.",
				"तोपर्यंत जीवामृत वापरा - सेंद्रिय आणि सुरक्षित!",
			}
		case lang.Hindi:
			lines = []string{
				fmt.Sprintf("🟡 **नाइट्रोजन की कमी पहचानी** (%d%% विश्वास)", pct(result.Confidence)),
				fmt.Sprintf("📋 %s - %s", crop, season),
				"",
				"⚠️ खाद मात्रा बताने के लिए आपकी जमीन कितने एकड़/हेक्टेयर है?",
				"तब तक जीवामृत इस्तेमाल करें - जैविक और सुरक्षित!",
			}
		default:
			lines = []string{
				fmt.Sprintf("🟡 **Nitrogen Deficiency Detected** (%d%% confidence)", pct(result.Confidence)),
				fmt.Sprintf("📋 Crop: %s | Season: %s", crop, season),
				"",
				"⚠️ Please tell me your farm size (acres/hectares) for exact dosage.",
				"Meanwhile, apply Jeevamrut - organic and safe!",
			}
		}
		return Advice{Response: strings.Join(lines, "\n"), NeededSlot: NeedFarmSize}
	}

	size := sess.Farm.FarmSize
	qty := int(math.Round(size.Value * 2)) // ~2kg per stated unit of area

	var lines []string
	switch lg {
	case lang.Marathi:
		lines = []string{
			fmt.Sprintf("🟡 **नायट्रोजन कमतरता** - %s (%s)", crop, season),
			"",
			"✅ **3 पायऱ्या:**",
			fmt.Sprintf("1️⃣ खत: 19:19:19 @ %dkg/%g %s (ड्रिपमधून)", qty, size.Value, size.Unit),
			"2️⃣ पाणी: ठिबक सायकल वाढवा, सकाळी 6 पूर्वी",
			fmt.Sprintf("3️⃣ सेंद्रिय: जीवामृत 200L/%s - नायट्रोजन वाढवतो", size.Unit),
		}
	case lang.Hindi:
		lines = []string{
			fmt.Sprintf("🟡 **नाइट्रोजन की कमी** - %s (%s)", crop, season),
			"",
			"✅ **3 कदम:**",
			fmt.Sprintf("1️⃣ खाद: 19:19:19 @ %dkg/%g %s (ड्रिप से)", qty, size.Value, size.Unit),
			"2️⃣ पानी: ड्रिप साइकल बढ़ाएं, सुबह 6 बजे से पहले",
			fmt.Sprintf("3️⃣ जैविक: जीवामृत 200L/%s - नाइट्रोजन बढ़ाता है", size.Unit),
		}
	default:
		lines = []string{
			fmt.Sprintf("🟡 **Nitrogen Deficiency** - %s (%s)", crop, season),
			"",
			"✅ **3 Action Steps:**",
			fmt.Sprintf("1️⃣ Fertilizer: 19:19:19 @ %dkg/%g %s (via drip)", qty, size.Value, size.Unit),
			"2️⃣ Irrigation: Increase drip cycles, water before 6 AM",
			fmt.Sprintf("3️⃣ Organic: Jeevamrut 200L/%s - boosts nitrogen naturally", size.Unit),
		}
	}
	return Advice{Response: strings.Join(lines, "\n")}
}

func aphidAttack(result ModelResult, sess session.Session, lg lang.Language) Advice {
	needsFarmSize := !sess.HasFarmSize()
	size := sess.Farm.FarmSize

	var lines []string
	switch lg {
	case lang.Marathi:
		lines = []string{
			fmt.Sprintf("🐛 **माव्याचा हल्ला ओळखला** (%d%% खात्री)", pct(result.Confidence)),
			"",
			"✅ **IPM योजना (सेंद्रिय प्रथम):**",
			"1️⃣ कडुनिंब तेल: 5ml/लिटर पाणी - लगेच फवारा",
			"2️⃣ पिवळे चिकट सापळे: 8-10 प्रति एकर लावा",
		}
		if needsFarmSize {
			lines = append(lines, "3️⃣ रासायनिक: जमीन आकार सांगा, मग मात्रा देतो")
		} else {
			lines = append(lines, fmt.Sprintf("3️⃣ शेवटचा पर्याय: इमिडाक्लोप्रिड 0.5ml/L (%g %sसाठी)", size.Value, size.Unit))
		}
	case lang.Hindi:
		lines = []string{
			fmt.Sprintf("🐛 **माहू का हमला पहचाना** (%d%% विश्वास)", pct(result.Confidence)),
			"",
			"✅ **IPM योजना (जैविक पहले):**",
			"1️⃣ नीम तेल: 5ml/लीटर पानी - तुरंत छिड़काव करें",
			"2️⃣ पीले चिपचिपे ट्रैप: 8-10 प्रति एकड़ लगाएं",
		}
		if needsFarmSize {
			lines = append(lines, "3️⃣ रासायनिक: खेत का आकार बताएं, फिर मात्रा दूंगा")
		} else {
			lines = append(lines, fmt.Sprintf("3️⃣ अंतिम विकल्प: इमिडाक्लोप्रिड 0.5ml/L (%g %s के लिए)", size.Value, size.Unit))
		}
	default:
		lines = []string{
			fmt.Sprintf("🐛 **Aphid Attack Detected** (%d%% confidence)", pct(result.Confidence)),
			"",
			"✅ **IPM Plan (Organic First):**",
			"1️⃣ Neem oil: 5ml/liter water - spray immediately",
			"2️⃣ Yellow sticky traps: Install 8-10 per acre",
		}
		if needsFarmSize {
			lines = append(lines, "3️⃣ Chemical: Tell me farm size for exact dosage")
		} else {
			lines = append(lines, fmt.Sprintf("3️⃣ Last resort: Imidacloprid 0.5ml/L (for %g %s)", size.Value, size.Unit))
		}
	}

	advice := Advice{Response: strings.Join(lines, "\n")}
	if needsFarmSize {
		advice.NeededSlot = NeedFarmSize
	}
	return advice
}

func fungalSpot(result ModelResult, sess session.Session, lg lang.Language) Advice {
	crop := sess.Crop.CurrentCrop
	known := false
	for _, c := range fungalCrops {
		if crop != "" && strings.Contains(strings.ToLower(crop), c) {
			known = true
			break
		}
	}

	if !known {
		var lines []string
		switch lg {
		case lang.Marathi:
			lines = []string{
				fmt.Sprintf("🍄 **बुरशीजन्य डाग ओळखले** (%d%% खात्री)", pct(result.Confidence)),
				"",
				"📋 फवारणी वेळापत्रक तयार करण्यासाठी:",
				"तुमचे पीक कोणते आहे?",
				"• कापूस 🌿 • टोमॅटो 🍅 • सोयाबीन 🫘",
			}
		case lang.Hindi:
			lines = []string{
				fmt.Sprintf("🍄 **फफूंद धब्बे पहचाने** (%d%% विश्वास)", pct(result.Confidence)),
				"",
				"📋 स्प्रे शेड्यूल बनाने के लिए:",
				"आपकी फसल कौन सी है?",
				"• कपास 🌿 • टमाटर 🍅 • सोयाबीन 🫘",
			}
		default:
			lines = []string{
				fmt.Sprintf("🍄 **Fungal Spot Detected** (%d%% confidence)", pct(result.Confidence)),
				"",
				"📋 To create a spray schedule:",
				"Which crop is affected?",
				"• Cotton 🌿 • Tomato 🍅 • Soybean 🫘",
			}
		}
		return Advice{Response: strings.Join(lines, "\n"), NeededSlot: NeedCropType}
	}

	var lines []string
	switch lg {
	case lang.Marathi:
		lines = []string{
			fmt.Sprintf("🍄 **बुरशीजन्य डाग** - %s", crop),
			"",
			"✅ **फवारणी वेळापत्रक:**",
			"1️⃣ आज: मॅन्कोझेब 2.5g/L फवारा (संध्याकाळी 5 नंतर)",
			"2️⃣ 7 दिवसांनी: कार्बेन्डाझिम 1g/L",
			"3️⃣ प्रतिबंध: बाधित पाने काढा, हवा खेळती ठेवा",
		}
	case lang.Hindi:
		lines = []string{
			fmt.Sprintf("🍄 **फफूंद धब्बे** - %s", crop),
			"",
			"✅ **स्प्रे शेड्यूल:**",
			"1️⃣ आज: मैंकोजेब 2.5g/L छिड़काव (शाम 5 बजे के बाद)",
			"2️⃣ 7 दिन बाद: कार्बेंडाजिम 1g/L",
			"3️⃣ रोकथाम: संक्रमित पत्ते हटाएं, हवा का प्रवाह बनाएं",
		}
	default:
		lines = []string{
			fmt.Sprintf("🍄 **Fungal Spot** - %s", crop),
			"",
			"✅ **Spray Schedule:**",
			"1️⃣ Today: Mancozeb 2.5g/L spray (after 5 PM)",
			"2️⃣ After 7 days: Carbendazim 1g/L",
			"3️⃣ Prevention: Remove infected leaves, improve air circulation",
		}
	}
	return Advice{Response: strings.Join(lines, "\n")}
}

func healthy(result ModelResult, sess session.Session, lg lang.Language) string {
	season := SeasonName(CurrentSeason(timeNow()), lg)

	switch lg {
	case lang.Marathi:
		return strings.Join([]string{
			fmt.Sprintf("🟢 **पीक निरोगी आहे!** (%d%% खात्री)", pct(result.Confidence)),
			"",
			"✅ **प्रतिबंधात्मक सल्ला:**",
			"1️⃣ जीवामृत/दशपर्णी फवारणी सुरू ठेवा",
			fmt.Sprintf("2️⃣ %s - नागपूर मंडी भाव चांगले आहेत", season),
			"3️⃣ काढणीपूर्वी 15 दिवस आधी खरेदीदार शोधा",
		}, "\n")
	case lang.Hindi:
		return strings.Join([]string{
			fmt.Sprintf("🟢 **फसल स्वस्थ है!** (%d%% विश्वास)", pct(result.Confidence)),
			"",
			"✅ **निवारक सलाह:**",
			"1️⃣ जीवामृत/दशपर्णी स्प्रे जारी रखें",
			fmt.Sprintf("2️⃣ %s - नागपुर मंडी भाव अच्छे हैं", season),
			"3️⃣ कटाई से 15 दिन पहले खरीदार खोजें",
		}, "\n")
	default:
		return strings.Join([]string{
			fmt.Sprintf("🟢 **Crop is Healthy!** (%d%% confidence)", pct(result.Confidence)),
			"",
			"✅ **Preventive Advisory:**",
			"1️⃣ Continue Jeevamrut/Dashparni sprays",
			fmt.Sprintf("2️⃣ %s - Nagpur mandi prices are good", season),
			"3️⃣ Find buyers 15 days before harvest",
		}, "\n")
	}
}

func unknownAnalysis(lg lang.Language) string {
	switch lg {
	case lang.Marathi:
		return "⚠️ विश्लेषण अस्पष्ट. कृपया स्पष्ट फोटो पुन्हा पाठवा."
	case lang.Hindi:
		return "⚠️ विश्लेषण अस्पष्ट। कृपया साफ फोटो दोबारा भेजें।"
	default:
		return "⚠️ Analysis unclear. Please upload a clearer photo."
	}
}
