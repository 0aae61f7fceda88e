package respond

import (
	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// lines is a response template localized into every supported language.
type lines struct {
	EN []string
	HI []string
	MR []string
}

func (l lines) forLang(lg lang.Language) []string {
	switch lg {
	case lang.Hindi:
		return l.HI
	case lang.Marathi:
		return l.MR
	default:
		return l.EN
	}
}

func (l lines) complete() bool {
	return len(l.EN) > 0 && len(l.HI) > 0 && len(l.MR) > 0
}

// followUps holds one trailing question per intent and language. Completeness
// over all intents and languages is verified when the generator is built.
var followUps = map[intent.Intent]lines{
	intent.Greeting: {
		EN: []string{"Which crop are you currently growing or planning to grow?"},
		HI: []string{"आप अभी कौन सी फसल उगा रहे हैं या उगाने की योजना बना रहे हैं?"},
		MR: []string{"तुम्ही सध्या कोणते पीक घेत आहात किंवा घेण्याची योजना आखत आहात?"},
	},
	intent.Help: {
		EN: []string{"What specific farming topic would you like help with today?"},
		HI: []string{"आज किस खेती विषय पर मदद चाहिए?"},
		MR: []string{"आज कोणत्या शेती विषयावर मदत हवी आहे?"},
	},
	intent.Thanks: {
		EN: []string{"Is there anything else you need help with?"},
		HI: []string{"क्या कुछ और मदद चाहिए?"},
		MR: []string{"अजून काही मदत हवी आहे का?"},
	},
	intent.DiseaseHelp: {
		EN: []string{"Can you describe the symptoms - what color are the spots/leaves?"},
		HI: []string{"क्या आप लक्षण बता सकते हैं - दाग/पत्ते किस रंग के हैं?"},
		MR: []string{"तुम्ही लक्षणे सांगू शकता का - डाग/पाने कोणत्या रंगाचे आहेत?"},
	},
	intent.FertilizerHelp: {
		EN: []string{"What is your farm size in acres/hectares for accurate dosage?"},
		HI: []string{"सही खुराक के लिए आपकी जमीन कितने एकड़/हेक्टेयर है?"},
		MR: []string{"अचूक मात्रेसाठी तुमची जमीन किती एकर/हेक्टर आहे?"},
	},
	intent.MarketSellAdvice: {
		EN: []string{"Which market/mandi are you planning to sell at?"},
		HI: []string{"आप किस मंडी में बेचने की सोच रहे हैं?"},
		MR: []string{"तुम्ही कोणत्या बाजारात विकण्याचा विचार करत आहात?"},
	},
	intent.WeatherAdvice: {
		EN: []string{"Would you like weather-based recommendations for your crop?"},
		HI: []string{"क्या आप अपनी फसल के लिए मौसम आधारित सलाह चाहते हैं?"},
		MR: []string{"तुमच्या पिकासाठी हवामान आधारित सल्ला हवा आहे का?"},
	},
	intent.GovernmentScheme: {
		EN: []string{"Have you applied for any schemes? I can guide with registration."},
		HI: []string{"क्या आपने किसी योजना के लिए आवेदन किया है? मैं पंजीकरण में मदद कर सकता हूं।"},
		MR: []string{"तुम्ही कोणत्या योजनेसाठी अर्ज केला आहे का? मी नोंदणीत मदत करू शकतो."},
	},
	intent.CropInfo: {
		EN: []string{"What stage is your crop at - sowing, growing, or harvesting?"},
		HI: []string{"आपकी फसल किस अवस्था में है - बुवाई, बढ़वार, या कटाई?"},
		MR: []string{"तुमचे पीक कोणत्या टप्प्यावर आहे - पेरणी, वाढ, की काढणी?"},
	},
	intent.PestManagement: {
		EN: []string{"Have you noticed the pest/insect attacking any specific part of the plant?"},
		HI: []string{"क्या कीड़े पौधे के किसी विशेष भाग पर हमला कर रहे हैं?"},
		MR: []string{"किडे रोपाच्या कोणत्या भागावर हल्ला करत आहेत?"},
	},
	intent.IrrigationHelp: {
		EN: []string{"What irrigation system do you have - drip, sprinkler, or flood?"},
		HI: []string{"आपके पास कौन सी सिंचाई व्यवस्था है - ड्रिप, स्प्रिंकलर, या बाढ़?"},
		MR: []string{"तुमच्याकडे कोणती सिंचन व्यवस्था आहे - ठिबक, तुषार, की पाट?"},
	},
	intent.SoilHelp: {
		EN: []string{"Have you done a soil test recently? It helps give accurate advice."},
		HI: []string{"क्या हाल ही में मिट्टी की जांच कराई है? इससे सही सलाह मिलती है।"},
		MR: []string{"अलीकडे माती परीक्षण केले आहे का? यामुळे अचूक सल्ला मिळतो."},
	},
	intent.OrganicFarming: {
		EN: []string{"Are you looking to convert your entire farm to organic or just a portion?"},
		HI: []string{"क्या पूरी जमीन जैविक करना चाहते हैं या कुछ हिस्सा?"},
		MR: []string{"संपूर्ण शेती सेंद्रिय करायची आहे की काही भाग?"},
	},
	intent.SeedInfo: {
		EN: []string{"Are you looking for hybrid seeds or traditional varieties?"},
		HI: []string{"क्या आप हाइब्रिड बीज चाहते हैं या देसी किस्म?"},
		MR: []string{"तुम्हाला संकरित बियाणे हवे की देशी जाती?"},
	},
	intent.HarvestHelp: {
		EN: []string{"How many days since sowing? This helps determine harvest timing."},
		HI: []string{"बुवाई के कितने दिन हुए? इससे कटाई का समय पता चलता है।"},
		MR: []string{"पेरणीला किती दिवस झाले? यावरून काढणीची वेळ समजते."},
	},
	intent.StorageAdvice: {
		EN: []string{"What quantity do you need to store and for how long?"},
		HI: []string{"कितनी मात्रा और कितने समय के लिए भंडारण करना है?"},
		MR: []string{"किती प्रमाण आणि किती काळासाठी साठवणूक करायची आहे?"},
	},
	intent.CropRotation: {
		EN: []string{"What was your previous crop this season?"},
		HI: []string{"इस सीजन में पहले कौन सी फसल थी?"},
		MR: []string{"या हंगामात आधी कोणते पीक होते?"},
	},
	intent.SeasonAdvice: {
		EN: []string{"Which state/region are you farming in?"},
		HI: []string{"आप किस राज्य/क्षेत्र में खेती करते हैं?"},
		MR: []string{"तुम्ही कोणत्या राज्यात/प्रदेशात शेती करता?"},
	},
	intent.Unknown: {
		EN: []string{"Could you please rephrase or tell me more specifically what help you need?"},
		HI: []string{"कृपया दोबारा बताएं या स्पष्ट करें कि क्या मदद चाहिए?"},
		MR: []string{"कृपया पुन्हा सांगा किंवा स्पष्ट करा कोणती मदत हवी आहे?"},
	},
}

// dosageGuardrail is emitted instead of any numeric dosage when the farm
// size is unknown.
var dosageGuardrail = lines{
	EN: []string{
		"⚠️ For accurate chemical dosage, I need your farm size.",
		"Wrong dosage can harm crops and environment.",
		"Please tell me your farm area in acres or hectares.",
	},
	HI: []string{
		"⚠️ सही दवाई मात्रा के लिए जमीन का आकार जानना जरूरी है।",
		"गलत मात्रा फसल और पर्यावरण को नुकसान पहुंचा सकती है।",
		"कृपया अपनी जमीन एकड़ या हेक्टेयर में बताएं।",
	},
	MR: []string{
		"⚠️ अचूक औषध मात्रेसाठी जमिनीचा आकार माहित असणे आवश्यक आहे।",
		"चुकीची मात्रा पिकाला आणि पर्यावरणाला हानी पोहोचवू शकते।",
		"कृपया तुमची जमीन एकर किंवा हेक्टरमध्ये सांगा.",
	},
}

// schemeDisclaimer is appended to scheme responses.
var schemeDisclaimer = lines{
	EN: []string{
		"📋 Scheme details may change. Verify from official sources.",
		"Visit your nearest agricultural office for latest information.",
	},
	HI: []string{
		"📋 योजना विवरण बदल सकते हैं। आधिकारिक स्रोतों से सत्यापित करें।",
		"नवीनतम जानकारी के लिए नजदीकी कृषि कार्यालय जाएं।",
	},
	MR: []string{
		"📋 योजनांचे तपशील बदलू शकतात. अधिकृत स्रोतांकडून खात्री करा.",
		"नवीनतम माहितीसाठी जवळच्या कृषी कार्यालयात भेट द्या.",
	},
}

var greetingTemplate = lines{
	EN: []string{
		"🙏 Namaste! I am your KisanConnect farming expert.",
		"✅ I can help with: crops, diseases, fertilizers, market prices, weather, schemes.",
		"💬 Ask in Hindi, Marathi, or English - I understand all!",
	},
	HI: []string{
		"🙏 नमस्ते! मैं आपका किसानकनेक्ट कृषि विशेषज्ञ हूं।",
		"✅ मैं मदद कर सकता हूं: फसल, बीमारी, खाद, बाजार भाव, मौसम, योजनाएं।",
		"💬 हिंदी, मराठी, या अंग्रेजी में पूछें - मैं सब समझता हूं!",
	},
	MR: []string{
		"🙏 नमस्कार! मी तुमचा किसानकनेक्ट शेती तज्ञ आहे.",
		"✅ मी मदत करू शकतो: पीक, रोग, खत, बाजारभाव, हवामान, योजना.",
		"💬 हिंदी, मराठी, किंवा इंग्रजीत विचारा - मला सर्व समजते!",
	},
}

var diseaseGeneralTemplate = lines{
	EN: []string{
		"🔬 For disease identification:",
		"📸 Upload plant photo using \"Photo Upload\" button",
		"📝 Or describe: leaf color, spot shape, affected part",
		"⚡ Early detection saves your crop!",
	},
	HI: []string{
		"🔬 रोग पहचान के लिए:",
		"📸 \"फोटो अपलोड\" बटन से पौधे की तस्वीर भेजें",
		"📝 या बताएं: पत्ते का रंग, दाग का आकार, कौन सा भाग प्रभावित",
		"⚡ जल्दी पहचान से फसल बचती है!",
	},
	MR: []string{
		"🔬 रोग ओळखण्यासाठी:",
		"📸 \"फोटो अपलोड\" बटणाने रोपाचा फोटो पाठवा",
		"📝 किंवा सांगा: पानांचा रंग, डागाचा आकार, कोणता भाग बाधित",
		"⚡ लवकर ओळख पिकाला वाचवते!",
	},
}

// diseaseDetectedTemplate lines contain one %s for the disease name in the
// first line.
var diseaseDetectedTemplate = lines{
	EN: []string{
		"🔬 Detected: **%s**",
		"✅ Immediate action: Remove infected leaves",
		"💊 Treatment: Apply fungicide spray (Mancozeb/Carbendazim)",
		"⏰ Timing: Spray in morning or evening",
		"🔄 Repeat: After 10-15 days if needed",
	},
	HI: []string{
		"🔬 पहचाना गया: **%s**",
		"✅ तुरंत करें: संक्रमित पत्ते हटाएं",
		"💊 उपचार: फफूंदनाशक छिड़काव (मैंकोजेब/कार्बेंडाजिम)",
		"⏰ समय: सुबह या शाम को छिड़काव करें",
		"🔄 दोहराएं: 10-15 दिन बाद फिर से",
	},
	MR: []string{
		"🔬 ओळखला गेला: **%s**",
		"✅ लगेच करा: बाधित पाने काढा",
		"💊 उपचार: बुरशीनाशक फवारणी (मॅन्कोझेब/कार्बेन्डाझिम)",
		"⏰ वेळ: सकाळी किंवा संध्याकाळी फवारणी करा",
		"🔄 पुनरावृत्ती: 10-15 दिवसांनी पुन्हा",
	},
}

var fertilizerGeneralTemplate = lines{
	EN: []string{
		"💊 Fertilizer guidance:",
		"🔵 N (Nitrogen): For leafy growth (Urea)",
		"🟢 P (Phosphorus): For root development (DAP)",
		"🟡 K (Potash): For disease resistance (MOP)",
		"✅ Organic options: Vermicompost, FYM, Neem cake",
	},
	HI: []string{
		"💊 उर्वरक मार्गदर्शन:",
		"🔵 N (नाइट्रोजन): पत्ते हरे-भरे के लिए (यूरिया)",
		"🟢 P (फॉस्फोरस): जड़ विकास के लिए (DAP)",
		"🟡 K (पोटाश): रोग प्रतिरोधक के लिए (MOP)",
		"✅ जैविक विकल्प: वर्मीकम्पोस्ट, गोबर खाद, नीम खली",
	},
	MR: []string{
		"💊 खत मार्गदर्शन:",
		"🔵 N (नायट्रोजन): पाने हिरवीगार करण्यासाठी (युरिया)",
		"🟢 P (फॉस्फरस): मुळे विकासासाठी (DAP)",
		"🟡 K (पोटॅश): रोग प्रतिकारासाठी (MOP)",
		"✅ सेंद्रिय पर्याय: गांडूळ खत, शेणखत, निंबोळी पेंड",
	},
}

var marketTemplate = lines{
	EN: []string{
		"📊 Market advice:",
		"1️⃣ Check e-NAM portal for prices (enam.gov.in)",
		"2️⃣ Grade your produce: A-grade = 10-15% better price",
		"3️⃣ Join FPO/cooperative: Better bargaining power",
		"4️⃣ Right timing: Don't sell immediately after harvest",
	},
	HI: []string{
		"📊 बाजार सलाह:",
		"1️⃣ ई-नाम पोर्टल पर भाव देखें (enam.gov.in)",
		"2️⃣ ग्रेडिंग करें: A-ग्रेड माल = 10-15% ज्यादा भाव",
		"3️⃣ FPO/सहकारी से जुड़ें: बेहतर मोलभाव",
		"4️⃣ सही समय: कटाई के तुरंत बाद न बेचें, भाव गिरे होते हैं",
	},
	MR: []string{
		"📊 बाजार सल्ला:",
		"1️⃣ ई-नाम पोर्टलवर भाव पहा (enam.gov.in)",
		"2️⃣ प्रतवारी करा: A-ग्रेड माल = 10-15% जास्त भाव",
		"3️⃣ FPO/सहकारी संस्थेशी जोडा: चांगला सौदा",
		"4️⃣ योग्य वेळ: काढणीनंतर लगेच विकू नका, भाव कमी असतात",
	},
}

var weatherTemplate = lines{
	EN: []string{
		"🌤️ Weather-based actions:",
		"☔ Rain expected: Postpone spraying, ensure drainage",
		"🌡️ Heat >35°C: Water in morning/evening, do mulching",
		"❄️ Cold <10°C: Cover plants, irrigation reduces frost damage",
		"💨 Strong wind: Support crops, avoid spraying",
	},
	HI: []string{
		"🌤️ मौसम आधारित कार्रवाई:",
		"☔ बारिश आने वाली हो: स्प्रे टालें, जल निकासी सुनिश्चित करें",
		"🌡️ गर्मी >35°C: सुबह-शाम पानी दें, मल्चिंग करें",
		"❄️ ठंड <10°C: पौधों को ढकें, सिंचाई से ठंड कम होती है",
		"💨 तेज हवा: फसल को सहारा दें, स्प्रे न करें",
	},
	MR: []string{
		"🌤️ हवामान आधारित कृती:",
		"☔ पाऊस येणार: फवारणी टाळा, पाण्याचा निचरा सुनिश्चित करा",
		"🌡️ उष्णता >35°C: सकाळी-संध्याकाळी पाणी द्या, आच्छादन करा",
		"❄️ थंडी <10°C: रोपांना झाका, पाणी दिल्यास थंडी कमी होते",
		"💨 जोरदार वारा: पिकाला आधार द्या, फवारणी करू नका",
	},
}

var schemeTemplate = lines{
	EN: []string{
		"🏛️ Key Government Schemes:",
		"💰 PM-KISAN: ₹6000/year (in 3 installments)",
		"🛡️ PMFBY: Crop insurance (2% Kharif, 1.5% Rabi premium)",
		"💳 KCC: Farm loan at 4% interest",
	},
	HI: []string{
		"🏛️ प्रमुख सरकारी योजनाएं:",
		"💰 PM-KISAN: ₹6000/वर्ष (3 किस्तों में)",
		"🛡️ PMFBY: फसल बीमा (खरीफ 2%, रबी 1.5% प्रीमियम)",
		"💳 KCC: 4% ब्याज पर कृषि ऋण",
	},
	MR: []string{
		"🏛️ प्रमुख शासकीय योजना:",
		"💰 PM-KISAN: ₹6000/वर्ष (3 हप्त्यांमध्ये)",
		"🛡️ PMFBY: पीक विमा (खरीप 2%, रब्बी 1.5% प्रीमियम)",
		"💳 KCC: 4% व्याजावर कृषी कर्ज",
	},
}

var pestTemplate = lines{
	EN: []string{
		"🐛 IPM (Integrated Pest Management):",
		"1️⃣ Install pheromone traps (1 per acre)",
		"2️⃣ Neem oil spray: 5ml per liter water",
		"3️⃣ Yellow sticky traps: For whitefly control",
		"⚠️ Use chemicals only as last resort",
	},
	HI: []string{
		"🐛 IPM (समन्वित कीट प्रबंधन):",
		"1️⃣ फेरोमोन ट्रैप लगाएं (1 प्रति एकड़)",
		"2️⃣ नीम तेल स्प्रे: 5ml/लीटर पानी",
		"3️⃣ पीला चिपचिपा ट्रैप: सफेद मक्खी के लिए",
		"⚠️ रासायनिक दवाई अंतिम विकल्प रखें",
	},
	MR: []string{
		"🐛 IPM (एकात्मिक कीड व्यवस्थापन):",
		"1️⃣ फेरोमोन सापळे लावा (1 प्रति एकर)",
		"2️⃣ कडुनिंब तेल फवारणी: 5ml/लिटर पाणी",
		"3️⃣ पिवळे चिकट सापळे: पांढऱ्या माशीसाठी",
		"⚠️ रासायनिक औषध शेवटचा पर्याय ठेवा",
	},
}

var irrigationTemplate = lines{
	EN: []string{
		"💧 Irrigation guidance:",
		"🌡️ Summer: Water before 6 AM or after 5 PM",
		"💦 Drip irrigation: 40-50% water saving (subsidy available)",
		"⏰ Critical stages: Flowering and grain filling",
		"✅ Mulching reduces evaporation by 30%",
	},
	HI: []string{
		"💧 सिंचाई मार्गदर्शन:",
		"🌡️ गर्मी में: सुबह 6 बजे से पहले या शाम 5 बजे के बाद",
		"💦 ड्रिप सिंचाई: 40-50% पानी बचत (सब्सिडी उपलब्ध)",
		"⏰ महत्वपूर्ण समय: फूल और दाना भरने पर जरूरी",
		"✅ मल्चिंग से 30% वाष्पीकरण कम होता है",
	},
	MR: []string{
		"💧 सिंचन मार्गदर्शन:",
		"🌡️ उन्हाळ्यात: सकाळी 6 पूर्वी किंवा संध्याकाळी 5 नंतर",
		"💦 ठिबक सिंचन: 40-50% पाणी बचत (अनुदान उपलब्ध)",
		"⏰ महत्त्वाची वेळ: फुलोरा आणि दाणे भरताना आवश्यक",
		"✅ आच्छादनाने 30% बाष्पीभवन कमी होते",
	},
}

var soilTemplate = lines{
	EN: []string{
		"🌱 Soil management:",
		"🧪 Get soil test every 2-3 years (free)",
		"📊 pH 6.5-7.5 is ideal for most crops",
		"🐄 FYM: 10-15 tons/hectare annually",
		"🌿 Green manure: Grow dhaincha/sunhemp and incorporate",
	},
	HI: []string{
		"🌱 मिट्टी प्रबंधन:",
		"🧪 हर 2-3 साल में मिट्टी जांच कराएं (मुफ्त)",
		"📊 pH 6.5-7.5 अधिकांश फसलों के लिए आदर्श",
		"🐄 FYM: 10-15 टन/हेक्टेयर हर साल",
		"🌿 हरी खाद: ढैंचा या सनई उगाएं और मिलाएं",
	},
	MR: []string{
		"🌱 माती व्यवस्थापन:",
		"🧪 दर 2-3 वर्षांनी माती चाचणी करा (मोफत)",
		"📊 pH 6.5-7.5 बहुतेक पिकांसाठी आदर्श",
		"🐄 शेणखत: 10-15 टन/हेक्टर दरवर्षी",
		"🌿 हिरवळीचे खत: ताग किंवा धैंचा लावा आणि मिसळा",
	},
}

var organicTemplate = lines{
	EN: []string{
		"🌿 Start organic farming:",
		"1️⃣ Jeevamrut: Cowdung + Urine + Jaggery + Flour + Soil",
		"2️⃣ Beejamrut: For seed treatment",
		"3️⃣ Vermicompost: 2-3 tons/acre",
		"💰 Get 20-30% premium after certification",
	},
	HI: []string{
		"🌿 जैविक खेती शुरू करें:",
		"1️⃣ जीवामृत: गोबर + गोमूत्र + गुड़ + बेसन + मिट्टी",
		"2️⃣ बीजामृत: बीज उपचार के लिए",
		"3️⃣ वर्मीकम्पोस्ट: 2-3 टन/एकड़",
		"💰 प्रमाणीकरण के बाद 20-30% अधिक भाव मिलता है",
	},
	MR: []string{
		"🌿 सेंद्रिय शेती सुरू करा:",
		"1️⃣ जीवामृत: शेण + गोमूत्र + गूळ + बेसन + माती",
		"2️⃣ बीजामृत: बियाणे प्रक्रियेसाठी",
		"3️⃣ गांडूळ खत: 2-3 टन/एकर",
		"💰 प्रमाणीकरणानंतर 20-30% जास्त भाव मिळतो",
	},
}

var clarifyTemplate = lines{
	EN: []string{"🤔 Please clarify your question. I can help with crops, diseases, fertilizers, weather, market prices."},
	HI: []string{"🤔 कृपया अपना सवाल स्पष्ट करें। मैं फसल, बीमारी, खाद, मौसम, बाजार भाव में मदद कर सकता हूं।"},
	MR: []string{"🤔 कृपया तुमचा प्रश्न स्पष्ट करा. मी पीक, रोग, खत, हवामान, बाजारभाव याबाबत मदत करू शकतो."},
}

var cropAskTemplate = lines{
	EN: []string{"🌾 Which crop do you want to know about? Wheat, Rice, Cotton, Soybean..."},
	HI: []string{"🌾 कौन सी फसल के बारे में जानना चाहते हैं? गेहूं, धान, कपास, सोयाबीन..."},
	MR: []string{"🌾 कोणत्या पिकाबद्दल जाणून घ्यायचे आहे? गहू, भात, कापूस, सोयाबीन..."},
}

var cropUnknownTemplate = lines{
	EN: []string{"Information for this crop is not available. Please ask about another crop."},
	HI: []string{"इस फसल की जानकारी उपलब्ध नहीं है। कृपया दूसरी फसल पूछें।"},
	MR: []string{"या पिकाची माहिती उपलब्ध नाही. कृपया दुसरे पीक विचारा."},
}

// staticTemplates are every fixed template the generator can emit, checked
// for completeness at construction.
var staticTemplates = []lines{
	dosageGuardrail, schemeDisclaimer, greetingTemplate, diseaseGeneralTemplate,
	diseaseDetectedTemplate, fertilizerGeneralTemplate, marketTemplate,
	weatherTemplate, schemeTemplate, pestTemplate, irrigationTemplate,
	soilTemplate, organicTemplate, clarifyTemplate, cropAskTemplate,
	cropUnknownTemplate,
}
