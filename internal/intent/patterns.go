package intent

// intentPatterns holds the keyword patterns for every non-unknown intent.
// Slice order is the tie-break: when two intents score equally, the earlier
// declaration wins, so classification stays deterministic.
var intentPatterns = []struct {
	Intent   Intent
	Patterns []string
}{
	{Greeting, []string{
		"hello", "hi", "hey", "namaste", "namaskar", "नमस्ते", "नमस्कार",
		"kem cho", "kemon acho", "vanakkam", "sat sri akal",
	}},
	{Help, []string{
		"help", "madad", "sahayata", "मदद", "सहायता", "मला मदत करा",
		"kya kar sakte", "guide", "batao", "बताओ", "samjhao",
	}},
	{Thanks, []string{
		"thanks", "thank you", "dhanyawad", "dhanyavaad", "धन्यवाद",
		"shukriya", "शुक्रिया", "aabhar", "आभार",
	}},
	{DiseaseHelp, []string{
		"disease", "bimari", "rog", "बीमारी", "रोग", "infection", "fungus",
		"yellow", "peela", "पीला", "black", "kala", "काला", "spot", "daag", "दाग",
		"wilt", "murjhana", "मुरझाना", "rot", "sadna", "सड़ना", "blight",
		"rust", "mildew", "virus", "पत्ते सूख", "leaves dying", "patte such",
		"rogavar", "rogache", "आजार", "rogawar upay",
	}},
	{FertilizerHelp, []string{
		"fertilizer", "khad", "खाद", "उर्वरक", "urea", "यूरिया", "dap",
		"npk", "potash", "पोटाश", "nitrogen", "phosphorus", "zinc",
		"micro nutrient", "सूक्ष्म पोषक", "organic manure", "जैविक खाद",
		"vermicompost", "केंचुआ खाद", "fym", "gobar", "गोबर", "neem cake",
		"fertilizer schedule", "khad kitni", "खाद कितनी", "kitna khad",
		"khatacha", "खत", "khat kiti",
	}},
	{MarketSellAdvice, []string{
		"price", "bhav", "भाव", "rate", "daam", "दाम", "mandi", "मंडी",
		"market", "बाजार", "sell", "bechna", "बेचना", "kharid", "खरीद",
		"trading", "e-nam", "apmc", "minimum support", "msp", "एमएसपी",
		"kab beche", "कब बेचें", "best time to sell", "vikri", "विक्री",
		"bazaar bhav", "bazaarbhav",
	}},
	{WeatherAdvice, []string{
		"weather", "mausam", "मौसम", "barish", "बारिश", "rain", "baarish",
		"temperature", "tapman", "तापमान", "humidity", "namee", "नमी",
		"forecast", "monsoon", "winter", "summer", "garmi", "गर्मी",
		"thanda", "ठंडा", "cold", "frost", "pala", "पाला", "heatwave",
		"havaaman", "हवामान", "paoos", "पाऊस",
	}},
	{GovernmentScheme, []string{
		"scheme", "yojana", "योजना", "subsidy", "सब्सिडी", "anudan", "अनुदान",
		"pm kisan", "पीएम किसान", "fasal bima", "फसल बीमा", "pmfby",
		"kcc", "kisan credit", "किसान क्रेडिट", "loan", "rin", "ऋण",
		"sarkari", "सरकारी", "government", "registration", "panjikaran",
		"शासकीय योजना", "sarkari yojana",
	}},
	{CropInfo, []string{
		"how to grow", "kaise ugaye", "कैसे उगाएं", "cultivation", "kheti",
		"खेती", "farming", "ugana", "उगाना", "variety", "kism", "किस्म",
		"seed rate", "beej dar", "बीज दर", "sowing", "buwai", "बुवाई",
		"yield", "upaj", "उपज", "paidavar", "पैदावार", "harvesting",
		"katai", "कटाई", "crop information", "fasal", "फसल", "pik",
		"पीक", "pikaची माहिती", "kashi ugvave",
	}},
	{PestManagement, []string{
		"pest", "keeda", "कीड़ा", "keet", "कीट", "insect", "bug",
		"caterpillar", "sundi", "सुंडी", "borer", "beetle", "aphid",
		"mahu", "माहू", "whitefly", "safed makhi", "सफेद मक्खी",
		"control", "spray", "chidkav", "छिड़काव", "pesticide", "dawai",
		"दवाई", "chemical", "rasayan", "रसायन", "organic control",
		"jaivik niyantran", "जैविक नियंत्रण", "kida", "किडा", "kidiche",
	}},
	{IrrigationHelp, []string{
		"irrigation", "sinchai", "सिंचाई", "pani", "पानी", "water",
		"drip", "टपक", "sprinkler", "fuhara", "फुहारा", "bore", "tubewell",
		"canal", "nahar", "नहर", "paani dena", "पानी देना", "when to water",
		"kab pani de", "कब पानी दें", "water schedule", "panyache",
		"पाणी", "sinchan", "सिंचन",
	}},
	{SoilHelp, []string{
		"soil", "mitti", "मिट्टी", "bhumi", "भूमि", "land", "zameen", "जमीन",
		"ph", "testing", "jaanch", "जांच", "fertility", "upjaau", "उपजाऊ",
		"improvement", "sudhar", "सुधार", "type", "prakar", "प्रकार",
		"black soil", "kali mitti", "काली मिट्टी", "red soil", "lal mitti",
		"माती", "mati", "jaminichi",
	}},
	{OrganicFarming, []string{
		"organic", "jaivik", "जैविक", "natural", "prakritik", "प्राकृतिक",
		"bio", "chemical free", "rasayan mukt", "रसायन मुक्त", "desi",
		"देसी", "traditional", "paramparik", "पारंपरिक", "cow urine",
		"gomutra", "गोमूत्र", "panchagavya", "पंचगव्य", "jeevamrut",
		"जीवामृत", "सेंद्रिय", "sendriya", "नैसर्गिक", "naisargik",
	}},
	{SeedInfo, []string{
		"seed", "beej", "बीज", "variety", "kism", "किस्म", "hybrid",
		"sankar", "संकर", "certified", "pramanik", "प्रमाणिक",
		"treatment", "upchar", "उपचार", "germination", "ankuran", "अंकुरण",
		"where to buy", "kahan se le", "कहां से लें", "bian", "बियाणे",
	}},
	{HarvestHelp, []string{
		"harvest", "katai", "कटाई", "udai", "उड़ाई", "reaping",
		"when to harvest", "kab kate", "कब काटें", "maturity", "pakna",
		"पकना", "ready", "taiyar", "तैयार", "picking", "todna", "तोड़ना",
		"काढणी", "kadhni",
	}},
	{StorageAdvice, []string{
		"storage", "bhandaran", "भंडारण", "store", "rakhna", "रखना",
		"godown", "warehouse", "preservation", "sanrakshan", "संरक्षण",
		"moisture", "nami", "नमी", "rotting", "sadna", "सड़ना",
		"साठवणूक", "sathvanuk",
	}},
	{CropRotation, []string{
		"rotation", "fasal chakra", "फसल चक्र", "after", "baad", "बाद",
		"next crop", "agli fasal", "अगली फसल", "sequence", "kram", "क्रम",
		"intercrop", "sah fasal", "सह फसल", "फेरपालट", "ferpalat",
	}},
	{SeasonAdvice, []string{
		"season", "mausam", "मौसम", "ritu", "ऋतु", "kharif", "खरीफ",
		"rabi", "रबी", "zaid", "जायद", "summer", "winter", "monsoon",
		"which crop", "konsi fasal", "कौनसी फसल", "what to grow",
		"kya ugaye", "क्या उगाएं", "हंगाम", "hangam",
	}},
}
