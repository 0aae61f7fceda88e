package lang

// cropEntry maps a canonical crop id to its transliterated spelling variants
// (Hindi and Marathi names written in Roman script).
type cropEntry struct {
	ID       string
	Variants []string
}

// cropLexicon covers the crops the advisory service knows about. The
// canonical id itself also matches as a substring.
var cropLexicon = []cropEntry{
	{"wheat", []string{"gehu", "gehun", "gahu", "gehoo"}},
	{"rice", []string{"dhan", "chawal", "bhat", "chaval"}},
	{"cotton", []string{"kapas", "rui", "kapaas"}},
	{"sugarcane", []string{"ganna", "ganne", "oos", "us"}},
	{"maize", []string{"makka", "makkai", "bhutta", "makai"}},
	{"soybean", []string{"soyabin", "soya", "soyabeen"}},
	{"groundnut", []string{"mungfali", "moongfali", "singdana", "mungphali"}},
	{"mustard", []string{"sarson", "sarso", "rai", "mohri"}},
	{"chickpea", []string{"chana", "chhole", "harbhara", "gram"}},
	{"pigeon_pea", []string{"arhar", "toor", "tur", "tuvar"}},
	{"lentil", []string{"masoor", "masur", "dal"}},
	{"green_gram", []string{"moong", "mung", "moog"}},
	{"black_gram", []string{"urad", "udad", "urid"}},
	{"tomato", []string{"tamatar", "tamater"}},
	{"onion", []string{"pyaz", "pyaj", "kanda", "pyaaz"}},
	{"potato", []string{"aloo", "batata", "aaloo"}},
	{"brinjal", []string{"baingan", "begun", "wange", "vangi"}},
	{"chilli", []string{"mirch", "mirchi", "lal mirch"}},
	{"okra", []string{"bhindi", "bhendi", "bhinda"}},
	{"cabbage", []string{"pattagobhi", "bandgobhi", "kobi"}},
	{"cauliflower", []string{"phulgobhi", "gobi", "fulkobi"}},
	{"mango", []string{"aam", "amba", "keri"}},
	{"banana", []string{"kela", "kele"}},
	{"papaya", []string{"papita", "papai"}},
	{"guava", []string{"amrood", "peru", "amrud"}},
	{"turmeric", []string{"haldi", "halad"}},
	{"ginger", []string{"adrak", "aale", "adarak"}},
	{"coriander", []string{"dhaniya", "kothimbir", "dhania"}},
	{"cumin", []string{"jeera", "jire", "zeera"}},
	{"fenugreek", []string{"methi"}},
	{"bajra", []string{"bajra", "bajri"}},
	{"jowar", []string{"jowar", "jwari", "jowari"}},
	{"grapes", []string{"angoor", "draksh", "angur"}},
	{"pomegranate", []string{"anaar", "dalimb", "anar"}},
	{"cucumber", []string{"kheera", "kakdi", "khira"}},
	{"pumpkin", []string{"kaddu", "bhopla", "lal bhopla"}},
}

// marathiWords are Devanagari words specific to Marathi, used to split
// Marathi from Hindi once Devanagari script is detected.
var marathiWords = []string{
	"आहे", "करा", "काय", "कसे", "माहिती", "पाहिजे", "होतो", "आणि",
	"मला", "तुम्ही", "हवे", "कशी", "कोणती", "आवश्यक", "सांगा",
	"पीक", "माती", "पाऊस", "शेती", "शेतकरी", "भाव", "विक्री",
}

// hinglishIndicators are common Hindi function words written in Roman script.
var hinglishIndicators = []string{
	"kaise", "kya", "kab", "kahan", "kitna", "kitni", "kaun",
	"mera", "meri", "mere", "hai", "hain", "tha", "thi",
	"karna", "dena", "lena", "jana", "aana", "chahiye",
	"accha", "theek", "bahut", "thoda", "zyada", "kam",
	"wala", "wali", "ke liye", "mein", "par", "se",
}

// marathiRomanIndicators are common Marathi words written in Roman script.
var marathiRomanIndicators = []string{
	"kashi", "kay", "kiti", "kuthe", "mazha", "mazi",
	"ahe", "aahe", "pahije", "sangha", "aamhi", "tumhi",
	"shetkari", "sheti", "pik", "pani",
}

// seasonKeywords maps each cropping season to its multilingual triggers.
var seasonKeywords = []struct {
	ID       string
	Keywords []string
}{
	{"kharif", []string{"kharif", "खरीफ", "खरीप", "monsoon", "barsaat", "बरसात", "june", "july"}},
	{"rabi", []string{"rabi", "रबी", "रब्बी", "winter", "sardi", "सर्दी", "october", "november"}},
	{"zaid", []string{"zaid", "जायद", "summer", "garmi", "गर्मी", "march", "april", "उन्हाळी"}},
}

// indianStates lists state names and common abbreviations for regional context.
var indianStates = []string{
	"maharashtra", "महाराष्ट्र", "madhya pradesh", "मध्य प्रदेश", "mp",
	"uttar pradesh", "उत्तर प्रदेश", "up", "punjab", "पंजाब",
	"haryana", "हरियाणा", "rajasthan", "राजस्थान", "gujarat", "गुजरात",
	"karnataka", "कर्नाटक", "andhra", "आंध्र", "telangana", "तेलंगाना",
	"tamil nadu", "तमिल नाडु", "kerala", "केरल", "bihar", "बिहार",
	"west bengal", "पश्चिम बंगाल", "odisha", "ओडिशा", "jharkhand", "झारखंड",
	"chhattisgarh", "छत्तीसगढ़", "assam", "असम",
}

// chemicalKeywords mark a message as a chemical/dosage query. A match sets
// the requires-farm-size flag: no dosage is ever emitted without a known
// farm size.
var chemicalKeywords = []string{
	"dose", "dosage", "kharakh", "खुराक", "quantity", "matra", "मात्रा",
	"spray", "छिड़काव", "chidkav", "kitna dale", "कितना डालें",
	"how much", "per acre", "प्रति एकड़", "per hectare", "प्रति हेक्टेयर",
	"mixing ratio", "anupat", "अनुपात", "pesticide", "कीटनाशक",
	"fungicide", "फफूंदनाशक", "herbicide", "खरपतवारनाशी",
	"insecticide", "कीटनाशक दवाई",
}
