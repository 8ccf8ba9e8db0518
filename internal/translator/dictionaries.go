package translator

// phraseDictionaries maps target language code to a table of canonical
// lowercase English phrases and their translations. Loaded once at
// construction and read-only for the process lifetime.
var phraseDictionaries = map[string]map[string]string{
	"hi": {
		"hello":        "नमस्ते",
		"world":        "दुनिया",
		"good morning": "सुप्रभात",
		"good night":   "शुभ रात्रि",
		"good":         "अच्छा",
		"thank you":    "धन्यवाद",
		"how are you":  "आप कैसे हैं",
		"welcome":      "स्वागत है",
		"goodbye":      "अलविदा",
		"please":       "कृपया",
		"friend":       "दोस्त",
		"water":        "पानी",
		"food":         "खाना",
	},
	"ta": {
		"hello":        "வணக்கம்",
		"world":        "உலகம்",
		"good morning": "காலை வணக்கம்",
		"good night":   "இனிய இரவு",
		"good":         "நல்லது",
		"thank you":    "நன்றி",
		"how are you":  "எப்படி இருக்கிறீர்கள்",
		"welcome":      "வரவேற்பு",
		"goodbye":      "பிரியாவிடை",
		"please":       "தயவுசெய்து",
		"friend":       "நண்பர்",
		"water":        "தண்ணீர்",
		"food":         "உணவு",
	},
	"te": {
		"hello":        "హలో",
		"world":        "ప్రపంచం",
		"good morning": "శుభోదయం",
		"good night":   "శుభ రాత్రి",
		"good":         "మంచి",
		"thank you":    "ధన్యవాదాలు",
		"how are you":  "మీరు ఎలా ఉన్నారు",
		"welcome":      "స్వాగతం",
		"goodbye":      "వీడ్కోలు",
		"please":       "దయచేసి",
		"friend":       "స్నేహితుడు",
		"water":        "నీరు",
		"food":         "ఆహారం",
	},
	"bn": {
		"hello":        "হ্যালো",
		"world":        "বিশ্ব",
		"good morning": "সুপ্রভাত",
		"good night":   "শুভ রাত্রি",
		"good":         "ভালো",
		"thank you":    "ধন্যবাদ",
		"how are you":  "কেমন আছেন",
		"welcome":      "স্বাগতম",
		"goodbye":      "বিদায়",
		"please":       "অনুগ্রহ করে",
		"friend":       "বন্ধু",
		"water":        "জল",
		"food":         "খাবার",
	},
	"kn": {
		"hello":        "ಹಲೋ",
		"world":        "ವಿಶ್ವ",
		"good morning": "ಶುಭೋದಯ",
		"good night":   "ಶುಭ ರಾತ್ರಿ",
		"good":         "ಒಳ್ಳೆಯದು",
		"thank you":    "ಧನ್ಯವಾದಗಳು",
		"how are you":  "ಹೇಗಿದ್ದೀರಿ",
		"welcome":      "ಸ್ವಾಗತ",
		"goodbye":      "ವಿದಾಯ",
		"please":       "ದಯವಿಟ್ಟು",
		"friend":       "ಸ್ನೇಹಿತ",
		"water":        "ನೀರು",
		"food":         "ಆಹಾರ",
	},
}

// passthroughSuffixes annotates text returned unchanged because no phrase
// matched. Languages without an entry get a generic "(in <code>)" suffix.
var passthroughSuffixes = map[string]string{
	"hi": "(in Hindi)",
	"ta": "(in Tamil)",
	"te": "(in Telugu)",
	"bn": "(in Bengali)",
	"kn": "(in Kannada)",
}
