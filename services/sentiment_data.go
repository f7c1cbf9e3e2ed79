package services

// Multi-language sentiment lexicon. Each supported language carries the
// five fixed sentiment categories; the Gen Z slang list is universal and
// checked independently of the detected language.

// sentimentLanguages fixes the iteration order used by the language
// detector so that score ties resolve deterministically.
var sentimentLanguages = []string{"en", "hi", "es", "fr", "mr", "bn", "ta", "te"}

// languageNames maps supported language codes to display names.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hinglish",
	"es": "Spanish",
	"fr": "French",
	"mr": "Marathi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
}

var globalSentiment = map[string]SentimentLexicon{
	"en": {
		CategoryRomance: {
			"love", "baby", "babe", "honey", "sweetheart", "darling", "cutie", "beautiful",
			"handsome", "miss you", "miss u", "i love you", "ily", "forever", "heart",
			"kiss", "hug", "cuddle", "date", "together", "boyfriend", "girlfriend",
			"boo", "my love", "angel", "precious",
		},
		CategoryFight: {
			"angry", "mad", "upset", "fight", "argue", "leave me alone", "go away",
			"hate", "stupid", "idiot", "block", "break up", "done", "over", "whatever",
			"fine", "bye", "goodbye", "sorry", "apologize", "forgive",
		},
		CategoryFood: {
			"hungry", "food", "eat", "lunch", "dinner", "breakfast", "snack", "pizza",
			"burger", "coffee", "restaurant", "order", "cook", "recipe", "yummy",
			"delicious", "starving", "takeout", "delivery",
		},
		CategoryMarriage: {
			"marry", "wedding", "engagement", "ring", "proposal", "future", "forever",
			"kids", "children", "family", "parents", "husband", "wife", "settle down",
			"move in", "live together",
		},
		CategoryWaiting: {
			"wait", "waiting", "where are you", "coming", "late", "hurry", "reply",
			"respond", "online", "seen", "read", "busy", "free",
		},
	},
	"hi": {
		CategoryRomance: {
			"babu", "shona", "jaan", "jaanu", "baby", "pyar", "ishq", "mohabbat",
			"dil", "meri jaan", "sweety", "cutie", "sona", "pagal", "miss u", "miss kiya",
			"love you", "yaad", "sapna", "chand", "sitara", "janeman", "dilruba",
			"mashallah", "kya baat hai",
		},
		CategoryFight: {
			"gussa", "naraz", "pagal", "stupid", "bewakoof", "block", "break up",
			"mat baat karo", "dur raho", "khatam", "over", "jane do", "chod do", "bakwas",
			"jhagda", "problem", "sorry", "maaf karo", "galti",
		},
		CategoryFood: {
			"khana", "bhook", "khana khaya", "zomato", "swiggy", "biryani", "chai",
			"coffee", "lunch", "dinner", "breakfast", "nashta", "momos", "pizza",
			"burger", "roti", "daal", "sabzi", "pakora", "samosa",
		},
		CategoryMarriage: {
			"shaadi", "wedding", "mummy", "papa", "parents", "future", "rishta", "wife",
			"husband", "ghar", "family", "biwi", "pati", "dulhan", "dulha", "mangalsutra",
			"mehendi", "sangeet", "haldi",
		},
		CategoryWaiting: {
			"kaha ho", "kidhar ho", "aao", "jaldi", "late", "reply karo", "online ho",
			"busy ho", "free ho", "baat karo", "call karo", "message karo", "seen karke",
			"blue tick",
		},
	},
	"es": {
		CategoryRomance: {
			"amor", "bebe", "te amo", "te quiero", "corazon", "mi vida", "cariño",
			"hermosa", "hermoso", "guapo", "guapa", "linda", "lindo", "beso", "besito",
			"abrazo", "te extraño", "mi amor", "preciosa", "cielo", "princesa", "rey",
			"reina",
		},
		CategoryFight: {
			"pelea", "enojado", "enojada", "molesto", "triste", "dejame", "vete",
			"estupido", "idiota", "terminamos", "adios", "perdon", "lo siento", "disculpa",
			"problema", "mal", "odio",
		},
		CategoryFood: {
			"comida", "hambre", "comer", "almuerzo", "cena", "desayuno", "pizza",
			"tacos", "restaurante", "cocinar", "delicioso", "rico",
		},
		CategoryMarriage: {
			"casarnos", "boda", "matrimonio", "anillo", "familia", "esposo", "esposa",
			"futuro", "hijos", "padres", "mama", "papa", "suegra",
		},
		CategoryWaiting: {
			"espera", "donde estas", "llegas", "tarde", "rapido", "responde", "mensaje",
			"conectado", "ocupado", "libre",
		},
	},
	"fr": {
		CategoryRomance: {
			"amour", "cheri", "cherie", "je t'aime", "bisous", "bebe", "mon coeur",
			"ma vie", "mon amour", "belle", "beau", "magnifique", "tu me manques",
			"calin", "tendresse", "passion", "romantique",
		},
		CategoryFight: {
			"fache", "en colere", "triste", "dispute", "probleme", "laisse moi", "va-t-en",
			"idiot", "stupide", "c'est fini", "au revoir", "pardon", "desole", "excuse moi",
		},
		CategoryFood: {
			"manger", "faim", "dejeuner", "diner", "petit dejeuner", "cuisine", "restaurant",
			"delicieux", "croissant", "cafe", "vin",
		},
		CategoryMarriage: {
			"mariage", "fiancailles", "bague", "famille", "mari", "femme", "enfants",
			"parents", "maman", "papa", "avenir",
		},
		CategoryWaiting: {
			"attends", "ou es-tu", "en retard", "vite", "reponds", "message", "connecte",
			"occupe", "libre",
		},
	},
	"mr": {
		CategoryRomance: {
			"pillu", "sona", "jeev", "prem", "shona", "babu", "mazha", "mazhi", "sakhya",
			"gulabi", "rani", "raja", "जीव", "प्रेम", "सोना", "पिल्लू", "miss karte",
			"aavdto", "aavdte", "sundar",
		},
		CategoryFight: {
			"rag", "raag", "nako", "bas", "chup", "dok", "khau", "tras", "राग", "नको",
			"बस", "चूप", "problem", "jhagda", "sorry", "maaf kar", "galti", "चुकी",
		},
		CategoryFood: {
			"jevan", "khalla", "bhuk", "jewle", "khato", "जेवण", "खाल्लं", "भूक",
			"vada pav", "misal", "pohe", "chai", "coffee", "biryani",
		},
		CategoryMarriage: {
			"lagna", "navra", "bayko", "future", "aai", "baba", "लग्न", "नवरा", "बायको",
			"आई", "बाबा", "family", "ghar", "संसार",
		},
		CategoryWaiting: {
			"kuthe", "kuthay", "ye", "jaldi", "late", "reply kar", "busy", "free",
			"कुठे", "ये", "जल्दी",
		},
	},
	"bn": {
		CategoryRomance: {
			"bhalobashi", "shona", "babu", "jan", "kolija", "mon", "tumi", "ভালোবাসি",
			"সোনা", "বাবু", "জান", "মন", "তুমি", "miss korchi", "sundor", "সুন্দর",
			"prem", "প্রেম",
		},
		CategoryFight: {
			"rag", "matha", "kharap", "ja", "birokto", "dur", "রাগ", "মাথা", "খারাপ",
			"যা", "বিরক্ত", "দূর", "sorry", "maaf koro",
		},
		CategoryFood: {
			"kheyecho", "khabar", "bhat", "biryani", "khabo", "খেয়েছ", "খাবার", "ভাত",
			"বিরিয়ানি", "খাবো", "rosogolla", "mishti",
		},
		CategoryMarriage: {
			"biye", "bou", "bor", "shongshar", "ma", "baba", "বিয়ে", "বউ", "বর",
			"সংসার", "মা", "বাবা", "family", "ghor",
		},
		CategoryWaiting: {
			"kothay", "esho", "jaldi", "late", "reply", "busy", "free", "কোথায়",
			"এসো", "জল্দি",
		},
	},
	"ta": {
		CategoryRomance: {
			"chellam", "pattu", "anbu", "kadhal", "love", "baby", "di", "da", "செல்லம்",
			"பட்டு", "அன்பு", "காதல்", "thangam", "தங்கம்", "kannu", "கண்ணு", "roja",
			"ரோஜா",
		},
		CategoryFight: {
			"kovam", "poda", "podi", "loos", "venam", "po", "கோவம்", "போடா", "போடி",
			"வேண்டாம்", "போ", "sorry", "problem",
		},
		CategoryFood: {
			"saptiya", "sapadu", "biryani", "pasi", "lunch", "சாப்டியா", "சாப்பாடு",
			"பசி", "dosa", "idli", "filter coffee",
		},
		CategoryMarriage: {
			"kalyanam", "pondati", "purushan", "future", "veedu", "கல்யாணம்", "பொண்டாட்டி",
			"புருஷன்", "வீடு", "amma", "appa", "அம்மா", "அப்பா",
		},
		CategoryWaiting: {
			"enga", "va", "vendam", "late", "reply pannu", "busy", "free", "எங்க",
			"வா",
		},
	},
	"te": {
		CategoryRomance: {
			"bangaram", "prema", "love", "kanna", "babu", "bujjulu", "బంగారం", "ప్రేమ",
			"కన్నా", "బాబు", "బుజ్జులు", "chinni", "చిన్ని", "miss avutunna", "మిస్",
		},
		CategoryFight: {
			"kopam", "oddu", "chiraaku", "po", "maata", "కోపం", "వద్దు", "చిరాకు",
			"పో", "మాట", "sorry", "problem",
		},
		CategoryFood: {
			"thinnava", "thindi", "bhojanam", "aakali", "తిన్నావా", "తిండి", "భోజనం",
			"ఆకలి", "biryani", "dosa", "idli",
		},
		CategoryMarriage: {
			"pelli", "mogudu", "pellam", "family", "పెళ్లి", "మొగుడు", "పెళ్ళాం",
			"amma", "nanna", "అమ్మ", "నాన్న",
		},
		CategoryWaiting: {
			"ekkada", "ra", "raa", "late", "reply", "busy", "free", "ఎక్కడ", "రా",
		},
	},
}

// slangDictionary is language-agnostic internet slang.
var slangDictionary = []string{
	"delulu", "solulu", "red flag", "green flag", "beige flag", "ick", "situationship",
	"talking stage", "ghosting", "breadcrumbing", "rizz", "cooked", "ate", "slay",
	"no cap", "based", "snatched", "periodt", "sending", "lowkey", "highkey",
	"vibes", "bussin", "mid", "sus", "bet", "tea", "spill", "main character",
	"npc", "toxic", "gaslight", "gatekeep", "girlboss", "pick me", "bruh", "bestie",
	"understood the assignment", "lives rent free", "its giving", "core", "era",
	"coded", "canon", "ship",
}

// commonNicknames are pet names counted even when the user configures
// no custom nicknames.
var commonNicknames = []string{
	"babu", "shona", "baby", "jaan", "jaanu", "love", "babe", "honey", "sweetheart",
	"darling", "cutie",
}
