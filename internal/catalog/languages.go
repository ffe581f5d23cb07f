// Package catalog holds the closed lookup tables the normalizer resolves raw
// source values against: ISO 639-1 languages and ISO 4217 currencies with
// approximate USD rates.
package catalog

import "strings"

// languageNames maps lowercased English language names to ISO 639-1 codes.
var languageNames = map[string]string{
	"abkhazian":         "ab",
	"afar":              "aa",
	"afrikaans":         "af",
	"akan":              "ak",
	"albanian":          "sq",
	"amharic":           "am",
	"arabic":            "ar",
	"aragonese":         "an",
	"armenian":          "hy",
	"assamese":          "as",
	"avaric":            "av",
	"avestan":           "ae",
	"aymara":            "ay",
	"azerbaijani":       "az",
	"bambara":           "bm",
	"bashkir":           "ba",
	"basque":            "eu",
	"belarusian":        "be",
	"bengali":           "bn",
	"bislama":           "bi",
	"bosnian":           "bs",
	"breton":            "br",
	"bulgarian":         "bg",
	"burmese":           "my",
	"catalan":           "ca",
	"chamorro":          "ch",
	"chechen":           "ce",
	"chichewa":          "ny",
	"chinese":           "zh",
	"chuvash":           "cv",
	"cornish":           "kw",
	"corsican":          "co",
	"cree":              "cr",
	"croatian":          "hr",
	"czech":             "cs",
	"danish":            "da",
	"divehi":            "dv",
	"dutch":             "nl",
	"dzongkha":          "dz",
	"english":           "en",
	"esperanto":         "eo",
	"estonian":          "et",
	"ewe":               "ee",
	"faroese":           "fo",
	"fijian":            "fj",
	"finnish":           "fi",
	"french":            "fr",
	"fulah":             "ff",
	"galician":          "gl",
	"georgian":          "ka",
	"german":            "de",
	"greek":             "el",
	"guarani":           "gn",
	"gujarati":          "gu",
	"haitian":           "ht",
	"haitian creole":    "ht",
	"hausa":             "ha",
	"hebrew":            "he",
	"herero":            "hz",
	"hindi":             "hi",
	"hiri motu":         "ho",
	"hungarian":         "hu",
	"icelandic":         "is",
	"ido":               "io",
	"igbo":              "ig",
	"indonesian":        "id",
	"interlingua":       "ia",
	"interlingue":       "ie",
	"inuktitut":         "iu",
	"inupiaq":           "ik",
	"irish":             "ga",
	"italian":           "it",
	"japanese":          "ja",
	"javanese":          "jv",
	"kalaallisut":       "kl",
	"kannada":           "kn",
	"kanuri":            "kr",
	"kashmiri":          "ks",
	"kazakh":            "kk",
	"khmer":             "km",
	"kikuyu":            "ki",
	"kinyarwanda":       "rw",
	"kirghiz":           "ky",
	"kyrgyz":            "ky",
	"komi":              "kv",
	"kongo":             "kg",
	"korean":            "ko",
	"kurdish":           "ku",
	"kwanyama":          "kj",
	"lao":               "lo",
	"latin":             "la",
	"latvian":           "lv",
	"limburgish":        "li",
	"lingala":           "ln",
	"lithuanian":        "lt",
	"luba-katanga":      "lu",
	"luxembourgish":     "lb",
	"macedonian":        "mk",
	"malagasy":          "mg",
	"malay":             "ms",
	"malayalam":         "ml",
	"maltese":           "mt",
	"manx":              "gv",
	"maori":             "mi",
	"marathi":           "mr",
	"marshallese":       "mh",
	"mongolian":         "mn",
	"nauru":             "na",
	"navajo":            "nv",
	"ndonga":            "ng",
	"nepali":            "ne",
	"north ndebele":     "nd",
	"northern sami":     "se",
	"norwegian":         "no",
	"norwegian bokmal":  "nb",
	"norwegian nynorsk": "nn",
	"occitan":           "oc",
	"ojibwe":            "oj",
	"oriya":             "or",
	"oromo":             "om",
	"ossetian":          "os",
	"pali":              "pi",
	"pashto":            "ps",
	"persian":           "fa",
	"farsi":             "fa",
	"polish":            "pl",
	"portuguese":        "pt",
	"punjabi":           "pa",
	"quechua":           "qu",
	"romanian":          "ro",
	"romansh":           "rm",
	"rundi":             "rn",
	"russian":           "ru",
	"samoan":            "sm",
	"sango":             "sg",
	"sanskrit":          "sa",
	"sardinian":         "sc",
	"scottish gaelic":   "gd",
	"serbian":           "sr",
	"shona":             "sn",
	"sichuan yi":        "ii",
	"sindhi":            "sd",
	"sinhala":           "si",
	"slovak":            "sk",
	"slovenian":         "sl",
	"somali":            "so",
	"south ndebele":     "nr",
	"southern sotho":    "st",
	"spanish":           "es",
	"sundanese":         "su",
	"swahili":           "sw",
	"swati":             "ss",
	"swedish":           "sv",
	"tagalog":           "tl",
	"tahitian":          "ty",
	"tajik":             "tg",
	"tamil":             "ta",
	"tatar":             "tt",
	"telugu":            "te",
	"thai":              "th",
	"tibetan":           "bo",
	"tigrinya":          "ti",
	"tonga":             "to",
	"tsonga":            "ts",
	"tswana":            "tn",
	"turkish":           "tr",
	"turkmen":           "tk",
	"twi":               "tw",
	"uighur":            "ug",
	"uyghur":            "ug",
	"ukrainian":         "uk",
	"urdu":              "ur",
	"uzbek":             "uz",
	"venda":             "ve",
	"vietnamese":        "vi",
	"volapuk":           "vo",
	"walloon":           "wa",
	"welsh":             "cy",
	"western frisian":   "fy",
	"wolof":             "wo",
	"xhosa":             "xh",
	"yiddish":           "yi",
	"yoruba":            "yo",
	"zhuang":            "za",
	"zulu":              "zu",
}

// languageCodes is the reverse index, built once at init.
var languageCodes = func() map[string]bool {
	m := make(map[string]bool, len(languageNames))
	for _, code := range languageNames {
		m[code] = true
	}
	return m
}()

// LanguageCodeByName resolves a full English language name to its ISO 639-1
// code. Lookup is case-insensitive.
func LanguageCodeByName(name string) (string, bool) {
	code, ok := languageNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// IsLanguageCode reports whether code is a known two-letter language code.
func IsLanguageCode(code string) bool {
	return languageCodes[strings.ToLower(code)]
}
