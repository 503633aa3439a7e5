package slug

import "strings"

// arabicTransliteration maps Arabic and Persian letters to Latin.
// Short vowel marks (harakat) are dropped.
var arabicTransliteration = CharacterMap{
	'أ': "a", 'إ': "i", 'آ': "aa", 'ا': "a", 'ى': "a", 'ئ': "y", 'ؤ': "w",
	'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j", 'ح': "h", 'خ': "kh",
	'د': "d", 'ذ': "th", 'ر': "r", 'ز': "z", 'س': "s", 'ش': "sh",
	'ص': "s", 'ض': "d", 'ط': "t", 'ظ': "z", 'ع': "a", 'غ': "gh",
	'ف': "f", 'ق': "q", 'ك': "k", 'ل': "l", 'م': "m", 'ن': "n",
	'ه': "h", 'و': "w", 'ي': "y", 'ة': "h", 'ء': "a",

	// Persian additions
	'پ': "p", 'چ': "ch", 'ژ': "zh", 'گ': "g", 'ک': "k", 'ی': "y",

	// harakat, shadda, sukun, tatweel
	'\u064B': "", '\u064C': "", '\u064D': "", '\u064E': "", '\u064F': "",
	'\u0650': "", '\u0651': "", '\u0652': "", '\u0640': "",
}

// latinTransliteration strips diacritics from Latin letters, keeping case.
var latinTransliteration = CharacterMap{
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Ā': "A", 'Ă': "A", 'Ą': "A",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'ā': "a", 'ă': "a", 'ą': "a",
	'Æ': "AE", 'æ': "ae",
	'Ç': "C", 'Ć': "C", 'Č': "C", 'ç': "c", 'ć': "c", 'č': "c",
	'Ď': "D", 'Đ': "D", 'Ð': "D", 'ď': "d", 'đ': "d", 'ð': "d",
	'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E", 'Ē': "E", 'Ė': "E", 'Ę': "E", 'Ě': "E",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ē': "e", 'ė': "e", 'ę': "e", 'ě': "e",
	'Ğ': "G", 'ğ': "g",
	'Ì': "I", 'Í': "I", 'Î': "I", 'Ï': "I", 'Ī': "I", 'Į': "I", 'İ': "I",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ī': "i", 'į': "i", 'ı': "i",
	'Ł': "L", 'ł': "l",
	'Ñ': "N", 'Ń': "N", 'Ň': "N", 'ñ': "n", 'ń': "n", 'ň': "n",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O", 'Ø': "O", 'Ō': "O", 'Ő': "O",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o", 'ō': "o", 'ő': "o",
	'Œ': "OE", 'œ': "oe",
	'Ř': "R", 'ř': "r",
	'Ś': "S", 'Š': "S", 'Ș': "S", 'Ş': "S", 'ś': "s", 'š': "s", 'ș': "s", 'ş': "s",
	'ß': "ss",
	'Ť': "T", 'Ț': "T", 'ť': "t", 'ț': "t",
	'Þ': "TH", 'þ': "th",
	'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U", 'Ū': "U", 'Ů': "U", 'Ų': "U", 'Ű': "U",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ū': "u", 'ů': "u", 'ų': "u", 'ű': "u",
	'Ý': "Y", 'Ÿ': "Y", 'ý': "y", 'ÿ': "y",
	'Ź': "Z", 'Ž': "Z", 'Ż': "Z", 'ź': "z", 'ž': "z", 'ż': "z",
}

// digitTransliteration converts Arabic-Indic and Extended Arabic-Indic digits.
var digitTransliteration = CharacterMap{
	'٠': "0", '١': "1", '٢': "2", '٣': "3", '٤': "4",
	'٥': "5", '٦': "6", '٧': "7", '٨': "8", '٩': "9",
	'۰': "0", '۱': "1", '۲': "2", '۳': "3", '۴': "4",
	'۵': "5", '۶': "6", '۷': "7", '۸': "8", '۹': "9",
}

// quoteStripper deletes straight and typographic quotes.
var quoteStripper = strings.NewReplacer(
	`"`, "", "'", "", "`", "",
	"«", "", "»", "", "„", "", "‚", "", "‹", "", "›", "",
	"“", "", "”", "", "‘", "", "’", "",
)

// punctuationReplacer turns punctuation into spaces. strings.Replacer tries
// old strings in argument order at each position, so the ellipsis entries
// must stay ahead of the single dot.
var punctuationReplacer = strings.NewReplacer(
	"...", " ", "..", " ", "…", " ",
	".", " ", "(", " ", ")", " ", "[", " ", "]", " ", "{", " ", "}", " ",
	"،", " ", "؛", " ", ":", " ", ",", " ", ";", " ",
	"!", " ", "?", " ", "؟", " ", "*", " ", "+", " ", "=", " ", "~", " ",
	"@", " ", "#", " ", "$", " ", "%", " ", "^", " ", "&", " ", "|", " ",
	"\\", " ", "/", " ", "–", " ", "—", " ",
)
