package translit

// latinOf is the primary Ukrainian Cyrillic -> Latin table. Russian-only
// letters are included so that Russian spellings of roster names still
// transliterate.
var latinOf = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d",
	'е': "e", 'є': "ye", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i",
	'ї': "yi", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ь': "", 'ю': "yu", 'я': "ya",
	'ё': "yo", 'ы': "y", 'э': "e", 'ъ': "",
}

// latinAlternatives lists other plausible Latin spellings per letter, most
// common first. The primary spelling from latinOf is never repeated here.
var latinAlternatives = map[rune][]string{
	'г': {"g"},
	'и': {"i"},
	'й': {"i", "j"},
	'х': {"h"},
	'є': {"ie", "e"},
	'ї': {"i", "ji"},
	'ю': {"iu", "ju"},
	'я': {"ia", "ja"},
	'ц': {"c", "tz"},
	'щ': {"sch"},
	'ж': {"j"},
}

// digraph is a multi-letter Latin sequence with its Cyrillic replacement.
type digraph struct {
	latin    string
	cyrillic string
}

// cyrillicDigraphs must stay ordered longest first so that "shch" wins over "sh".
var cyrillicDigraphs = []digraph{
	{"shch", "щ"},
	{"sch", "щ"},
	{"zh", "ж"},
	{"ch", "ч"},
	{"kh", "х"},
	{"sh", "ш"},
	{"ts", "ц"},
	{"iy", "ій"},
	{"ya", "я"}, {"ia", "я"}, {"ja", "я"},
	{"ye", "є"}, {"ie", "є"}, {"je", "є"},
	{"yu", "ю"}, {"iu", "ю"}, {"ju", "ю"},
	{"yi", "ї"},
}

var cyrillicOf = map[rune]string{
	'a': "а", 'b': "б", 'c': "к", 'd': "д", 'e': "е", 'f': "ф",
	'g': "г", 'h': "г", 'i': "і", 'j': "й", 'k': "к", 'l': "л",
	'm': "м", 'n': "н", 'o': "о", 'p': "п", 'q': "к", 'r': "р",
	's': "с", 't': "т", 'u': "у", 'v': "в", 'w': "в", 'x': "кс",
	'y': "и", 'z': "з",
}

// postCorrections repair artifacts of letter-by-letter substitution.
var postCorrections = []struct {
	from, to string
}{
	{"йа", "я"},
	{"йу", "ю"},
	{"йе", "є"},
	{"йі", "ї"},
	{"ии", "ий"},
}
