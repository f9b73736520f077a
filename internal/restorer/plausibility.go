package restorer

// Таблицы правдоподобия для неизвестных слов: кириллические цепочки,
// похожие на русские слова, штрафуются мягче, чем произвольный мусор.

var (
	vowels     = map[rune]bool{}
	consonants = map[rune]bool{}
)

func init() {
	for _, r := range "аеёиоуыэюя" {
		vowels[r] = true
	}
	for _, r := range "бвгджзйклмнпрстфхцчшщ" {
		consonants[r] = true
	}
}

// Частые окончания существительных, глаголов и прилагательных.
var plausibleEndings = []string{
	"ость", "ение", "ание", "ция",
	"ому", "ему", "ого", "его", "ыми", "ими",
	"ть", "ся", "ет", "ит", "ат", "ят", "ют", "ут", "ал", "ил",
	"ом", "ой", "ий", "ая", "ое", "ые", "ый", "ых", "ым",
	"ам", "ах", "ми", "ов", "ев", "ей", "ую", "юю", "ие", "ее",
}

// looksLikeRussianWord: не короче трёх рун, только кириллица, есть хотя бы
// одна гласная и одна согласная, не больше четырёх согласных подряд.
func looksLikeRussianWord(word string) bool {
	runes := []rune(word)
	if len(runes) < 3 {
		return false
	}
	nVowels, nCons, streak := 0, 0, 0
	for _, r := range runes {
		if !isCyrillic(r) {
			return false
		}
		switch {
		case vowels[r]:
			nVowels++
			streak = 0
		case consonants[r]:
			nCons++
			streak++
			if streak > 4 {
				return false
			}
		default:
			// ъ, ь и прочие знаки не сбрасывают и не наращивают цепочку
		}
	}
	return nVowels > 0 && nCons > 0
}

func hasPlausibleEnding(word string) bool {
	runes := []rune(word)
	if len(runes) < 3 {
		return false
	}
	for _, e := range plausibleEndings {
		er := []rune(e)
		if len(er) >= len(runes) {
			continue
		}
		if string(runes[len(runes)-len(er):]) == e {
			return true
		}
	}
	return false
}
