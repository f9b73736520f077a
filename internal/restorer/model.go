package restorer

import (
	"errors"
	"log"
	"math"
	"strings"

	"github.com/vcaesar/cedar"

	"respacer/internal/dictionary"
)

// ErrNoDictionaries — ни один словарный источник не загрузился;
// восстанавливать пробелы без словаря нельзя.
var ErrNoDictionaries = errors.New("ни один словарный источник не загружен")

// =====================
// Частотная модель
// =====================

// Model — неизменяемая после построения частотная модель: слово → стоимость.
// Чем меньше стоимость, тем вероятнее слово. Известные слова лежат в
// префиксном боре, стоимость = log(totalFreq/freq); неизвестные оцениваются
// штрафной функцией от длины.
type Model struct {
	cfg        Config
	trie       *cedar.Cedar
	costs      []float64
	totalFreq  float64
	maxCost    float64
	maxWordLen int
	perChar    float64
}

// NewModel строит модель из источников в порядке убывания приоритета:
// слово берётся из первого источника, где оно встретилось.
func NewModel(cfg Config, sources ...dictionary.Source) (*Model, error) {
	merged := make(map[string]float64)
	loaded := 0
	for _, src := range sources {
		added, skipped := 0, 0
		err := src.Each(func(word string, weight float64) {
			w, ok := normalizeWord(word, cfg.MinWordLen, cfg.MaxWordLen)
			if !ok || weight <= 0 {
				skipped++
				return
			}
			if _, dup := merged[w]; dup {
				return
			}
			merged[w] = weight
			added++
		})
		if err != nil {
			log.Printf("предупреждение: источник %s не загружен: %v", src.Name(), err)
			continue
		}
		loaded++
		log.Printf("источник %s: %d слов (%d строк пропущено)", src.Name(), added, skipped)
	}
	if loaded == 0 {
		return nil, ErrNoDictionaries
	}

	m := &Model{cfg: cfg, trie: cedar.New()}
	for _, f := range merged {
		m.totalFreq += f
	}
	for w, f := range merged {
		cost := math.Log(m.totalFreq / f)
		if cost < 0 {
			cost = 0
		}
		m.trie.Insert([]byte(w), len(m.costs))
		m.costs = append(m.costs, cost)
		if cost > m.maxCost {
			m.maxCost = cost
		}
		if n := len([]rune(w)); n > m.maxWordLen {
			m.maxWordLen = n
		}
	}
	m.perChar = cfg.UnknownPerChar
	if m.perChar <= 0 {
		// Строго дороже за символ, чем самое редкое известное слово.
		m.perChar = m.maxCost + 1
	}
	return m, nil
}

// Contains сообщает, есть ли слово хотя бы в одном источнике.
func (m *Model) Contains(word string) bool {
	_, ok := m.lookup(word)
	return ok
}

// CostOf возвращает стоимость слова и признак «слово известно».
// Для неизвестных слов — штраф UnknownBase + perChar·len; правдоподобные
// русские цепочки дешевле за символ, но базовый штраф за токен сохраняется,
// поэтому дробить неизвестный кусок всегда невыгодно.
func (m *Model) CostOf(word string) (float64, bool) {
	if c, ok := m.lookup(word); ok {
		return c, true
	}
	per := m.perChar
	if looksLikeRussianWord(word) {
		per *= m.cfg.PlausibleDiscount
		if hasPlausibleEnding(word) {
			per *= 1 - m.cfg.EndingDiscount
		}
	}
	return m.cfg.UnknownBase + per*float64(len([]rune(word))), false
}

// MaxWordLen — ограничение длины кандидата для DP: самое длинное слово
// словаря, но не больше конфигурационного потолка.
func (m *Model) MaxWordLen() int {
	if m.maxWordLen == 0 || m.maxWordLen > m.cfg.MaxWordLen {
		return m.cfg.MaxWordLen
	}
	return m.maxWordLen
}

func (m *Model) lookup(word string) (float64, bool) {
	id, err := m.trie.Jump([]byte(word), 0)
	if err != nil {
		return 0, false
	}
	val, err := m.trie.Value(id)
	if err != nil {
		return 0, false
	}
	return m.costs[val], true
}

// normalizeWord приводит слово к канонической форме и отбраковывает мусор:
// пробелы, знаки, кроме внутреннего дефиса, пустые и слишком длинные строки.
func normalizeWord(word string, minLen, maxLen int) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "", false
	}
	runes := []rune(w)
	if len(runes) < minLen || len(runes) > maxLen {
		return "", false
	}
	for i, r := range runes {
		if isLetterOrDigit(r) {
			continue
		}
		if r == '-' && i > 0 && i < len(runes)-1 {
			continue
		}
		return "", false
	}
	return w, true
}
