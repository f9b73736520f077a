package restorer

import (
	"math"
	"strings"
)

// =====================
// Сегментация: DP по позициям строки
// =====================

const costEps = 1e-9

type Segmenter struct {
	model *Model
}

func NewSegmenter(m *Model) *Segmenter {
	return &Segmenter{model: m}
}

// Segment находит разбиение строки минимальной суммарной стоимости.
// Уже присутствующие пробелы — жёсткие границы: каждый непрерывный кусок
// решается независимо, пробел никогда не удаляется. Смещения в Span
// считаются в рунах строки без пробелов.
func (s *Segmenter) Segment(text string) Segmentation {
	var seg Segmentation
	offset := 0
	for _, run := range strings.Fields(text) {
		runes := []rune(run)
		seg = append(seg, s.segmentRun(runes, offset)...)
		offset += len(runes)
	}
	return seg
}

// Restore возвращает строку с восстановленными пробелами.
func (s *Segmenter) Restore(text string) string {
	return Spaced(s.Segment(text))
}

// segmentRun: best[i] — минимальная стоимость разбиения префикса длины i,
// back[i] — начало последнего слова. Кандидаты перебираются от самых
// длинных к коротким; сменить выбор может только строго лучшая стоимость
// либо равная при замене неизвестного слова на словарное. Так ничья
// детерминированно уходит более длинному слову.
func (s *Segmenter) segmentRun(runes []rune, offset int) []Span {
	n := len(runes)
	if n == 0 {
		return nil
	}
	maxLen := s.model.MaxWordLen()

	best := make([]float64, n+1)
	back := make([]int, n+1)
	lastKnown := make([]bool, n+1)
	for i := 1; i <= n; i++ {
		best[i] = math.Inf(1)
	}

	for i := 1; i <= n; i++ {
		for j := max(0, i-maxLen); j < i; j++ {
			word := strings.ToLower(string(runes[j:i]))
			cost, known := s.model.CostOf(word)
			total := best[j] + cost

			improve := total < best[i]-costEps
			upgrade := !improve && total <= best[i]+costEps && known && !lastKnown[i]
			if !improve && !upgrade {
				continue
			}
			if total < best[i] {
				best[i] = total
			}
			back[i] = j
			lastKnown[i] = known
		}
	}

	var spans []Span
	for i := n; i > 0; i = back[i] {
		j := back[i]
		word := string(runes[j:i])
		cost, known := s.model.CostOf(strings.ToLower(word))
		spans = append(spans, Span{
			Text:  word,
			Start: offset + j,
			End:   offset + i,
			Cost:  cost,
			Known: known,
		})
	}
	for l, r := 0, len(spans)-1; l < r; l, r = l+1, r-1 {
		spans[l], spans[r] = spans[r], spans[l]
	}
	return spans
}
