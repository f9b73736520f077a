package restorer

import "strings"

// Positions возвращает смещения (в рунах строки без пробелов), перед
// которыми нужно вставить пробел: начала всех слов, кроме первого.
func Positions(seg Segmentation) []int {
	if len(seg) < 2 {
		return []int{}
	}
	out := make([]int, 0, len(seg)-1)
	for _, sp := range seg[1:] {
		out = append(out, sp.Start)
	}
	return out
}

// Spaced склеивает слова сегментации одиночными пробелами. Удаление
// пробелов из результата даёт исходную строку без пробелов.
func Spaced(seg Segmentation) string {
	if len(seg) == 0 {
		return ""
	}
	var b strings.Builder
	for i, sp := range seg {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sp.Text)
	}
	return b.String()
}
