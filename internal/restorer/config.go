package restorer

type Config struct {
	MinWordLen        int
	MaxWordLen        int
	FallbackWeight    float64
	UnknownBase       float64
	UnknownPerChar    float64
	PlausibleDiscount float64
	EndingDiscount    float64
}

// DefaultConfig возвращает настройки, подобранные на соревновательном датасете.
// UnknownPerChar <= 0 означает «вывести из модели»: максимум стоимости
// известного слова плюс единица.
func DefaultConfig() Config {
	return Config{
		MinWordLen:        1,
		MaxWordLen:        25,
		FallbackWeight:    100,
		UnknownBase:       4.0,
		UnknownPerChar:    0,
		PlausibleDiscount: 0.55,
		EndingDiscount:    0.35,
	}
}

// Span — подстрока-кандидат с границами в рунах исходной строки (без пробелов).
type Span struct {
	Text  string
	Start int
	End   int
	Cost  float64
	Known bool
}

// Segmentation — упорядоченное разбиение строки на непересекающиеся Span,
// конкатенация которых в точности даёт исходную строку.
type Segmentation []Span
