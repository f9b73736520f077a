package restorer

import (
	"reflect"
	"strings"
	"testing"
)

type mapSource map[string]float64

func (mapSource) Name() string { return "test" }

func (m mapSource) Each(fn func(word string, weight float64)) error {
	for w, f := range m {
		fn(w, f)
	}
	return nil
}

func newTestSegmenter(t *testing.T, words map[string]float64) *Segmenter {
	t.Helper()
	m, err := NewModel(DefaultConfig(), mapSource(words))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return NewSegmenter(m)
}

func words(seg Segmentation) []string {
	out := make([]string, len(seg))
	for i, sp := range seg {
		out[i] = sp.Text
	}
	return out
}

func TestSegmentTwoKnownWords(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{"кот": 100, "ёжик": 80})

	got := seg.Segment("котёжик")
	if want := []string{"кот", "ёжик"}; !reflect.DeepEqual(words(got), want) {
		t.Fatalf("Segment(котёжик) = %v, want %v", words(got), want)
	}
	if pos := Positions(got); !reflect.DeepEqual(pos, []int{3}) {
		t.Fatalf("Positions = %v, want [3]", pos)
	}
}

func TestUnknownTailKeptWhole(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{"домик": 100, "ломик": 90})

	got := seg.Segment("домикxzq")
	if want := []string{"домик", "xzq"}; !reflect.DeepEqual(words(got), want) {
		t.Fatalf("Segment(домикxzq) = %v, want %v", words(got), want)
	}
	if pos := Positions(got); !reflect.DeepEqual(pos, []int{5}) {
		t.Fatalf("Positions = %v, want [5]", pos)
	}
	if got[1].Known {
		t.Fatal("xzq помечен как словарное слово")
	}
}

func TestExistingSpacesAreHardBoundaries(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{"кот": 100, "ёжик": 80})

	got := seg.Segment("кот ёжик")
	if s := Spaced(got); s != "кот ёжик" {
		t.Fatalf("Spaced = %q, want %q", s, "кот ёжик")
	}
	if pos := Positions(got); !reflect.DeepEqual(pos, []int{3}) {
		t.Fatalf("Positions = %v, want [3]", pos)
	}
}

func TestEmptyInput(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{"кот": 100})

	for _, text := range []string{"", "   "} {
		got := seg.Segment(text)
		if len(got) != 0 {
			t.Fatalf("Segment(%q) = %v, want пустую сегментацию", text, got)
		}
		if pos := Positions(got); len(pos) != 0 {
			t.Fatalf("Positions(%q) = %v, want пустой набор", text, pos)
		}
		if s := Spaced(got); s != "" {
			t.Fatalf("Spaced(%q) = %q", text, s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{
		"кот": 100, "ёжик": 80, "мама": 120, "мыла": 60, "раму": 50,
	})

	inputs := []string{
		"котёжик",
		"мамамылараму",
		"мама мылараму",
		"котxzqёжик",
		"абвгд",
	}
	for _, in := range inputs {
		got := seg.Restore(in)
		if strip(got) != strip(in) {
			t.Fatalf("round-trip: Restore(%q) = %q", in, got)
		}
	}
}

func strip(s string) string { return strings.ReplaceAll(s, " ", "") }

func TestDeterminism(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{
		"мама": 100, "мыла": 100, "ма": 100, "мамы": 100, "лара": 100, "му": 100,
	})

	first := seg.Segment("мамамыларамумы")
	for i := 0; i < 5; i++ {
		if got := seg.Segment("мамамыларамумы"); !reflect.DeepEqual(got, first) {
			t.Fatalf("прогон %d дал %v, раньше было %v", i, words(got), words(first))
		}
	}
}

func TestIdempotentOnDictionaryWords(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{"мама": 100, "мыла": 60, "раму": 50})

	got := seg.Segment("мамамылараму")
	if want := []string{"мама", "мыла", "раму"}; !reflect.DeepEqual(words(got), want) {
		t.Fatalf("Segment = %v, want %v", words(got), want)
	}
}

func TestSingleWordPreferredOverSplit(t *testing.T) {
	// Все три слова одинаково частотны: одно длинное слово дешевле,
	// чем сумма двух логарифмических стоимостей.
	seg := newTestSegmenter(t, map[string]float64{"под": 100, "арок": 100, "подарок": 100})

	got := seg.Segment("подарок")
	if want := []string{"подарок"}; !reflect.DeepEqual(words(got), want) {
		t.Fatalf("Segment(подарок) = %v, want %v", words(got), want)
	}
}

func TestUppercaseInputKeepsRunes(t *testing.T) {
	seg := newTestSegmenter(t, map[string]float64{"кот": 100, "ёжик": 80})

	got := seg.Segment("КотЁжик")
	if s := Spaced(got); strip(s) != "КотЁжик" {
		t.Fatalf("регистр исходной строки потерян: %q", s)
	}
	if !got[0].Known {
		t.Fatal("Кот не найден в словаре без учёта регистра")
	}
}
