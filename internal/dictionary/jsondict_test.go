package dictionary

import "testing"

func TestJSONDictObject(t *testing.T) {
	path := writeFile(t, "dict.json", `{"кот":"домашнее животное","ёжик":"лесной зверёк"}`)
	got := collect(t, &JSONDict{Path: path, Weight: 100})

	for _, w := range []string{"кот", "ёжик"} {
		if got[w] != 100 {
			t.Errorf("%q: вес %v, want 100", w, got[w])
		}
	}
}

func TestJSONDictArray(t *testing.T) {
	path := writeFile(t, "dict.json", `["кот","ёжик"]`)
	got := collect(t, &JSONDict{Path: path, Weight: 50})
	if len(got) != 2 || got["кот"] != 50 {
		t.Fatalf("загружено %v", got)
	}
}

func TestJSONDictBadPayload(t *testing.T) {
	path := writeFile(t, "dict.json", `42`)
	s := &JSONDict{Path: path, Weight: 50}
	if err := s.Each(func(string, float64) {}); err == nil {
		t.Fatal("ожидалась ошибка формата")
	}
}

func TestDomainTerms(t *testing.T) {
	got := collect(t, DomainTerms{})
	if len(got) == 0 {
		t.Fatal("встроенный список пуст")
	}
	for _, w := range []string{"куплю", "квартиру", "в"} {
		if got[w] <= 0 {
			t.Errorf("термин %q отсутствует или с нулевым весом", w)
		}
	}
}
