package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONDict — вспомогательный толковый словарь: JSON-объект «слово →
// толкование» либо JSON-массив слов. Толкования не используются, сам факт
// наличия слова — бинарный сигнал «слово существует», всем ключам
// назначается один запасной вес.
type JSONDict struct {
	Path   string
	Weight float64
}

func (s *JSONDict) Name() string { return s.Path }

func (s *JSONDict) Each(fn func(word string, weight float64)) error {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("ошибка открытия словаря: %v", err)
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asMap); err == nil {
		for word := range asMap {
			fn(word, s.Weight)
		}
		return nil
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		for _, word := range asList {
			fn(word, s.Weight)
		}
		return nil
	}

	return fmt.Errorf("словарь %s: не объект и не массив слов", s.Path)
}
