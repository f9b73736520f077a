// Package dictionary содержит источники словарей для частотной модели.
// Источник — любой поставщик пар (слово, вес); формат файла — деталь
// конкретного адаптера.
package dictionary

// Source отдаёт пары (слово, вес). Each обходит все пригодные записи;
// ошибка означает, что источник целиком недоступен, а не что одна строка
// испорчена — битые строки адаптер пропускает сам.
type Source interface {
	Name() string
	Each(fn func(word string, weight float64)) error
}
