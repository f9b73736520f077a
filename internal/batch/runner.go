// Package batch прогоняет сегментатор по датасету и пишет файл посылки.
package batch

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"

	"respacer/internal/restorer"
)

type Config struct {
	Workers   int
	CacheSize int
}

func DefaultConfig() Config {
	return Config{Workers: 1, CacheSize: 10000}
}

// Record — строка датасета: идентификатор и текст без пробелов
// (или с частично сохранёнными пробелами).
type Record struct {
	ID   int
	Text string
}

type Result struct {
	ID        int
	Restored  string
	Positions []int
}

type cached struct {
	restored  string
	positions []int
}

type Runner struct {
	seg   *restorer.Segmenter
	cfg   Config
	cache *lru.Cache[string, cached]
}

func NewRunner(seg *restorer.Segmenter, cfg Config) *Runner {
	r := &Runner{seg: seg, cfg: cfg}
	if cfg.CacheSize > 0 {
		// Тексты объявлений повторяются; кэш LRU потокобезопасен.
		r.cache, _ = lru.New[string, cached](cfg.CacheSize)
	}
	return r
}

// LoadDataset читает датасет: строка заголовка, затем «id,текст». Текст
// делится по первой запятой, знаки препинания заменяются пробелами,
// повторные пробелы схлопываются. Битые строки (нет запятой, нечисловой id)
// пропускаются; их число возвращается для итоговой сводки.
func LoadDataset(path string) (records []Record, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка открытия датасета: %v", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	first := true
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		comma := strings.IndexByte(line, ',')
		if comma < 0 {
			skipped++
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(line[:comma]))
		if err != nil {
			skipped++
			continue
		}
		records = append(records, Record{ID: id, Text: cleanText(line[comma+1:])})
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return records, skipped, nil
}

// cleanText: всё, кроме букв и цифр, становится пробелом, пробелы
// схлопываются, текст приводится к нижнему регистру.
func cleanText(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, text)
	return strings.ToLower(strings.Join(strings.Fields(mapped), " "))
}

// Run обрабатывает записи, сохраняя исходный порядок. Строки независимы,
// модель неизменяемая, поэтому при Workers > 1 записи раздаются пулу горутин.
func (r *Runner) Run(records []Record) []Result {
	results := make([]Result, len(records))
	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		for i, rec := range records {
			results[i] = r.process(rec)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.process(records[i])
			}
		}()
	}
	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func (r *Runner) process(rec Record) Result {
	if r.cache != nil {
		if c, ok := r.cache.Get(rec.Text); ok {
			return Result{ID: rec.ID, Restored: c.restored, Positions: c.positions}
		}
	}
	seg := r.seg.Segment(rec.Text)
	c := cached{restored: restorer.Spaced(seg), positions: restorer.Positions(seg)}
	if r.cache != nil {
		r.cache.Add(rec.Text, c)
	}
	return Result{ID: rec.ID, Restored: c.restored, Positions: c.positions}
}

// WriteSubmission пишет CSV «id,predicted_positions», позиции — в виде
// списка «[3, 17]», как того требует проверяющая система.
func WriteSubmission(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла посылки: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "predicted_positions"}); err != nil {
		return err
	}
	for _, res := range results {
		if err := w.Write([]string{strconv.Itoa(res.ID), FormatPositions(res.Positions)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// FormatPositions — «[3, 17]» либо «[]» для пустого набора.
func FormatPositions(pos []int) string {
	if len(pos) == 0 {
		return "[]"
	}
	parts := make([]string, len(pos))
	for i, p := range pos {
		parts[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
