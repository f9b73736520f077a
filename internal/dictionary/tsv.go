package dictionary

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/edsrzf/mmap-go"
)

// TSVSource — частотная таблица корпуса: «слово<TAB>частота», по записи на
// строку. Файл большой (миллионы строк), поэтому читается через mmap, без
// копирования в память процесса.
type TSVSource struct {
	Path    string
	MaxRows int // 0 — без ограничения
}

func (s *TSVSource) Name() string { return s.Path }

func (s *TSVSource) Each(fn func(word string, weight float64)) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("ошибка открытия словаря: %v", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 {
		return nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("ошибка mmap словаря: %v", err)
	}
	defer data.Unmap()

	rows := 0
	for rest := []byte(data); len(rest) > 0; {
		var line []byte
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			line, rest = rest, nil
		}
		if s.MaxRows > 0 && rows >= s.MaxRows {
			break
		}
		rows++

		tab := bytes.IndexByte(line, '\t')
		if tab <= 0 {
			continue
		}
		freq, err := strconv.ParseFloat(string(bytes.TrimSpace(line[tab+1:])), 64)
		if err != nil || freq <= 0 {
			continue
		}
		fn(string(bytes.TrimSpace(line[:tab])), freq)
	}
	return nil
}
