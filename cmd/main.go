package main

import (
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"respacer/internal/batch"
	"respacer/internal/customdict"
	"respacer/internal/dictionary"
	"respacer/internal/restorer"
)

func main() {
	var (
		freqPath   string
		dictPath   string
		inputPath  string
		outputPath string
		maxRows    int
		maxWordLen int
		workers    int
		cacheSize  int
		useRedis   bool
	)

	root := &cobra.Command{
		Use:          "respacer",
		Short:        "Восстановление пробелов в русском тексте по частотному словарю",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := restorer.DefaultConfig()
			if maxWordLen > 0 {
				cfg.MaxWordLen = maxWordLen
			}

			// Порядок — это приоритет: термины площадки, затем корпус,
			// затем толковый словарь как запасной сигнал.
			var sources []dictionary.Source
			if useRedis {
				client := redis.NewClient(&redis.Options{
					Addr:     getenv("REDIS_ADDR", "localhost:6379"),
					Password: os.Getenv("REDIS_PASSWORD"),
					DB:       getEnvInt("REDIS_DB", 0),
				})
				sources = append(sources, customdict.New(client))
			}
			sources = append(sources,
				dictionary.DomainTerms{},
				&dictionary.TSVSource{Path: freqPath, MaxRows: maxRows},
				&dictionary.JSONDict{Path: dictPath, Weight: cfg.FallbackWeight},
			)

			model, err := restorer.NewModel(cfg, sources...)
			if err != nil {
				return err
			}
			seg := restorer.NewSegmenter(model)

			records, skipped, err := batch.LoadDataset(inputPath)
			if err != nil {
				return err
			}
			log.Printf("датасет: %d записей, %d строк пропущено", len(records), skipped)

			runner := batch.NewRunner(seg, batch.Config{Workers: workers, CacheSize: cacheSize})
			results := runner.Run(records)

			if err := batch.WriteSubmission(outputPath, results); err != nil {
				return err
			}
			log.Printf("посылка записана: %s (%d строк)", outputPath, len(results))
			return nil
		},
	}

	root.Flags().StringVar(&freqPath, "freq", getenv("FREQ_PATH", "main_1grams.tsv"), "частотная таблица корпуса (tsv)")
	root.Flags().StringVar(&dictPath, "dict", getenv("DICT_PATH", "dictionary_output.json"), "вспомогательный словарь (json)")
	root.Flags().StringVarP(&inputPath, "input", "i", "dataset.csv", "входной датасет")
	root.Flags().StringVarP(&outputPath, "output", "o", "submission.csv", "файл посылки")
	root.Flags().IntVar(&maxRows, "max-rows", 1000000, "сколько строк корпуса загружать (0 — все)")
	root.Flags().IntVar(&maxWordLen, "max-word-len", 0, "потолок длины слова для DP (0 — из конфигурации)")
	root.Flags().IntVar(&workers, "workers", 1, "число горутин обработки")
	root.Flags().IntVar(&cacheSize, "cache", 10000, "размер LRU-кэша результатов (0 — без кэша)")
	root.Flags().BoolVar(&useRedis, "redis", false, "добавить термины из Redis")

	if err := root.Execute(); err != nil {
		log.Fatalf("init error: %v", err)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
