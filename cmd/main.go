package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"book-analysis/internal/analysis"
	"book-analysis/internal/config"
	"book-analysis/internal/helper"
	"book-analysis/internal/models"
	"book-analysis/internal/parser"
	"book-analysis/internal/stopwords"
)

const (
	configFilePath = "./configs/config.yaml"
	defaultBook    = "files/hound.txt"
	defaultTitle   = "The Hound of the Baskervilles by Arthur Conan Doyle"
	defaultCommon  = "files/1000.txt"
	defaultWord    = "baskerville"
	defaultQuote   = "There is nothing more stimulating than a case where everything goes against you"
)

func main() {
	configPath := flag.String("config", configFilePath, "Path to the config file")
	formats := strings.Join(parser.SupportedFormats(), ", ")
	filePath := flag.String("file", "", "Path to the book ("+formats+")")
	commonPath := flag.String("stopwords", "", "Path to the list of most common English words")
	word := flag.String("word", defaultWord, "Word whose chapter progression is printed")
	quote := flag.String("quote", defaultQuote, "Quote to locate")
	seed := flag.Int64("seed", 0, "Seed for sentence generation, 0 for a random seed")
	flag.Parse()

	cfg := loadConfig(*configPath)
	setupLogger(cfg.Log.Level)

	if *filePath != "" {
		cfg.Book.Path = *filePath
	}
	if *commonPath != "" {
		cfg.Stopwords.Path = *commonPath
	}

	log.Debug().Interface("config", cfg).Msg("Loaded config")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	analyze(context.Background(), cfg, *word, *quote, rand.New(rand.NewSource(*seed)))
}

func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()
}

// loadConfig falls back to defaults when there is no config file.
func loadConfig(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Defaults()
	} else if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if cfg.Book.Path == "" {
		cfg.Book.Path = defaultBook
		cfg.Book.Title = defaultTitle
	}
	if cfg.Stopwords.Path == "" {
		cfg.Stopwords.Path = defaultCommon
	}
	return cfg
}

func analyze(ctx context.Context, cfg *config.Config, word, quote string, rng *rand.Rand) {
	book, err := analysis.OpenWith(parser.FileParser{}, cfg.Book.Path, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening book")
	}
	common, err := stopwords.Load(cfg.Stopwords.Path, cfg.Stopwords.Limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading stopwords")
	}

	title := cfg.Book.Title
	if title == "" {
		title = cfg.Book.Path
	}
	fmt.Println(title)
	fmt.Printf("Total number of words: %d\n", book.TotalWords())
	fmt.Printf("Total number of unique words: %d\n", book.UniqueWords())
	fmt.Printf("Most frequent words: %v\n", book.MostFrequent())
	fmt.Printf("Most frequent interesting words: %v\n", book.MostInteresting(common))
	fmt.Printf("Least frequent words: %v\n", book.LeastFrequent())

	progression, err := book.Progression(word)
	if err != nil {
		log.Error().Err(err).Msg("Error getting word progression")
	} else {
		fmt.Printf("Frequency of the word %q: %v\n", word, progression)
	}

	chapter, err := book.ChapterOf(quote)
	if err != nil {
		log.Error().Err(err).Msg("Error locating quote")
	} else {
		fmt.Printf("Chapter of the quote %q: %d\n", quote, chapter)
	}
	if err == nil && chapter == models.NotFound {
		matches, err := book.SimilarChapters(ctx, quote)
		if err != nil {
			log.Warn().Err(err).Msg("Error ranking similar chapters")
		} else {
			log.Info().Msg("Closest chapters: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
			helper.PrettyPrint(os.Stdout, matches)
		}
	}

	sentence, err := book.GenerateSentence(rng)
	if err != nil {
		log.Error().Err(err).Msg("Error generating sentence")
		return
	}
	fmt.Printf("Generated sentence: %s\n", sentence)
}
