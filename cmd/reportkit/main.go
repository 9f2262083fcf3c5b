package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ideabunch/reportkit/internal/cache"
	"github.com/ideabunch/reportkit/internal/client"
	"github.com/ideabunch/reportkit/internal/format"
	"github.com/ideabunch/reportkit/internal/profile"
	"github.com/ideabunch/reportkit/internal/report"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath  string
		inputPath   string
		outputPath  string
		profilePath string
		maxIdeas    int
		seed        int64
		llmBaseURL  string
		llmModel    string
		llmKey      string
		cacheDir    string
		verbose     bool
	)

	flag.StringVar(&configPath, "config", "", "Optional YAML config file; flags take precedence")
	flag.StringVar(&inputPath, "input", "", "Path to a saved raw report ('-' reads stdin); omit to fetch via -llm.model")
	flag.StringVar(&outputPath, "output", "", "Path to write the parsed report JSON (default stdout)")
	flag.StringVar(&profilePath, "profile", "", "Path to a YAML founder profile used for personalization")
	flag.IntVar(&maxIdeas, "max.ideas", 0, "Maximum number of ideas to extract (default 3)")
	flag.Int64Var(&seed, "seed", 0, "Seed for synthesized numeric ranges; 0 uses a time-based seed")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for fetching a report when no input is given")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible backend")
	flag.StringVar(&cacheDir, "cache.dir", os.Getenv("REPORT_CACHE_DIR"), "Directory for caching fetched reports (empty disables)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := report.Config{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		ProfilePath: profilePath,
		MaxIdeas:    maxIdeas,
		Seed:        seed,
		LLMBaseURL:  llmBaseURL,
		LLMModel:    llmModel,
		LLMAPIKey:   llmKey,
		CacheDir:    cacheDir,
		Verbose:     verbose,
	}

	if configPath != "" {
		fc, err := report.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Msg("load config")
			os.Exit(2)
		}
		report.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := report.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg report.Config) error {
	ctx := context.Background()

	var prof profile.Profile
	if cfg.ProfilePath != "" {
		p, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}
		prof = p
	}

	markdown, err := loadMarkdown(ctx, cfg, prof)
	if err != nil {
		return err
	}

	opts := report.Options{MaxIdeas: cfg.MaxIdeas}
	if cfg.Seed != 0 {
		opts.Random = format.NewSeededSource(cfg.Seed)
	}
	r := report.Build(markdown, prof, opts)

	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	out = append(out, '\n')

	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("path", cfg.OutputPath).Msg("report written")
	return nil
}

// loadMarkdown reads the raw report from the input path, stdin, or the
// backend (cached when a cache dir is configured), in that preference order.
func loadMarkdown(ctx context.Context, cfg report.Config, prof profile.Profile) (string, error) {
	switch {
	case cfg.InputPath == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	case cfg.InputPath != "":
		b, err := os.ReadFile(cfg.InputPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}

	prompt := client.PromptFor(prof)
	var rc *cache.ReportCache
	if cfg.CacheDir != "" {
		rc = &cache.ReportCache{Dir: cfg.CacheDir}
		key := cache.KeyFrom(cfg.LLMModel, prompt)
		if md, ok, err := rc.Get(ctx, key); err == nil && ok {
			log.Debug().Str("key", key).Msg("report cache hit")
			return md, nil
		}
	}

	c := client.New(cfg.LLMBaseURL, cfg.LLMAPIKey)
	md, err := client.FetchReport(ctx, c, cfg.LLMModel, prof)
	if err != nil {
		return "", err
	}
	if rc != nil {
		if err := rc.Save(ctx, cache.KeyFrom(cfg.LLMModel, prompt), md); err != nil {
			log.Warn().Err(err).Msg("report cache save failed")
		}
	}
	return md, nil
}
