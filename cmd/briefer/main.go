package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"briefer"
	"briefer/anthropic"
	"briefer/gemini"
	"briefer/goquery"
	briefhttp "briefer/http"
	"briefer/openai"
	"briefer/pipeline"
	"briefer/readability"
	briefslog "briefer/slog"
	"briefer/sqlite"
	"briefer/trafilatura"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the history service.
	DB *sqlite.DB

	// History service, exposed for end-to-end testing.
	History briefer.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	if m.DBPath == "" {
		m.DBPath = defaultDBPath(cfg)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("briefer"),
		kong.Description("Summarize web articles within a word budget."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'briefer --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parsed context, not args[0]:
	// root flags like -v may precede the command name.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open history database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BRIEFER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.History = sqlite.NewHistoryService(m.DB)
	deps.History = m.History

	// Wire command-specific dependencies
	if cmd == "summarize" || cmd == "providers" {
		registry, err := buildRegistry(ctx, cfg, cli.Summarize.Model, logger)
		if err != nil {
			return err
		}
		deps.Providers = registry
	}

	if cmd == "summarize" {
		deps.Fetcher = briefhttp.NewFetcher()
		defer deps.Fetcher.Close()

		deps.Extractor = &briefer.ExtractorChain{
			Extractors: []briefer.Extractor{
				briefslog.NewLoggingExtractor(trafilatura.NewExtractor(), "trafilatura", logger),
				briefslog.NewLoggingExtractor(readability.NewExtractor(), "readability", logger),
				briefslog.NewLoggingExtractor(goquery.NewExtractor(), "domstrip", logger),
			},
		}

		deps.Summarizer = &pipeline.Summarizer{
			Providers:   deps.Providers,
			Concurrency: cli.Summarize.Concurrency,
			Limiter:     rate.NewLimiter(rate.Limit(providerRPS), 1),
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// providerRPS paces outgoing provider calls to bound rate-limit exposure.
const providerRPS = 2.0

// buildRegistry registers a provider for each backend with a configured
// API key. The model override, if set, applies to whichever provider is
// selected at the command line.
func buildRegistry(ctx context.Context, cfg Config, model string, logger *slog.Logger) (*briefer.Registry, error) {
	registry := briefer.NewRegistry()

	if cfg.OpenAIAPIKey != "" {
		p := openai.NewProvider(cfg.OpenAIAPIKey, openai.WithModel(model))
		registry.Register("openai", briefslog.NewLoggingProvider(p, "openai", logger))
	}

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		p := gemini.NewProvider(client, model)
		registry.Register("gemini", briefslog.NewLoggingProvider(p, "gemini", logger))
	}

	if cfg.AnthropicAPIKey != "" {
		p := anthropic.NewProvider(cfg.AnthropicAPIKey, anthropic.WithModel(model))
		registry.Register("anthropic", briefslog.NewLoggingProvider(p, "anthropic", logger))
	}

	return registry, nil
}

func defaultDBPath(cfg Config) string {
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "briefer.db"
	}
	dir := filepath.Join(home, ".briefer")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "briefer.db")
}
