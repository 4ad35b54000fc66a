package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/crawl"
	"github.com/fwojciec/recipex/fs"
	"github.com/fwojciec/recipex/gemini"
	"github.com/fwojciec/recipex/goquery"
	"github.com/fwojciec/recipex/htmltomarkdown"
	recipexhttp "github.com/fwojciec/recipex/http"
	"github.com/fwojciec/recipex/locale"
	"github.com/fwojciec/recipex/sqlite"
	"github.com/fwojciec/recipex/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when extract writes to a database.
	DB *sqlite.DB
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recipex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Registry = newRegistry()

	switch cmd {
	case "extract":
		if cli.Extract.DB != "" {
			m.DB = sqlite.NewDB(cli.Extract.DB)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", cli.Extract.DB, err)
			}
			deps.Store = sqlite.NewRecipeStore(sqlite.NewRecipeService(m.DB))
		} else {
			deps.Store = fs.NewFileStore(filepath.Dir(cli.Extract.Out), filepath.Base(cli.Extract.Out))
		}

	case "fetch":
		deps.Collector = &crawl.Collector{
			Sitemaps:    recipexhttp.NewSitemapService(nil),
			Fetcher:     recipexhttp.NewFetcher(),
			Frontier:    crawl.NewFrontier(1_000_000, 0.001),
			RateLimiter: crawl.NewDomainLimiter(cli.Fetch.RPS),
			Concurrency: cli.Fetch.Concurrency,
		}

	case "translate":
		if cli.Translate.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.Translate.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Translator = gemini.NewTranslator(client)
	}

	return kongCtx.Run(deps)
}

// newRegistry wires the extractor registry: every dedicated site
// extractor with its language vocabulary, and the generic fallback
// behind it.
func newRegistry() recipex.ExtractorRegistry {
	detector := goquery.NewSiteDetector()
	generic := goquery.NewGenericExtractor(locale.Load, trafilatura.NewMetadataExtractor())
	registry := goquery.NewExtractorRegistry(detector, generic)

	registry.Register(goquery.NewGialloZafferanoExtractor(locale.MustLoad("it"), htmltomarkdown.NewConverter()))
	registry.Register(goquery.NewDiarioUtilExtractor(locale.MustLoad("it")))
	registry.Register(goquery.NewCojimeExtractor(locale.MustLoad("cs")))
	registry.Register(goquery.NewAniaGotujeExtractor(locale.MustLoad("pl")))
	registry.Register(goquery.NewChefkochExtractor(locale.MustLoad("de")))
	registry.Register(goquery.NewAllRecipesExtractor(locale.MustLoad("en")))
	registry.Register(goquery.NewCuisineAZExtractor(locale.MustLoad("fr")))
	registry.Register(goquery.NewCoopExtractor(locale.MustLoad("sv")))

	return registry
}
