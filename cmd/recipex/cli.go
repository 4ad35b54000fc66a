package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     zerolog.Logger
	Registry   recipex.ExtractorRegistry
	Store      recipex.RecipeStore
	Collector  *crawl.Collector
	Translator recipex.Translator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract   ExtractCmd   `cmd:"" help:"Extract recipe data from downloaded pages"`
	Sites     SitesCmd     `cmd:"" help:"List sites with dedicated extractors"`
	Fetch     FetchCmd     `cmd:"" help:"Download a site's recipe pages into the corpus"`
	Translate TranslateCmd `cmd:"" help:"Translate an extracted recipe record"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Site        string `arg:"" optional:"" help:"Site to extract (all sites when omitted)"`
	Dir         string `short:"d" default:"preprocessed" help:"Corpus directory with per-site page folders"`
	Out         string `short:"o" default:"recipes" help:"Output directory for JSON records"`
	DB          string `help:"Write records to a SQLite database instead of JSON files"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent page limit"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL         string   `arg:"" help:"Site base URL"`
	Site        string   `help:"Site ID override (derived from the URL host by default)"`
	Dir         string   `short:"d" default:"preprocessed" help:"Corpus directory"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	RPS         float64  `default:"1.0" help:"Requests per second per domain"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// TranslateCmd is the "translate" subcommand.
type TranslateCmd struct {
	Input  string `arg:"" help:"Recipe record JSON file"`
	Lang   string `arg:"" help:"Target language (e.g. en)"`
	Out    string `short:"o" optional:"" help:"Output file (defaults to <input>.<lang>.json)"`
	APIKey string `env:"GEMINI_API_KEY" help:"Gemini API key"`
}
