// Package report produces the daily meme stock report: it resolves the
// prompt and model from configuration, asks the backend for a grounded
// answer under the bounded retry policy, and persists the text to a dated
// file beside the installation.
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Water6446/Meme-Stock-Tracker/internal/config"
	"github.com/Water6446/Meme-Stock-Tracker/internal/gemini"
	"github.com/Water6446/Meme-Stock-Tracker/internal/prompt"
	"github.com/Water6446/Meme-Stock-Tracker/internal/retry"
	"github.com/Water6446/Meme-Stock-Tracker/internal/viewer"
)

// ErrNotConfigured reports a missing or placeholder API key. No network
// call is attempted in that state.
var ErrNotConfigured = errors.New("API key not set, add your key in Settings")

// FileSuffix terminates every report file name; the date prefixes it.
const FileSuffix = "_MemeStock.txt"

// Backend is the one generative call the generator depends on.
type Backend interface {
	GenerateContent(ctx context.Context, req gemini.Request) (string, error)
}

// Generator wires the report pipeline together. All fields are required
// except Now and Retry, which default to the real clock and the standard
// backend policy.
type Generator struct {
	Store   *config.Store
	Backend Backend
	Viewer  viewer.Renderer
	OutDir  string

	Now   func() time.Time
	Retry retry.Policy
}

// Generate produces today's report and returns the path it was written to.
// The write is idempotent per calendar day: a same-day rerun overwrites the
// earlier file.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	apiKey := g.Store.Get(config.SectionAPI, config.KeyAPIKey, "")
	if apiKey == "" || apiKey == config.SentinelAPIKey {
		return "", ErrNotConfigured
	}

	template := g.Store.Get(config.SectionPrompt, config.KeyTemplate, config.DefaultPromptTemplate)
	model := g.Store.Get(config.SectionAPI, config.KeyModel, config.DefaultModel)
	today := g.now().Format("2006-01-02")

	rendered, err := prompt.Render(template, today)
	if err != nil {
		return "", err
	}

	log.Info().Str("date", today).Str("model", model).Msg("Generating meme stock report")

	policy := g.Retry
	if policy.MaxAttempts == 0 {
		policy = retry.Default
	}

	text, err := retry.Do(ctx, policy, func(ctx context.Context) (string, error) {
		return g.Backend.GenerateContent(ctx, gemini.Request{
			APIKey:    apiKey,
			Model:     model,
			Prompt:    rendered,
			WebSearch: true,
		})
	})
	if err != nil {
		return "", fmt.Errorf("report generation failed: %w", err)
	}

	path := filepath.Join(g.OutDir, today+FileSuffix)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	log.Info().Str("path", path).Int("bytes", len(text)).Msg("Report saved")

	if g.showGUI() {
		if err := g.Viewer.Show("Meme Stock Report - "+today, text); err != nil {
			// The report is already on disk; a missing display is not a
			// generation failure.
			log.Warn().Err(err).Msg("Could not display report window")
			fmt.Printf("Could not display the report window (%v). The report is in %s.\n", err, path)
		}
	} else {
		fmt.Println("GUI pop-up is disabled in settings. The report is in the text file.")
	}

	return path, nil
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) showGUI() bool {
	v := g.Store.Get(config.SectionSettings, config.KeyShowGUI, config.DefaultShowGUI)
	return strings.EqualFold(v, "true")
}
