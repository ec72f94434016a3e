package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Water6446/Meme-Stock-Tracker/internal/config"
	"github.com/Water6446/Meme-Stock-Tracker/internal/gemini"
	"github.com/Water6446/Meme-Stock-Tracker/internal/retry"
)

type fakeBackend struct {
	calls     int
	responses []string
	err       error
	lastReq   gemini.Request
}

func (f *fakeBackend) GenerateContent(_ context.Context, req gemini.Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

type fakeViewer struct {
	shown  []string
	result error
}

func (f *fakeViewer) Show(title, _ string) error {
	f.shown = append(f.shown, title)
	return f.result
}

func instantRetry() retry.Policy {
	p := retry.Default
	p.Sleep = func(context.Context, time.Duration) error { return nil }
	return p
}

func newGenerator(t *testing.T, backend *fakeBackend, view *fakeViewer) (*Generator, *config.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := config.LoadDir(dir)
	return &Generator{
		Store:   store,
		Backend: backend,
		Viewer:  view,
		OutDir:  dir,
		Now:     func() time.Time { return time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC) },
		Retry:   instantRetry(),
	}, store, dir
}

func TestGenerate_MissingKeyShortCircuits(t *testing.T) {
	backend := &fakeBackend{responses: []string{"unused"}}
	g, _, _ := newGenerator(t, backend, &fakeViewer{})

	_, err := g.Generate(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, backend.calls, "no network call without a key")
}

func TestGenerate_SentinelKeyShortCircuits(t *testing.T) {
	backend := &fakeBackend{responses: []string{"unused"}}
	g, store, _ := newGenerator(t, backend, &fakeViewer{})
	store.Set(config.SectionAPI, config.KeyAPIKey, config.SentinelAPIKey)

	_, err := g.Generate(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, backend.calls)
}

func TestGenerate_WritesDatedFileAndShowsViewer(t *testing.T) {
	backend := &fakeBackend{responses: []string{"GME to the moon"}}
	view := &fakeViewer{}
	g, store, dir := newGenerator(t, backend, view)
	store.Set(config.SectionAPI, config.KeyAPIKey, "real-key")

	path, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2025-01-02_MemeStock.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GME to the moon", string(data))

	require.Len(t, view.shown, 1)
	assert.Equal(t, "Meme Stock Report - 2025-01-02", view.shown[0])

	assert.True(t, backend.lastReq.WebSearch, "report calls must request web grounding")
	assert.Equal(t, "real-key", backend.lastReq.APIKey)
	assert.Contains(t, backend.lastReq.Prompt, "2025-01-02")
	assert.NotContains(t, backend.lastReq.Prompt, "{today_date}")
}

func TestGenerate_SameDayRerunOverwrites(t *testing.T) {
	backend := &fakeBackend{responses: []string{"first draft", "second draft"}}
	g, store, _ := newGenerator(t, backend, &fakeViewer{})
	store.Set(config.SectionAPI, config.KeyAPIKey, "real-key")

	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	path, err := g.Generate(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second draft", string(data), "last write wins, no concatenation")
}

func TestGenerate_ShowGUIDisabledSkipsViewer(t *testing.T) {
	backend := &fakeBackend{responses: []string{"text"}}
	view := &fakeViewer{}
	g, store, _ := newGenerator(t, backend, view)
	store.Set(config.SectionAPI, config.KeyAPIKey, "real-key")
	store.Set(config.SectionSettings, config.KeyShowGUI, "false")

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.shown)
}

func TestGenerate_ViewerFailureIsNotFatal(t *testing.T) {
	backend := &fakeBackend{responses: []string{"text"}}
	view := &fakeViewer{result: errors.New("no display")}
	g, store, _ := newGenerator(t, backend, view)
	store.Set(config.SectionAPI, config.KeyAPIKey, "real-key")

	path, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerate_BackendFailureSurfacesAfterRetries(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend down")}
	g, store, dir := newGenerator(t, backend, &fakeViewer{})
	store.Set(config.SectionAPI, config.KeyAPIKey, "real-key")

	_, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
	assert.Equal(t, 5, backend.calls, "default policy allows 5 attempts")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), FileSuffix, "no report file on failure")
	}
}

func TestGenerate_MalformedTemplateAborts(t *testing.T) {
	backend := &fakeBackend{responses: []string{"unused"}}
	g, store, _ := newGenerator(t, backend, &fakeViewer{})
	store.Set(config.SectionAPI, config.KeyAPIKey, "real-key")
	store.Set(config.SectionPrompt, config.KeyTemplate, "report for {typo_date}")

	_, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo_date")
	assert.Zero(t, backend.calls)
}
