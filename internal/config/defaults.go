package config

// Config sections and keys. The file layout is fixed: [API] KEY/MODEL,
// [Prompt] TEMPLATE, [Scheduler] TIME_UTC, [Settings] SHOW_GUI.
const (
	SectionAPI       = "API"
	SectionPrompt    = "Prompt"
	SectionScheduler = "Scheduler"
	SectionSettings  = "Settings"

	KeyAPIKey   = "KEY"
	KeyModel    = "MODEL"
	KeyTemplate = "TEMPLATE"
	KeyTimeUTC  = "TIME_UTC"
	KeyShowGUI  = "SHOW_GUI"
)

// SentinelAPIKey is the placeholder written into fresh config files. A key
// equal to this value means "not configured yet" and must never reach the
// backend.
const SentinelAPIKey = "YOUR_API_KEY_HERE"

// Fallbacks used when the corresponding config entry is missing.
const (
	DefaultModel           = "gemini-2.5-pro"
	DefaultScheduleTimeUTC = "13:25"
	DefaultShowGUI         = "true"
)

// DefaultPromptTemplate is the stock report prompt. {today_date} is
// substituted with the current date at generation time.
const DefaultPromptTemplate = "Pre-open {today_date}, list 10 likely meme stocks today. Browse, cite, and rank by buzz + " +
	"squeeze risk + fresh catalyst. Give a compact table: Ticker, pre-mkt move/vol, short interest %, " +
	"days-to-cover, borrow fee/utilization, options vol & put/call, retail-mention trend, catalyst note, " +
	"risk flags. Then 3 runners-up and 3 bullet ‘watch items’ (levels/halts)."
