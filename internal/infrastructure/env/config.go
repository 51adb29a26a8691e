package env

import (
	"time"

	"webui-e2e/internal/application/port/output"
)

type BrowserSettings struct {
	Headless   bool
	NoSandbox  bool
	SlowMotion time.Duration
	Bin        string
}

type WaitSettings struct {
	PollInterval     time.Duration
	CandidateTimeout time.Duration
	PageTimeout      time.Duration
	ToastTimeout     time.Duration
}

type LogSettings struct {
	Level       string
	Format      string
	FileEnabled bool
	Dir         string
}

// Config is the typed view of every setting the runner reads.
type Config struct {
	BaseURL     string
	ArtifactDir string
	DataFile    string
	Browser     BrowserSettings
	Wait        WaitSettings
	Log         LogSettings
}

func LoadConfig(c output.ConfigPort) Config {
	return Config{
		BaseURL:     c.GetWithDefault("BASE_URL", "https://happyorder.vn"),
		ArtifactDir: c.GetWithDefault("ARTIFACT_DIR", "test-output/screenshots"),
		DataFile:    c.GetWithDefault("TEST_DATA_FILE", "testdata/cases.yaml"),
		Browser: BrowserSettings{
			Headless:   c.GetBool("BROWSER_HEADLESS", true),
			NoSandbox:  c.GetBool("BROWSER_NO_SANDBOX", false),
			SlowMotion: c.GetDuration("BROWSER_SLOW_MOTION", 0),
			Bin:        c.Get("BROWSER_BIN"),
		},
		Wait: WaitSettings{
			PollInterval:     c.GetDuration("WAIT_POLL_INTERVAL", 100*time.Millisecond),
			CandidateTimeout: c.GetDuration("WAIT_CANDIDATE_TIMEOUT", 5*time.Second),
			PageTimeout:      c.GetDuration("WAIT_PAGE_TIMEOUT", 20*time.Second),
			ToastTimeout:     c.GetDuration("TOAST_TIMEOUT", 5*time.Second),
		},
		Log: LogSettings{
			Level:       c.GetWithDefault("LOG_LEVEL", "info"),
			Format:      c.GetWithDefault("LOG_FORMAT", "console"),
			FileEnabled: c.GetBool("LOG_FILE_ENABLED", true),
			Dir:         c.GetWithDefault("LOG_DIR", "log"),
		},
	}
}
