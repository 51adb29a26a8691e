package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"webui-e2e/internal/adapter/page"
	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/application/service"
	"webui-e2e/internal/infrastructure/artifact"
	"webui-e2e/internal/infrastructure/browser/rod"
	"webui-e2e/internal/infrastructure/env"
	"webui-e2e/internal/infrastructure/logger"
	"webui-e2e/internal/infrastructure/report"
	"webui-e2e/internal/infrastructure/testdata"
	"webui-e2e/internal/infrastructure/userinteraction"
	"webui-e2e/internal/usecase/runner"
	"webui-e2e/internal/usecase/scenario"

	"github.com/google/uuid"
)

type Container struct {
	RunID     string
	Browser   output.BrowserPort
	Logger    output.LoggerPort
	UI        input.Interactor
	Login     *page.LoginPage
	Home      *page.HomePage
	Scenarios *service.ScenarioRegistry
	Results   *report.MemorySink
	Runner    *runner.UseCase
}

type Config struct {
	env.Config
	// RunName names the log file; usually the scenario being run.
	RunName string
	// Out receives progress output; nil means stdout.
	Out io.Writer
	// Cases overrides loading DataFile.
	Cases output.TestCaseProvider
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	runID := uuid.NewString()

	logCfg := logger.DefaultConfig(cfg.RunName)
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Dir = ""
	if cfg.Log.FileEnabled {
		logCfg.Dir = cfg.Log.Dir
	}
	base, err := logger.NewLoggerAdapter(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := base.WithField("run_id", runID)

	cases := cfg.Cases
	if cases == nil {
		provider, err := testdata.LoadFile(cfg.DataFile)
		if err != nil {
			_ = base.Close()
			return nil, fmt.Errorf("failed to load test data: %w", err)
		}
		cases = provider
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Browser.Headless
	browserCfg.NoSandbox = cfg.Browser.NoSandbox
	browserCfg.SlowMotion = cfg.Browser.SlowMotion
	browserCfg.Bin = cfg.Browser.Bin
	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		_ = base.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}

	ui := service.NewInteractor(browser, log, service.InteractorConfig{
		PollInterval:        cfg.Wait.PollInterval,
		PerCandidateTimeout: cfg.Wait.CandidateTimeout,
	})
	timeouts := page.Timeouts{
		Page:      cfg.Wait.PageTimeout,
		Candidate: cfg.Wait.CandidateTimeout,
		Toast:     cfg.Wait.ToastTimeout,
	}
	loginPage := page.NewLoginPage(ui, browser, cfg.BaseURL, timeouts, log)
	homePage := page.NewHomePage(ui, browser, cfg.BaseURL, page.DefaultHomePath, timeouts, log)

	evidence := scenario.NewEvidence(browser, artifact.NewFileStore(cfg.ArtifactDir), log)
	scenarios := service.NewScenarioRegistry()
	scenarios.Register(scenario.NewLogin(loginPage, evidence, log))
	scenarios.Register(scenario.NewHome(homePage, loginPage, evidence, log))

	results := report.NewMemorySink()
	sink := report.Multi{report.NewLogSink(log), results}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	uc := runner.New(scenarios, cases, sink, userinteraction.NewConsoleProgress(out), log)

	log.Info("Container ready", "base_url", cfg.BaseURL, "headless", cfg.Browser.Headless)

	return &Container{
		RunID:     runID,
		Browser:   browser,
		Logger:    log,
		UI:        ui,
		Login:     loginPage,
		Home:      homePage,
		Scenarios: scenarios,
		Results:   results,
		Runner:    uc,
	}, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
