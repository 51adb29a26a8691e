package scenario

import (
	"context"
	"errors"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/infrastructure/browser/pagesource"
)

const (
	evidenceTimeout = 10 * time.Second
	maxPageText     = 2000
	maxControls     = 30
)

// EvidenceSource is the part of a browser session failure evidence is
// read from.
type EvidenceSource interface {
	output.ScreenshotPort
	output.DocumentPort
	CurrentURL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
}

// Evidence captures what the browser looked like when a step failed.
// Every capture is best effort; a failed screenshot never hides the
// original error.
type Evidence struct {
	source EvidenceSource
	store  output.ArtifactStore
	logger output.LoggerPort
	now    func() time.Time
}

func NewEvidence(source EvidenceSource, store output.ArtifactStore, logger output.LoggerPort) *Evidence {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &Evidence{source: source, store: store, logger: logger, now: time.Now}
}

func (e *Evidence) Capture(ctx context.Context, name, step string, cause error) entity.Diagnostic {
	// The run context may already be cancelled; evidence is still worth
	// collecting.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), evidenceTimeout)
	defer cancel()

	d := entity.Diagnostic{Step: step, CapturedAt: e.now()}
	if cause != nil {
		d.Error = cause.Error()
	}
	var nf *entity.NotFoundError
	if errors.As(cause, &nf) {
		d.Attempted = entity.LocatorCandidateList(nf.Attempted).Strings()
	}

	if e.source == nil {
		return d
	}

	if url, err := e.source.CurrentURL(ctx); err == nil {
		d.URL = url
	}
	if title, err := e.source.Title(ctx); err == nil {
		d.Title = title
	}
	if html, err := e.source.HTML(ctx); err == nil {
		d.PageText = pagesource.VisibleText(html, &pagesource.CleanConfig{
			TagsToRemove:  pagesource.DefaultCleanConfig.TagsToRemove,
			MaxOutputSize: maxPageText,
		})
		for _, c := range pagesource.Controls(html, &pagesource.ControlsConfig{MaxControls: maxControls}) {
			d.Controls = append(d.Controls, c.String())
		}
	} else {
		e.logger.Debug("page source unavailable", "error", err)
	}

	if e.store == nil {
		return d
	}
	shot, err := e.source.Screenshot(ctx)
	if err != nil {
		e.logger.Warn("screenshot failed", "step", step, "error", err)
		return d
	}
	path, err := e.store.SaveScreenshot(name, shot)
	if err != nil {
		e.logger.Warn("screenshot not saved", "step", step, "error", err)
		return d
	}
	d.ScreenshotPath = path
	return d
}
