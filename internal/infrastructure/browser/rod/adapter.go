package rod

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"sync"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.BrowserPort = (*BrowserAdapter)(nil)

const (
	defaultSlowMotion = 0
	defaultTimeout    = 30 * time.Second
	maxScreenshotW    = 1280
)

var ErrInvalidSelector = fmt.Errorf("%w: invalid selector", entity.ErrInvalidConfiguration)

type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	// timeout bounds a single CDP round trip when the caller's context
	// carries no deadline.
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

type BrowserConfig struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	NoSandbox  bool
	DevTools   bool
	// Bin is a browser executable; empty lets rod fetch its own.
	Bin string
	// DisableSecurityFeatures relaxes CORS and mixed-content checks.
	DisableSecurityFeatures bool
	WindowWidth             int
	WindowHeight            int
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:     false,
		SlowMotion:   defaultSlowMotion,
		Timeout:      defaultTimeout,
		NoSandbox:    false,
		DevTools:     false,
		WindowWidth:  1920,
		WindowHeight: 1080,
	}
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain").
		Set("disable-notifications")
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}
	if cfg.WindowWidth > 0 && cfg.WindowHeight > 0 {
		l = l.Set("window-size", fmt.Sprintf("%d,%d", cfg.WindowWidth, cfg.WindowHeight))
	}
	if cfg.DisableSecurityFeatures {
		l = l.Set("disable-web-security").
			Set("allow-running-insecure-content")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:  browser,
		launcher: l,
		page:     page,
		timeout:  cfg.Timeout,
	}, nil
}

// bound gives the page the caller's context, adding the default timeout
// when the caller set no deadline.
func (b *BrowserAdapter) bound(ctx context.Context) (*rod.Page, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return b.page.Context(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return b.page.Context(ctx), cancel
}

func (b *BrowserAdapter) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	page, cancel := b.bound(ctx)
	defer cancel()

	if err := page.Navigate(rawURL); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for load of %s: %w", rawURL, classify(err))
	}
	return nil
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty", entity.ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https", "file", "about", "data":
		return nil
	default:
		return fmt.Errorf("%w: unsupported scheme %q", entity.ErrInvalidURL, u.Scheme)
	}
}

func (b *BrowserAdapter) FindElements(ctx context.Context, loc entity.LocatorStrategy) ([]output.ElementPort, error) {
	query, err := compile(loc)
	if err != nil {
		return nil, err
	}
	page, cancel := b.bound(ctx)
	defer cancel()

	var found rod.Elements
	if query.xpath {
		found, err = page.ElementsX(query.selector)
	} else {
		found, err = page.Elements(query.selector)
	}
	if err != nil {
		if isSelectorSyntaxError(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSelector, loc, err)
		}
		return nil, fmt.Errorf("find %s: %w", loc, classify(err))
	}

	result := make([]output.ElementPort, 0, len(found))
	for _, el := range found {
		result = append(result, newElement(el, b.timeout))
	}
	return result, nil
}

func (b *BrowserAdapter) ExecuteScript(ctx context.Context, fn string, args ...any) (gson.JSON, error) {
	page, cancel := b.bound(ctx)
	defer cancel()

	res, err := page.Eval(fn, args...)
	if err != nil {
		return gson.New(nil), fmt.Errorf("execute script: %w", classify(err))
	}
	return res.Value, nil
}

func (b *BrowserAdapter) CurrentURL(ctx context.Context) (string, error) {
	info, err := b.info(ctx)
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

func (b *BrowserAdapter) Title(ctx context.Context) (string, error) {
	info, err := b.info(ctx)
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

func (b *BrowserAdapter) info(ctx context.Context) (*proto.TargetTargetInfo, error) {
	page, cancel := b.bound(ctx)
	defer cancel()

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("page info: %w", classify(err))
	}
	return info, nil
}

func (b *BrowserAdapter) HTML(ctx context.Context) (string, error) {
	page, cancel := b.bound(ctx)
	defer cancel()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", classify(err))
	}
	return html, nil
}

func (b *BrowserAdapter) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	page, cancel := b.bound(ctx)
	defer cancel()

	imgBytes, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(85),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > maxScreenshotW {
		img = imaging.Resize(img, maxScreenshotW, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (b *BrowserAdapter) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.page != nil
}

func (b *BrowserAdapter) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

// isSelectorSyntaxError reports a malformed CSS or XPath expression, which
// is a caller defect rather than an absent element.
func isSelectorSyntaxError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "is not a valid") || strings.Contains(msg, "SyntaxError")
}
