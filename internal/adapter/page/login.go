package page

import (
	"context"
	"errors"
	"fmt"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/infrastructure/browser/pagesource"
)

const (
	LoginPath = "/client-area/auth/login"

	// authFragment is present in the URL for as long as the user is on the
	// auth page.
	authFragment   = "/auth/login"
	leftAuthScript = `() => !window.location.href.includes("/auth/login")`

	InvalidCredentialsMessage = "Tên tài khoản hoặc mật khẩu không chính xác"
	NoticeInPageMessage       = "Error message found in page"

	invalidCredentialsFragment = "không chính xác"
	noticeFragment             = "Thông báo"
)

var (
	LoginUsername = entity.NewTarget("username field",
		entity.CSS("input[type='text'], input[type='email']"),
		entity.XPath("//input[@type='text' or @type='email']"),
	)
	LoginPassword = entity.NewTarget("password field",
		entity.CSS("input[type='password']"),
		entity.XPath("//input[@type='password']"),
	)
	LoginButton = entity.NewTarget("login button",
		entity.CSS("button.btn-danger.btn-auth, button.btn.btn-danger, .btn-auth"),
		entity.XPath("//button[contains(@class, 'btn-danger') and contains(@class, 'btn-auth')]"),
	)
	LoginErrorMessage = entity.NewTarget("error message",
		entity.XPath("//*[contains(text(), 'Thông báo') or contains(text(), 'không chính xác') or contains(@class, 'error') or contains(@class, 'alert')]"),
		entity.CSS(".alert, .error, .notification, [role='alert']"),
	)
	LoginSuccessMessage = entity.NewTarget("success message",
		entity.XPath("//*[contains(@class, 'success') or contains(@class, 'alert-success')]"),
	)
	LoginToast = entity.XPath("//div[@class='ant-message']")
)

type LoginPage struct {
	base
}

func NewLoginPage(ui input.Interactor, browser Browser, baseURL string, timeouts Timeouts, logger output.LoggerPort) *LoginPage {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &LoginPage{base: newBase(ui, browser, baseURL, timeouts, logger.WithField("page", "login"))}
}

func (p *LoginPage) URL() string {
	return p.baseURL + LoginPath
}

// Open navigates to the login form and waits until the username field is
// visible.
func (p *LoginPage) Open(ctx context.Context) error {
	if err := p.open(ctx, LoginPath); err != nil {
		return err
	}
	if _, err := p.ui.Resolve(ctx, p.target(LoginUsername), entity.ConditionVisible); err != nil {
		return fmt.Errorf("login form did not render: %w", err)
	}
	return nil
}

func (p *LoginPage) EnterUsername(ctx context.Context, username string) error {
	out, err := p.ui.Type(ctx, p.target(LoginUsername), username)
	if err != nil {
		return err
	}
	p.logger.Info("entered username", "username", username, "strategy", out.Strategy.String())
	return nil
}

func (p *LoginPage) EnterPassword(ctx context.Context, password string) error {
	out, err := p.ui.Type(ctx, p.target(LoginPassword), password)
	if err != nil {
		return err
	}
	p.logger.Info("entered password", "strategy", out.Strategy.String())
	return nil
}

// Submit clicks the login button, escalating to a script click when the
// native click is refused.
func (p *LoginPage) Submit(ctx context.Context) error {
	out, err := p.ui.ClickWithEscalation(ctx, p.target(LoginButton))
	if err != nil {
		return err
	}
	p.logger.Info("clicked login button", "path", string(out.Path), "strategy", out.Strategy.String())
	return nil
}

// Login fills the form and submits it. The page must already be open.
func (p *LoginPage) Login(ctx context.Context, username, password string) error {
	if err := p.EnterUsername(ctx, username); err != nil {
		return err
	}
	if err := p.EnterPassword(ctx, password); err != nil {
		return err
	}
	return p.Submit(ctx)
}

// ToastMessage reads the ant-design notification. "" means none appeared.
func (p *LoginPage) ToastMessage(ctx context.Context) string {
	return p.ui.ReadTransient(ctx, LoginToast, p.timeouts.Toast)
}

func (p *LoginPage) IsErrorMessageDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, LoginErrorMessage)
}

func (p *LoginPage) IsSuccessMessageDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, LoginSuccessMessage)
}

// ErrorMessage reads the inline error, falling back to scanning the page
// source for the known credential-error wording.
func (p *LoginPage) ErrorMessage(ctx context.Context) string {
	if text := p.readAny(ctx, LoginErrorMessage.Candidates, p.timeouts.Candidate); text != "" {
		return text
	}

	html, err := p.browser.HTML(ctx)
	if err != nil {
		p.logger.Debug("page source unavailable", "error", err)
		return ""
	}
	switch {
	case pagesource.ContainsText(html, invalidCredentialsFragment):
		return InvalidCredentialsMessage
	case pagesource.ContainsText(html, noticeFragment):
		return NoticeInPageMessage
	}
	return ""
}

// Message is whatever feedback the form gave: the toast when one shows,
// otherwise the inline error.
func (p *LoginPage) Message(ctx context.Context) string {
	if text := p.ToastMessage(ctx); text != "" {
		return text
	}
	return p.ErrorMessage(ctx)
}

// WaitLoggedIn waits for the browser to leave the auth page. A timeout
// reports false with no error.
func (p *LoginPage) WaitLoggedIn(ctx context.Context) (bool, error) {
	err := p.ui.WaitScript(ctx, entity.ScriptTruthy(leftAuthScript, p.timeouts.Page))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, entity.ErrTimeout):
		url, _ := p.ui.CurrentURL(ctx)
		p.logger.Info("still on auth page", "url", url)
		return false, nil
	default:
		return false, err
	}
}

// OnLoginPage reports whether the current URL is the auth page.
func (p *LoginPage) OnLoginPage(ctx context.Context) bool {
	url, err := p.ui.CurrentURL(ctx)
	return err == nil && containsFold(url, authFragment)
}
