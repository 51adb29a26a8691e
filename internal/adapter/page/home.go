package page

import (
	"context"
	"fmt"
	"strings"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

const DefaultHomePath = "/client-area"

var (
	HomeTitle        = entity.NewTarget("page title", entity.CSS("h1.page-title, h1.home-title, .header-title"))
	HomeUserProfile  = entity.NewTarget("user profile", entity.CSS(".user-profile, .user-info, #userProfile"))
	HomeMenu         = entity.NewTarget("main menu", entity.CSS(".nav-menu, #mainMenu, .main-navigation"), entity.CSS("nav, [role='navigation']"))
	HomeDashboard    = entity.NewTarget("dashboard", entity.CSS(".dashboard, #dashboard, .dashboard-container"))
	HomeWelcome      = entity.NewTarget("welcome message", entity.CSS(".welcome-message, .greeting, #welcomeMsg"))
	HomeStats        = entity.NewTarget("stats card", entity.CSS(".stats-card, .dashboard-stats, .summary-card"))
	HomeSearchButton = entity.NewTarget("search button", entity.CSS("button.search-btn, #btnSearch, .search-button"))
	HomeMessage      = entity.Candidates(entity.CSS(".alert, .message, .notification, .toast"), entity.XPath("//div[@class='ant-message']"))

	HomeLogout = entity.NewTarget("logout button",
		entity.CSS(".logout-button, #btnLogout, button[name='logout']"),
		entity.XPath("//button[contains(normalize-space(.), 'Đăng xuất') or contains(normalize-space(.), 'Logout')]"),
	)
	HomeSearchBox = entity.NewTarget("search box",
		entity.CSS("input[type='search'], #searchBox, .search-input"),
		entity.XPath("//input[contains(@placeholder, 'Tìm') or contains(@placeholder, 'Search')]"),
	)
)

type HomePage struct {
	base
	path string
}

func NewHomePage(ui input.Interactor, browser Browser, baseURL, path string, timeouts Timeouts, logger output.LoggerPort) *HomePage {
	if path == "" {
		path = DefaultHomePath
	}
	if logger == nil {
		logger = output.NopLogger()
	}
	return &HomePage{
		base: newBase(ui, browser, baseURL, timeouts, logger.WithField("page", "home")),
		path: path,
	}
}

func (p *HomePage) Open(ctx context.Context) error {
	return p.open(ctx, p.path)
}

func (p *HomePage) IsOnHomePage(ctx context.Context) bool {
	url, err := p.ui.CurrentURL(ctx)
	if err != nil {
		return false
	}
	return containsFold(url, "home") || containsFold(url, "dashboard") || containsFold(url, p.path)
}

func (p *HomePage) IsPageTitleDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, HomeTitle)
}

func (p *HomePage) IsMainMenuDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, HomeMenu)
}

func (p *HomePage) IsWelcomeMessageDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, HomeWelcome)
}

func (p *HomePage) IsUserProfileDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, HomeUserProfile)
}

func (p *HomePage) IsStatsDisplayed(ctx context.Context) bool {
	return p.displayed(ctx, HomeStats)
}

// IsDashboardLoaded needs the dashboard section, the title and the menu.
func (p *HomePage) IsDashboardLoaded(ctx context.Context) bool {
	return p.displayed(ctx, HomeDashboard) && p.IsPageTitleDisplayed(ctx) && p.IsMainMenuDisplayed(ctx)
}

// IsElementPresent probes an arbitrary CSS selector.
func (p *HomePage) IsElementPresent(ctx context.Context, css string) bool {
	if strings.TrimSpace(css) == "" {
		return false
	}
	return p.displayed(ctx, entity.NewTarget(css, entity.CSS(css)))
}

func (p *HomePage) WelcomeText(ctx context.Context) string {
	return p.readAny(ctx, HomeWelcome.Candidates, p.timeouts.Candidate)
}

func (p *HomePage) TitleText(ctx context.Context) string {
	return p.readAny(ctx, HomeTitle.Candidates, p.timeouts.Candidate)
}

// MessageText reads any alert or notification on the page.
func (p *HomePage) MessageText(ctx context.Context) string {
	return p.readAny(ctx, HomeMessage, p.timeouts.Toast)
}

// OpenSection clicks the section link and reports whether the URL moved to
// it.
func (p *HomePage) OpenSection(ctx context.Context, s entity.Section) (bool, error) {
	link := entity.NewTarget(string(s)+" link", entity.LinkText(string(s)), entity.Text(string(s)))
	if _, err := p.ui.ClickWithEscalation(ctx, p.target(link)); err != nil {
		return false, fmt.Errorf("open %s: %w", s, err)
	}
	return p.waitURLContains(ctx, strings.ToLower(string(s)))
}

func (p *HomePage) Search(ctx context.Context, keyword string) error {
	if _, err := p.ui.Type(ctx, p.target(HomeSearchBox), keyword); err != nil {
		return err
	}
	_, err := p.ui.Click(ctx, p.target(HomeSearchButton))
	return err
}

// Logout clicks logout and reports whether the browser landed on a login
// URL.
func (p *HomePage) Logout(ctx context.Context) (bool, error) {
	if _, err := p.ui.ClickWithEscalation(ctx, p.target(HomeLogout)); err != nil {
		return false, err
	}
	return p.waitURLContains(ctx, "login")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
