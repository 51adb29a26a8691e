package scenario

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

const HomeName = "home"

// HomeFlow is the home page as the scenario drives it.
type HomeFlow interface {
	Open(ctx context.Context) error
	IsOnHomePage(ctx context.Context) bool
	IsPageTitleDisplayed(ctx context.Context) bool
	IsMainMenuDisplayed(ctx context.Context) bool
	IsWelcomeMessageDisplayed(ctx context.Context) bool
	IsUserProfileDisplayed(ctx context.Context) bool
	IsDashboardLoaded(ctx context.Context) bool
	IsElementPresent(ctx context.Context, css string) bool
	MessageText(ctx context.Context) string
	OpenSection(ctx context.Context, s entity.Section) (bool, error)
	Search(ctx context.Context, keyword string) error
	Logout(ctx context.Context) (bool, error)
	CurrentURL(ctx context.Context) (string, error)
}

type homeAction func(ctx context.Context, h HomeFlow) (bool, error)

func probe(check func(HomeFlow, context.Context) bool) homeAction {
	return func(ctx context.Context, h HomeFlow) (bool, error) {
		return check(h, ctx), nil
	}
}

func section(s entity.Section) homeAction {
	return func(ctx context.Context, h HomeFlow) (bool, error) {
		return h.OpenSection(ctx, s)
	}
}

func search(keyword string, found func(ctx context.Context, h HomeFlow) bool) homeAction {
	return func(ctx context.Context, h HomeFlow) (bool, error) {
		if err := h.Search(ctx, keyword); err != nil {
			return false, err
		}
		return found(ctx, h), nil
	}
}

var homeActions = map[string]homeAction{
	"navigate":       probe(HomeFlow.IsOnHomePage),
	"verify_title":   probe(HomeFlow.IsPageTitleDisplayed),
	"verify_menu":    probe(HomeFlow.IsMainMenuDisplayed),
	"verify_welcome": probe(HomeFlow.IsWelcomeMessageDisplayed),
	"verify_profile": probe(HomeFlow.IsUserProfileDisplayed),
	"verify_load": func(ctx context.Context, h HomeFlow) (bool, error) {
		return h.IsOnHomePage(ctx) && h.IsDashboardLoaded(ctx), nil
	},
	"click_orders":   section(entity.SectionOrders),
	"click_products": section(entity.SectionProducts),
	"click_settings": section(entity.SectionSettings),
	"search_valid": search("valid keyword", func(ctx context.Context, h HomeFlow) bool {
		return h.IsElementPresent(ctx, ".search-results")
	}),
	"search_invalid": search("xyzinvalidkeyword123", func(ctx context.Context, h HomeFlow) bool {
		return h.IsElementPresent(ctx, ".no-results") || strings.Contains(strings.ToLower(h.MessageText(ctx)), "no results")
	}),
	"logout": func(ctx context.Context, h HomeFlow) (bool, error) {
		return h.Logout(ctx)
	},
	"navigate_no_auth": func(ctx context.Context, h HomeFlow) (bool, error) {
		url, _ := h.CurrentURL(ctx)
		return strings.Contains(strings.ToLower(url), "login") ||
			strings.Contains(strings.ToLower(h.MessageText(ctx)), "denied"), nil
	},
}

// HomeActions lists the actions a home row may name.
func HomeActions() []string {
	names := make([]string, 0, len(homeActions))
	for name := range homeActions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ input.Scenario = (*Home)(nil)

// Home optionally logs in with the row's credentials, opens the home page
// and performs the row's action.
type Home struct {
	home     HomeFlow
	login    LoginFlow
	evidence *Evidence
	logger   output.LoggerPort
}

func NewHome(home HomeFlow, login LoginFlow, evidence *Evidence, logger output.LoggerPort) *Home {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &Home{home: home, login: login, evidence: evidence, logger: logger.WithField("scenario", HomeName)}
}

func (s *Home) Name() string { return HomeName }

func (s *Home) Description() string {
	return "Open the home page and run a navigation, verification, search or logout action"
}

func (s *Home) Run(ctx context.Context, tc entity.TestCase) (entity.CaseResult, error) {
	action := strings.ToLower(strings.TrimSpace(tc.Action))
	run, ok := homeActions[action]
	if !ok {
		return entity.CaseResult{}, fmt.Errorf("%w: unknown home action %q, expected one of %s",
			entity.ErrInvalidConfiguration, tc.Action, strings.Join(HomeActions(), ", "))
	}

	c := newCase(ctx, s.Name(), tc, s.evidence)

	if tc.Username != "" && s.login != nil {
		if err := s.signIn(ctx, tc); err != nil {
			return c.fail("sign in", err), nil
		}
	}

	if err := s.home.Open(ctx); err != nil {
		return c.fail("open home page", err), nil
	}

	succeeded, err := run(ctx, s.home)
	if err != nil {
		return c.fail(action, err), nil
	}

	url, _ := s.home.CurrentURL(ctx)
	if succeeded {
		c.message = fmt.Sprintf("%s succeeded at %s", action, url)
	} else {
		c.message = fmt.Sprintf("%s failed at %s", action, url)
	}
	s.logger.Debug("action done", "case", tc.Title, "action", action, "succeeded", succeeded)
	return c.verdict(succeeded), nil
}

func (s *Home) signIn(ctx context.Context, tc entity.TestCase) error {
	if err := s.login.Open(ctx); err != nil {
		return err
	}
	if err := s.login.Login(ctx, tc.Username, tc.Password); err != nil {
		return err
	}
	ok, err := s.login.WaitLoggedIn(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errStillOnAuthPage
	}
	return nil
}
