package page

import (
	"context"
	"testing"
	"time"

	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHome(t *testing.T) (*HomePage, *mocks.MockInteractor, *mocks.MockBrowser) {
	t.Helper()
	ui := new(mocks.MockInteractor)
	br := new(mocks.MockBrowser)
	t.Cleanup(func() {
		ui.AssertExpectations(t)
		br.AssertExpectations(t)
	})
	return NewHomePage(ui, br, "https://happyorder.vn", "", testTimeouts, nil), ui, br
}

func TestHomePage_Open(t *testing.T) {
	p, ui, br := newHome(t)
	ctx := context.Background()

	br.On("Navigate", ctx, "https://happyorder.vn/client-area").Return(nil).Once()
	ui.On("WaitScript", ctx, entity.ScriptTruthy(pageReadyScript, testTimeouts.Page)).Return(nil).Once()

	require.NoError(t, p.Open(ctx))
}

func TestHomePage_IsDashboardLoadedShortCircuits(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()

	ui.On("IsDisplayed", ctx, HomeDashboard, testTimeouts.Candidate).Return(false).Once()

	assert.False(t, p.IsDashboardLoaded(ctx))
	ui.AssertNotCalled(t, "IsDisplayed", ctx, HomeTitle, mock.Anything)
}

func TestHomePage_IsDashboardLoaded(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()

	for _, target := range []entity.Target{HomeDashboard, HomeTitle, HomeMenu} {
		ui.On("IsDisplayed", ctx, target, testTimeouts.Candidate).Return(true).Once()
	}

	assert.True(t, p.IsDashboardLoaded(ctx))
}

func TestHomePage_IsOnHomePage(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()

	ui.On("CurrentURL", ctx).Return("https://happyorder.vn/client-area/Dashboard", nil).Once()
	assert.True(t, p.IsOnHomePage(ctx))

	ui.On("CurrentURL", ctx).Return("https://happyorder.vn/auth/login", nil).Once()
	assert.False(t, p.IsOnHomePage(ctx))
}

func TestHomePage_OpenSection(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()
	link := entity.NewTarget("Orders link", entity.LinkText("Orders"), entity.Text("Orders")).WithTimeout(testTimeouts.Candidate)

	ui.On("ClickWithEscalation", ctx, link).Return(entity.Done(entity.PathNative, link.Candidates[0]), nil).Once()
	ui.On("WaitURL", ctx, entity.URLContains("orders", testTimeouts.Page)).Return("https://happyorder.vn/orders", nil).Once()

	ok, err := p.OpenSection(ctx, entity.SectionOrders)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHomePage_LogoutTimeoutIsFalse(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()

	ui.On("ClickWithEscalation", ctx, HomeLogout.WithTimeout(testTimeouts.Candidate)).
		Return(entity.Done(entity.PathScript, HomeLogout.Candidates[1]), nil).Once()
	ui.On("WaitURL", ctx, entity.URLContains("login", testTimeouts.Page)).
		Return("", &entity.TimeoutError{What: "url", Timeout: time.Second}).Once()

	ok, err := p.Logout(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHomePage_Search(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()

	ui.On("Type", ctx, HomeSearchBox.WithTimeout(testTimeouts.Candidate), "pho").
		Return(entity.Done(entity.PathNative, HomeSearchBox.Candidates[0]), nil).Once()
	ui.On("Click", ctx, HomeSearchButton.WithTimeout(testTimeouts.Candidate)).
		Return(entity.Done(entity.PathNative, HomeSearchButton.Candidates[0]), nil).Once()

	require.NoError(t, p.Search(ctx, "pho"))
}

func TestHomePage_MessageTextReadsEachCandidate(t *testing.T) {
	p, ui, _ := newHome(t)
	ctx := context.Background()

	ui.On("ReadTransient", ctx, HomeMessage[0], testTimeouts.Toast).Return("").Once()
	ui.On("ReadTransient", ctx, HomeMessage[1], testTimeouts.Toast).Return("No results").Once()

	assert.Equal(t, "No results", p.MessageText(ctx))
}

func TestHomePage_IsElementPresentBlank(t *testing.T) {
	p, _, _ := newHome(t)
	assert.False(t, p.IsElementPresent(context.Background(), "  "))
}
