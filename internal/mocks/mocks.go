package mocks

import (
	"context"
	"time"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

var (
	_ input.Interactor      = (*MockInteractor)(nil)
	_ output.NavigatorPort  = (*MockBrowser)(nil)
	_ output.DocumentPort   = (*MockBrowser)(nil)
	_ output.ScreenshotPort = (*MockBrowser)(nil)
	_ output.ArtifactStore  = (*MockArtifactStore)(nil)
	_ output.ResultSink     = (*MockResultSink)(nil)
)

// -- Interactor Mock --

type MockInteractor struct {
	mock.Mock
}

func (m *MockInteractor) Resolve(ctx context.Context, target entity.Target, cond entity.ConditionKind) (*output.ResolvedElement, error) {
	args := m.Called(ctx, target, cond)
	el, _ := args.Get(0).(*output.ResolvedElement)
	return el, args.Error(1)
}

func (m *MockInteractor) Type(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error) {
	args := m.Called(ctx, target, text)
	return args.Get(0).(entity.InteractionOutcome), args.Error(1)
}

func (m *MockInteractor) Click(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(entity.InteractionOutcome), args.Error(1)
}

func (m *MockInteractor) ClickWithEscalation(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(entity.InteractionOutcome), args.Error(1)
}

func (m *MockInteractor) SelectByText(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error) {
	args := m.Called(ctx, target, text)
	return args.Get(0).(entity.InteractionOutcome), args.Error(1)
}

func (m *MockInteractor) SelectByValue(ctx context.Context, target entity.Target, value string) (entity.InteractionOutcome, error) {
	args := m.Called(ctx, target, value)
	return args.Get(0).(entity.InteractionOutcome), args.Error(1)
}

func (m *MockInteractor) ReadTransient(ctx context.Context, loc entity.LocatorStrategy, timeout time.Duration) string {
	args := m.Called(ctx, loc, timeout)
	return args.String(0)
}

func (m *MockInteractor) IsDisplayed(ctx context.Context, target entity.Target, timeout time.Duration) bool {
	args := m.Called(ctx, target, timeout)
	return args.Bool(0)
}

func (m *MockInteractor) WaitURL(ctx context.Context, spec entity.WaitSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

func (m *MockInteractor) WaitScript(ctx context.Context, spec entity.WaitSpec) error {
	args := m.Called(ctx, spec)
	return args.Error(0)
}

func (m *MockInteractor) CurrentURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockInteractor) Title(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// -- Browser Mock --

// MockBrowser covers the navigation, document and screenshot ports plus
// the page URL and title.
type MockBrowser struct {
	mock.Mock
}

func (m *MockBrowser) Navigate(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockBrowser) HTML(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBrowser) CurrentURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBrowser) Title(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBrowser) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	args := m.Called(ctx)
	shot, _ := args.Get(0).(*entity.Screenshot)
	return shot, args.Error(1)
}

// -- Reporting Mocks --

type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) SaveScreenshot(name string, shot *entity.Screenshot) (string, error) {
	args := m.Called(name, shot)
	return args.String(0), args.Error(1)
}

type MockResultSink struct {
	mock.Mock
}

func (m *MockResultSink) Record(ctx context.Context, result entity.CaseResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}
