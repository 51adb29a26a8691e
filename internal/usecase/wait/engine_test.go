package wait

import (
	"context"
	"errors"
	"testing"
	"time"

	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/testutil/fakedom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastEngine() *Engine {
	return New(WithPollInterval(10 * time.Millisecond))
}

func TestPoll_ImmediateSuccess(t *testing.T) {
	calls := 0
	v, err := Poll(context.Background(), fastEngine(), "answer", time.Second, 0, func(context.Context) (int, bool, error) {
		calls++
		return 42, true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestPoll_TimeoutIsTyped(t *testing.T) {
	start := time.Now()
	_, err := Poll(context.Background(), fastEngine(), "never", 80*time.Millisecond, 0, func(context.Context) (struct{}, bool, error) {
		return struct{}{}, false, nil
	})
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, entity.ErrTimeout)
	var te *entity.TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "never", te.What)
	assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestPoll_NonPositiveTimeout(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		_, err := Poll(context.Background(), fastEngine(), "x", timeout, 0, func(context.Context) (int, bool, error) {
			t.Fatal("probe must not run")
			return 0, false, nil
		})
		assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
		assert.NotErrorIs(t, err, entity.ErrTimeout)
	}
}

func TestPoll_FatalProbeErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := Poll(context.Background(), fastEngine(), "x", time.Second, 0, func(context.Context) (int, bool, error) {
		calls++
		return 0, false, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestPoll_RetryableErrorIsRemembered(t *testing.T) {
	flaky := errors.New("flaky")
	_, err := Poll(context.Background(), fastEngine(), "x", 60*time.Millisecond, 0, func(context.Context) (int, bool, error) {
		return 0, false, Retry(flaky)
	})
	var te *entity.TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, flaky, te.Last)
}

func TestPoll_CancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err := Poll(ctx, fastEngine(), "x", 5*time.Second, 0, func(context.Context) (int, bool, error) {
		return 0, false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, entity.ErrTimeout)
}

func TestRetry_Nil(t *testing.T) {
	assert.NoError(t, Retry(nil))
}

func TestNew_Defaults(t *testing.T) {
	assert.Equal(t, entity.DefaultPollInterval, New().PollInterval())
	assert.Equal(t, entity.DefaultPollInterval, New(WithPollInterval(-1)).PollInterval())
	assert.Equal(t, 5*time.Millisecond, New(WithPollInterval(5*time.Millisecond)).PollInterval())
}

func TestElement_AppearsLater(t *testing.T) {
	dom := fakedom.New()
	loc := entity.CSS("#late")
	dom.Add(loc, &fakedom.Node{Text: "hi", AppearAt: 60 * time.Millisecond})

	el, err := fastEngine().Element(context.Background(), dom, loc, entity.VisibleWithin(time.Second))
	require.NoError(t, err)
	text, err := el.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	assert.GreaterOrEqual(t, dom.Elapsed(), 60*time.Millisecond)
}

func TestElement_PicksFirstSatisfyingMatch(t *testing.T) {
	dom := fakedom.New()
	loc := entity.CSS("button")
	dom.Add(loc, &fakedom.Node{Text: "hidden", Hidden: true})
	dom.Add(loc, &fakedom.Node{Text: "disabled", Disabled: true})
	dom.Add(loc, &fakedom.Node{Text: "ready"})

	el, err := fastEngine().Element(context.Background(), dom, loc, entity.ClickableWithin(time.Second))
	require.NoError(t, err)
	text, _ := el.Text(context.Background())
	assert.Equal(t, "ready", text)
}

func TestElement_HiddenTimesOut(t *testing.T) {
	dom := fakedom.New()
	loc := entity.CSS("#ghost")
	dom.Add(loc, &fakedom.Node{Hidden: true})

	_, err := fastEngine().Element(context.Background(), dom, loc, entity.VisibleWithin(50*time.Millisecond))
	assert.ErrorIs(t, err, entity.ErrTimeout)
}

func TestElement_InvalidSpec(t *testing.T) {
	dom := fakedom.New()
	e := fastEngine()

	_, err := e.Element(context.Background(), dom, entity.CSS("#a"), entity.URLContains("x", time.Second))
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)

	_, err = e.Element(context.Background(), dom, entity.LocatorStrategy{By: "shadow", Value: "x"}, entity.VisibleWithin(time.Second))
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)

	_, err = e.Element(context.Background(), dom, entity.CSS("#a"), entity.VisibleWithin(0))
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}

func TestElement_FindErrorAborts(t *testing.T) {
	dom := fakedom.New()
	loc := entity.CSS("a[")
	dom.FailFind(loc, entity.ErrInvalidConfiguration)

	_, err := fastEngine().Element(context.Background(), dom, loc, entity.VisibleWithin(time.Second))
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
	assert.Equal(t, 1, dom.Finds(loc))
}

func TestURL(t *testing.T) {
	dom := fakedom.New()
	dom.SetURL("https://happyorder.vn/client-area/auth/login")
	e := fastEngine()

	url, err := e.URL(context.Background(), dom, entity.URLContains("/auth/login", time.Second))
	require.NoError(t, err)
	assert.Equal(t, "https://happyorder.vn/client-area/auth/login", url)

	_, err = e.URL(context.Background(), dom, entity.URLEquals("https://happyorder.vn/", 40*time.Millisecond))
	assert.ErrorIs(t, err, entity.ErrTimeout)

	_, err = e.URL(context.Background(), dom, entity.ScriptTruthy("() => true", time.Second))
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}

func TestScript_WaitsForTruthy(t *testing.T) {
	dom := fakedom.New()
	polls := 0
	dom.OnScript(func(fn string) (any, error) {
		polls++
		assert.Contains(t, fn, `document.readyState === "complete"`)
		return polls >= 3, nil
	})

	err := fastEngine().Script(context.Background(), dom, entity.ScriptTruthy(`() => document.readyState === "complete"`, time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3, polls)
}

func TestScript_StaleContextIsTransient(t *testing.T) {
	dom := fakedom.New()
	polls := 0
	dom.OnScript(func(string) (any, error) {
		polls++
		if polls == 1 {
			return nil, entity.ErrStale
		}
		return true, nil
	})

	err := fastEngine().Script(context.Background(), dom, entity.ScriptTruthy("() => 1", time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, polls)
}
