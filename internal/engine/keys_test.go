package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/abctools/abcctl/internal/uia"
	"github.com/abctools/abcctl/internal/uia/uiatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StepsInOrderWithSettle(t *testing.T) {
	sim := uiatest.New()
	win := sim.RootNode().Add("ABC Accounting Client4", "Window", "")

	var pauses []time.Duration
	timing := fastTiming()
	timing.Sleep = func(d time.Duration) { pauses = append(pauses, d) }

	d := NewDispatcher(timing, nil)
	macro := Macro{
		{Keys: "{F10}3", Settle: 5 * time.Millisecond},
		{Keys: "23{enter}", Settle: 5 * time.Millisecond},
		{Hold: "{ctrl}", Keys: "N"},
	}
	require.NoError(t, d.Run(win, macro))

	assert.Equal(t, []string{"{F10}3", "23{enter}", "{ctrl}+N"}, sim.KeysSent())
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 5 * time.Millisecond}, pauses)
}

func TestRun_AbortsOnInjectionError(t *testing.T) {
	sim := uiatest.New()
	win := sim.RootNode().Add("ABC Accounting Client4", "Window", "")
	stale := win.Add("gone", "Window", "")
	stale.Detach()

	d := NewDispatcher(fastTiming(), nil)
	err := d.Run(stale, Macro{
		{Keys: "{F10}R"},
		{Keys: "never sent"},
	})

	var inj *uia.InjectionError
	require.ErrorAs(t, err, &inj)
	assert.Equal(t, "{F10}R", inj.Keys)
	assert.True(t, errors.Is(err, uiatest.ErrStale))
	assert.Empty(t, sim.KeysSent(), "nothing reaches the host once the handle is stale")
}

func TestSendHold_WrapsInjectionFailure(t *testing.T) {
	sim := uiatest.New()
	win := sim.RootNode().Add("ABC Accounting Client4", "Window", "")
	win.Detach()

	d := NewDispatcher(fastTiming(), nil)
	err := d.SendHold(win, "{ctrl}", "N", time.Millisecond)

	var inj *uia.InjectionError
	require.ErrorAs(t, err, &inj)
	assert.Equal(t, "{ctrl}+N", inj.Keys)
}
