package abc

import (
	"bytes"
	"testing"

	"github.com/abctools/abcctl/internal/uia"
	"github.com/abctools/abcctl/internal/uia/uiatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_FindsHostByTitleSubstring(t *testing.T) {
	sim := uiatest.New()
	sim.RootNode().Add("Some Editor", "Window", "")
	sim.RootNode().Add("ABC Accounting Client4 - Station 2", "Window", "")
	client := New(sim, WithTiming(fastTiming()))

	window, err := client.Window()
	require.NoError(t, err)

	name, err := window.Name()
	require.NoError(t, err)
	assert.Contains(t, name, WindowTitle)
}

func TestWindow_HostNotRunning(t *testing.T) {
	sim := uiatest.New()
	client := New(sim, WithTiming(fastTiming()))

	_, err := client.Window()

	var notFound *uia.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestNewRecord_NoDialog(t *testing.T) {
	sim, window, client := newHost(t)

	require.NoError(t, client.NewRecord(window, false))
	assert.Equal(t, []string{"{ctrl}+N"}, sim.KeysSent(), "only Ctrl+N when there is nothing to save")
}

func TestNewRecord_DialogDiscard(t *testing.T) {
	sim, window, client := newHost(t)
	sim.OnKeys = func(target *uiatest.Node, keys string) {
		if keys == "{ctrl}+N" {
			sim.RootNode().Add("Save changes before proceeding?", "Dialog", "")
		}
	}

	require.NoError(t, client.NewRecord(window, false))
	assert.Equal(t, []string{"{ctrl}+N", "{right}{enter}"}, sim.KeysSent())
}

func TestNewRecord_DialogSave(t *testing.T) {
	sim, window, client := newHost(t)
	sim.OnKeys = func(target *uiatest.Node, keys string) {
		if keys == "{ctrl}+N" {
			sim.RootNode().Add("Save changes before proceeding?", "Dialog", "")
		}
	}

	require.NoError(t, client.NewRecord(window, true))
	assert.Equal(t, []string{"{ctrl}+N", "{enter}"}, sim.KeysSent())
}

func TestReportMacros(t *testing.T) {
	tests := []struct {
		name string
		run  func(*Client, uia.Element) error
		want []string
	}{
		{
			name: "323 customer invoice payments",
			run:  func(c *Client, w uia.Element) error { return c.Report323(w, 100, 200) },
			want: []string{"{F10}3", "23{enter}", "{enter}100{enter}200{enter}t"},
		},
		{
			name: "311 customer invoice ledger",
			run:  func(c *Client, w uia.Element) error { return c.Report311(w, 100, 200) },
			want: []string{"{F10}3", "11{enter}{enter}{enter}", "{enter}100{enter}200{enter}t"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, window, client := newHost(t)
			require.NoError(t, tt.run(client, window))
			assert.Equal(t, tt.want, sim.KeysSent())
		})
	}
}

func TestDumpTree(t *testing.T) {
	_, window, client := newHost(t)
	screen := window.Add("Sales - Invoices (R) 2314", "Window", "")
	screen.Add("", TextBoxClass, "123")

	var buf bytes.Buffer
	require.NoError(t, client.DumpTree(&buf))

	out := buf.String()
	assert.Contains(t, out, `name: "Desktop"`)
	assert.Contains(t, out, `classname: "ThunderRT6TextBox"`)
	assert.Contains(t, out, `value: "123"`)
}
