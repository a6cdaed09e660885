package abc

import (
	"strings"
	"testing"
	"time"

	"github.com/abctools/abcctl/internal/engine"
	"github.com/abctools/abcctl/internal/uia"
	"github.com/abctools/abcctl/internal/uia/uiatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastTiming() engine.Timing {
	return engine.Timing{
		Unit:           time.Millisecond,
		PollInterval:   time.Millisecond,
		FindTimeout:    50 * time.Millisecond,
		CheckTimeout:   10 * time.Millisecond,
		PopupTimeout:   5 * time.Millisecond,
		ResubmitSettle: time.Millisecond,
		Sleep:          func(time.Duration) {},
	}
}

func newHost(t *testing.T) (*uiatest.Sim, *uiatest.Node, *Client) {
	t.Helper()
	sim := uiatest.New()
	window := sim.RootNode().Add("ABC Accounting Client4", "Window", "")
	client := New(sim, WithTiming(fastTiming()))
	return sim, window, client
}

// addInvoicesScreen builds the invoices screen with the full complement of
// text boxes so the paid (29) and total (38) ordinals resolve.
func addInvoicesScreen(window *uiatest.Node, invoice, paid, total string) (*uiatest.Node, []*uiatest.Node) {
	screen := window.Add("Sales - Invoices (R) 2314", "Window", "")
	boxes := make([]*uiatest.Node, 40)
	for i := range boxes {
		boxes[i] = screen.Add("", TextBoxClass, "")
	}
	boxes[0].SetValue(invoice)
	boxes[paidFieldIndex].SetValue(paid)
	boxes[totalFieldIndex].SetValue(total)
	return screen, boxes
}

func TestInvoicesScreen_OpensViaMenuMacro(t *testing.T) {
	sim, window, client := newHost(t)
	sim.OnKeys = func(target *uiatest.Node, keys string) {
		if strings.Contains(keys, "{F10}R") {
			addInvoicesScreen(window, "", "", "")
		}
	}

	screen, err := client.InvoicesScreen(window)
	require.NoError(t, err)
	require.NotNil(t, screen)
	assert.Equal(t, []string{"{F10}R"}, sim.KeysSent())
}

func TestInvoicesScreen_AlreadyOpen(t *testing.T) {
	sim, window, client := newHost(t)
	addInvoicesScreen(window, "", "", "")

	_, err := client.InvoicesScreen(window)
	require.NoError(t, err)
	assert.Empty(t, sim.KeysSent())
}

func TestLoadInvoice_TypesIntoFirstTextBox(t *testing.T) {
	sim, window, client := newHost(t)
	screen, boxes := addInvoicesScreen(window, "", "", "")

	require.NoError(t, client.LoadInvoice(screen, 123))

	assert.Same(t, boxes[0], sim.Focused, "the first text box is the invoice number entry field")
	assert.Equal(t, []string{"123{enter}"}, sim.KeysSent())
}

func TestIsInvoiceFullyPaid(t *testing.T) {
	tests := []struct {
		name  string
		paid  string
		total string
		want  bool
	}{
		{"equal strings", "150.00", "150.00", true},
		{"unpaid", "0.00", "150.00", false},
		{"empty paid", "", "150.00", false},
		{"whitespace differs", "150.00 ", "150.00", false},
		{"case differs", "N/a", "N/A", false},
		{"both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, window, client := newHost(t)
			screen, _ := addInvoicesScreen(window, "", tt.paid, tt.total)

			got, err := client.IsInvoiceFullyPaid(screen, 123)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "strict string equality, not numeric comparison")
		})
	}
}

func TestIsInvoiceFullyPaid_MissingOrdinalIsFatal(t *testing.T) {
	_, window, client := newHost(t)
	screen := window.Add("Sales - Invoices (R) 2314", "Window", "")
	// Too few text boxes for the paid ordinal to resolve.
	for i := 0; i < 5; i++ {
		screen.Add("", TextBoxClass, "")
	}

	_, err := client.IsInvoiceFullyPaid(screen, 123)

	var idxErr *uia.FieldIndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, paidFieldIndex, idxErr.Index)
}

func TestSendInvoiceToJDF_AlreadyPaidShortCircuits(t *testing.T) {
	sim, window, client := newHost(t)
	screen, _ := addInvoicesScreen(window, "123", "150.00", "150.00")

	sent, err := client.SendInvoiceToJDF(screen, 123)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.NotContains(t, sim.KeysSent(), "{F9}7R", "no resubmission when payment is already posted")
}

func TestSendInvoiceToJDF_HostAdvancesMeansSent(t *testing.T) {
	sim, window, client := newHost(t)
	screen, boxes := addInvoicesScreen(window, "123", "", "150.00")
	sim.OnKeys = func(target *uiatest.Node, keys string) {
		if keys == "{F9}7R" {
			// Accepted submissions advance the host to the next invoice.
			boxes[0].SetValue("124")
		}
	}

	sent, err := client.SendInvoiceToJDF(screen, 123)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, []string{"123{enter}", "{F9}7R"}, sim.KeysSent())
}

func TestSendInvoiceToJDF_HostStuckMeansNotSent(t *testing.T) {
	sim, window, client := newHost(t)
	screen, _ := addInvoicesScreen(window, "123", "", "150.00")
	// No OnKeys hook: the displayed invoice number never changes.

	sent, err := client.SendInvoiceToJDF(screen, 123)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Equal(t, []string{
		"123{enter}",
		"{F9}7R",
		"{enter}{esc}",
		"{ctrl}+n",
		"{right}{enter}",
	}, sim.KeysSent(), "acknowledge, escape, then discard the half-entered record")
}

func TestSendInvoiceToJDF_MissingPaidFieldIsFatal(t *testing.T) {
	_, window, client := newHost(t)
	screen := window.Add("Sales - Invoices (R) 2314", "Window", "")
	screen.Add("", TextBoxClass, "123")

	_, err := client.SendInvoiceToJDF(screen, 123)

	var idxErr *uia.FieldIndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, paidFieldIndex, idxErr.Index)
}
