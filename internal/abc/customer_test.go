package abc

import (
	"strings"
	"testing"

	"github.com/abctools/abcctl/internal/uia/uiatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCustomersScreen(window *uiatest.Node, boxCount int) *uiatest.Node {
	screen := window.Add("Sales - Customers (C) 2314", "Window", "")
	for i := 0; i < boxCount; i++ {
		screen.Add("", TextBoxClass, "")
	}
	return screen
}

func TestCustomersScreen_OpensViaMenuMacro(t *testing.T) {
	sim, window, client := newHost(t)
	sim.OnKeys = func(target *uiatest.Node, keys string) {
		if strings.Contains(keys, "{F10}C") {
			window.Add("Sales - Customers (C) 2314", "Window", "")
		}
	}

	screen, err := client.CustomersScreen(window)
	require.NoError(t, err)
	require.NotNil(t, screen)
	assert.Equal(t, []string{"{F10}C"}, sim.KeysSent())
}

func TestJDFAccountByCustomer(t *testing.T) {
	sim, window, client := newHost(t)
	screen := window.Add("Sales - Customers (C) 2314", "Window", "")
	boxes := make([]*uiatest.Node, 30)
	for i := range boxes {
		boxes[i] = screen.Add("", TextBoxClass, "")
	}
	boxes[jdfAccountFieldIndex].SetValue("JD123456")

	account, err := client.JDFAccountByCustomer(screen, "DOEJO 0")
	require.NoError(t, err)
	assert.Equal(t, "JD123456", account)
	assert.Equal(t, []string{"{up}DOEJO 0{enter}"}, sim.KeysSent())
}

func TestJDFAccountByCustomer_NoAccountFieldMeansEmpty(t *testing.T) {
	_, window, client := newHost(t)
	// Records without a JDF account expose fewer text boxes than the ordinal.
	screen := addCustomersScreen(window, 5)

	account, err := client.JDFAccountByCustomer(screen, "DOEJO 0")
	require.NoError(t, err, "a missing account box is not an error for this lookup")
	assert.Equal(t, "", account)
}

func TestLoadCustomerRecord(t *testing.T) {
	sim, window, client := newHost(t)
	screen := addCustomersScreen(window, 3)

	require.NoError(t, client.LoadCustomerRecord(screen, "DOEJO 0"))
	assert.Equal(t, []string{"DOEJO 0{enter}"}, sim.KeysSent())
	require.NotNil(t, sim.Focused)
}
