package engine

import (
	"testing"

	"github.com/abctools/abcctl/internal/uia"
	"github.com/abctools/abcctl/internal/uia/uiatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFieldsFixture(t *testing.T, values ...string) (*uiatest.Sim, *uiatest.Node, *Accessor) {
	t.Helper()
	sim := uiatest.New()
	screen := sim.RootNode().Add("Sales - Invoices (R)", "Window", "")
	for _, v := range values {
		screen.Add("", "ThunderRT6TextBox", v)
	}
	timing := fastTiming()
	loc := NewLocator(sim, timing, nil)
	keys := NewDispatcher(timing, nil)
	return sim, screen, NewAccessor(loc, keys, timing, nil)
}

func TestRead_NthValueInTreeOrder(t *testing.T) {
	_, screen, acc := newFieldsFixture(t, "123", "DOEJO 0", "150.00")

	v, err := acc.Read(screen, "ThunderRT6TextBox", 2)
	require.NoError(t, err)
	assert.Equal(t, "150.00", v)
}

func TestRead_EmptyStringIsAValue(t *testing.T) {
	_, screen, acc := newFieldsFixture(t, "123", "")

	v, err := acc.Read(screen, "ThunderRT6TextBox", 1)
	require.NoError(t, err, "an empty field is a meaningful result, not an error")
	assert.Equal(t, "", v)
}

func TestRead_IndexOutOfRange(t *testing.T) {
	_, screen, acc := newFieldsFixture(t, "123", "150.00")

	_, err := acc.Read(screen, "ThunderRT6TextBox", 29)

	var idxErr *uia.FieldIndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 29, idxErr.Index)
	assert.Equal(t, 2, idxErr.Have)
	assert.Equal(t, "ThunderRT6TextBox", idxErr.Class)
}

func TestRead_WrongClassNeverSubstitutes(t *testing.T) {
	sim := uiatest.New()
	screen := sim.RootNode().Add("Sales - Invoices (R)", "Window", "")
	screen.Add("", "ThunderRT6Label", "a label, not a field")
	timing := fastTiming()
	acc := NewAccessor(NewLocator(sim, timing, nil), NewDispatcher(timing, nil), timing, nil)

	_, err := acc.Read(screen, "ThunderRT6TextBox", 0)

	var idxErr *uia.FieldIndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 0, idxErr.Have)
}

func TestWrite_FocusesThenTypesWithConfirm(t *testing.T) {
	sim, screen, acc := newFieldsFixture(t, "old", "other")

	require.NoError(t, acc.Write(screen, "ThunderRT6TextBox", 0, "456"))

	require.NotNil(t, sim.Focused)
	focusedValue, err := sim.Focused.Value()
	require.NoError(t, err)
	assert.Equal(t, "old", focusedValue, "the addressed control gets focus")
	assert.Equal(t, []string{"456{enter}"}, sim.KeysSent())
}

func TestWrite_IndexOutOfRange(t *testing.T) {
	sim, screen, acc := newFieldsFixture(t, "123")

	err := acc.Write(screen, "ThunderRT6TextBox", 5, "won't happen")

	var idxErr *uia.FieldIndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Empty(t, sim.KeysSent(), "no keystrokes on a failed ordinal lookup")
}
