package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandHistoryAddCollapsesImmediateRepeats(t *testing.T) {
	h := NewCommandHistory()
	h.Add("step")
	h.Add("step")
	assert.Equal(t, []string{"step"}, h.All())
}

func TestCommandHistoryAddIgnoresEmptyCommand(t *testing.T) {
	h := NewCommandHistory()
	h.Add("")
	assert.Empty(t, h.All())
}

func TestCommandHistoryPreviousAndNextNavigate(t *testing.T) {
	h := NewCommandHistory()
	h.Add("step")
	h.Add("continue")
	h.Add("break 0x10")

	assert.Equal(t, "break 0x10", h.Previous())
	assert.Equal(t, "continue", h.Previous())
	assert.Equal(t, "step", h.Previous())
	assert.Equal(t, "", h.Previous(), "Previous at the start returns empty")

	assert.Equal(t, "continue", h.Next())
	assert.Equal(t, "break 0x10", h.Next())
	assert.Equal(t, "", h.Next(), "Next at the end returns empty")
}

func TestCommandHistoryLastReturnsMostRecentWithoutMovingCursor(t *testing.T) {
	h := NewCommandHistory()
	h.Add("step")
	h.Add("continue")

	assert.Equal(t, "continue", h.Last())
	assert.Equal(t, "continue", h.Previous())
}

func TestCommandHistoryAllReturnsOldestFirstCopy(t *testing.T) {
	h := NewCommandHistory()
	h.Add("a")
	h.Add("b")

	all := h.All()
	assert.Equal(t, []string{"a", "b"}, all)

	all[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, h.All(), "All must return a defensive copy")
}
