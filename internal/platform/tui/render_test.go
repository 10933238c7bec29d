package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	assert.Equal(t, []string{"abcd  ", "xyz   "}, lines)
}

func TestDrawPaused(t *testing.T) {
	s := core.NewScreen(40, 10)
	drawPaused(s)
	assert.Contains(t, s.String(), "Paused")
	assert.Contains(t, s.String(), "Press P to continue")
}
