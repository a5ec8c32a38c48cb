package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"ID", "Name"}, [][]string{{"1", "Tech Talk"}, {"2", "Career Fair"}})

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Tech Talk")
	assert.Contains(t, out, "Career Fair")
	assert.Less(t, strings.Index(out, "Tech Talk"), strings.Index(out, "Career Fair"))
}

func TestRenderFields(t *testing.T) {
	out := RenderFields(Field{"Date", "2026-04-01"}, Field{"Location", "Gym"})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2026-04-01")
	assert.Contains(t, lines[1], "Gym")
}

func TestRenderStatus(t *testing.T) {
	assert.Contains(t, RenderStatus(true), "present")
	assert.Contains(t, RenderStatus(false), "absent")
}
