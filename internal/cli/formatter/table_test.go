package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"SKILL", "LEVEL"},
		[][]string{
			{"prompting", "available"},
			{"test-writing", "locked"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "SKILL")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "prompting")
	assert.Contains(t, lines[3], "test-writing")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only-a"}})
	assert.Contains(t, out, "only-a")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Stats", "total: 60")
	assert.Contains(t, out, "STATS")
	assert.Contains(t, out, "total: 60")
	assert.Contains(t, out, "╭")
}
