package csvx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "plain", FormatCell("plain"))
	assert.Equal(t, `"a,b"`, FormatCell("a,b"))
	assert.Equal(t, `"say ""hi"""`, FormatCell(`say "hi"`))
	assert.Equal(t, "\"line\nbreak\"", FormatCell("line\nbreak"))
	assert.Equal(t, "", FormatCell(""))
}

func TestRenderStartsWithBOM(t *testing.T) {
	out := Render([]string{"Name", "Division"}, [][]string{{"Budi", "IT"}})
	require.True(t, strings.HasPrefix(out, "\uFEFF"))
	assert.Equal(t, "\uFEFFName,Division\nBudi,IT", out)
}

func TestRenderQuotesOnlyWhenNeeded(t *testing.T) {
	out := Render([]string{"A"}, [][]string{{`x,y`}, {`z`}})
	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"x,y"`, lines[1])
	assert.Equal(t, "z", lines[2])
}
