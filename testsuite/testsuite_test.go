package testsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLineAcceptsMultipleDepths(t *testing.T) {
	line := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; D1 20 ; D2 400"
	c, err := parseLine(line)
	assert.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", c.Fen)
	assert.Equal(t, uint64(20), c.Counts[1])
	assert.Equal(t, uint64(400), c.Counts[2])
	assert.Equal(t, 2, c.MaxDepth())
}

func TestParseLineRejectsMissingDepthFields(t *testing.T) {
	_, err := parseLine("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
	var malformed *MalformedPerftLineError
	assert.ErrorAs(t, err, &malformed)
}

func TestParseLineRejectsBadDepthToken(t *testing.T) {
	_, err := parseLine("8/8/8/8/8/8/8/8 w - - 0 1 ; X1 20")
	assert.Error(t, err)
}

func TestParseLineRejectsNonNumericCount(t *testing.T) {
	_, err := parseLine("8/8/8/8/8/8/8/8 w - - 0 1 ; D1 many")
	assert.Error(t, err)
}

func TestParseLineRejectsEmptyFen(t *testing.T) {
	_, err := parseLine(" ; D1 20")
	assert.Error(t, err)
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.epd")
	content := "# a comment\n\n" +
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; D1 20\n" +
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1 ; D1 14 ; D2 191\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cases, err := Load(path)
	assert.NoError(t, err)
	assert.Len(t, cases, 2)
	assert.Equal(t, uint64(20), cases[0].Counts[1])
	assert.Equal(t, uint64(191), cases[1].Counts[2])
}

func TestLoadPropagatesParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.epd")
	assert.NoError(t, os.WriteFile(path, []byte("not a valid line\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRealPerftFile(t *testing.T) {
	cases, err := Load("../testdata/perft.epd")
	assert.NoError(t, err)
	assert.Len(t, cases, 6)
	assert.Equal(t, uint64(197281), cases[0].Counts[4])
}
