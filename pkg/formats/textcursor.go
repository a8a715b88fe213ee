package formats

import (
	"fmt"
	"strconv"
	"strings"
)

// TextCursor walks the lines of a text-format file. Logical-field lines are
// tokenized on whitespace via strings.Fields, which also normalizes the tab
// characters that appear inside face rows. Counted blocks (the Verts= and
// Faces= tables) are consumed through ReadBlock so a short table surfaces
// ErrMalformedBlock instead of being misread as trailing keys.
type TextCursor struct {
	lines []string
	pos   int
}

// NewTextCursor splits data into lines, stripping trailing CR and LF bytes.
func NewTextCursor(data []byte) *TextCursor {
	raw := strings.Split(string(data), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimRight(line, "\r")
	}
	// A trailing newline produces one empty final element; it is not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &TextCursor{lines: lines}
}

// NextLine returns the next line and true, or "" and false at end of input.
func (c *TextCursor) NextLine() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// LineNo returns the 1-based number of the line most recently returned.
func (c *TextCursor) LineNo() int {
	return c.pos
}

// Remaining returns the number of unread lines.
func (c *TextCursor) Remaining() int {
	return len(c.lines) - c.pos
}

// ReadBlock consumes the next count lines and returns each tokenized on
// whitespace. It fails with ErrMalformedBlock when fewer lines remain.
func (c *TextCursor) ReadBlock(count int) ([][]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative block count %d", ErrMalformedBlock, count)
	}
	if count > c.Remaining() {
		return nil, fmt.Errorf("%w: block of %d lines declared at line %d, %d remain",
			ErrMalformedBlock, count, c.pos, c.Remaining())
	}
	block := make([][]string, count)
	for i := 0; i < count; i++ {
		line, _ := c.NextLine()
		block[i] = strings.Fields(line)
	}
	return block, nil
}

// parseFloatToken parses a float field, mapping failure to ErrMalformedBlock.
func parseFloatToken(tok string) (float32, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: float token %q", ErrMalformedBlock, tok)
	}
	return float32(v), nil
}

// parseUintToken parses an unsigned integer field, mapping failure to
// ErrMalformedBlock.
func parseUintToken(tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: integer token %q", ErrMalformedBlock, tok)
	}
	return uint32(v), nil
}

// parseCountToken parses a block-count declaration such as the N in "Verts= N".
func parseCountToken(tok string) (int, error) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: count token %q", ErrMalformedBlock, tok)
	}
	return int(v), nil
}
