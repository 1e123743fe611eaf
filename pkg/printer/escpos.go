package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size codes for GS !
const (
	SizeNormal       = 0x00
	SizeDoubleHeight = 0x01
	SizeDoubleWidth  = 0x10
	SizeDouble       = 0x11 // double width + double height
)

// Builder accumulates an ESC/POS byte stream for thermal printers.
type Builder struct {
	buf   bytes.Buffer
	width int // print width in characters: 32 for 58mm paper, 48 for 80mm
}

// NewBuilder creates an initialized ESC/POS builder with the given
// character width.
func NewBuilder(charWidth int) *Builder {
	if charWidth <= 0 {
		charWidth = 32
	}
	b := &Builder{width: charWidth}
	b.Init()
	return b
}

// Width returns the print width in characters.
func (b *Builder) Width() int {
	return b.width
}

// Init sends the ESC @ (initialize printer) command.
func (b *Builder) Init() *Builder {
	b.buf.Write([]byte{ESC, '@'})
	return b
}

// LineFeed sends a single line feed.
func (b *Builder) LineFeed() *Builder {
	b.buf.WriteByte(LF)
	return b
}

// FeedLines sends n line feeds.
func (b *Builder) FeedLines(n int) *Builder {
	for i := 0; i < n; i++ {
		b.buf.WriteByte(LF)
	}
	return b
}

// Align sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (b *Builder) Align(align int) *Builder {
	b.buf.Write([]byte{ESC, 'a', byte(align)})
	return b
}

// Bold enables or disables emphasized text.
func (b *Builder) Bold(on bool) *Builder {
	v := byte(0)
	if on {
		v = 1
	}
	b.buf.Write([]byte{ESC, 'E', v})
	return b
}

// Size sets the character size. Use the Size* constants.
func (b *Builder) Size(size byte) *Builder {
	b.buf.Write([]byte{GS, '!', size})
	return b
}

// Text writes a line of text followed by a line feed.
func (b *Builder) Text(s string) *Builder {
	b.buf.WriteString(s)
	b.buf.WriteByte(LF)
	return b
}

// TextF writes a formatted line of text followed by a line feed.
func (b *Builder) TextF(format string, args ...interface{}) *Builder {
	b.buf.WriteString(fmt.Sprintf(format, args...))
	b.buf.WriteByte(LF)
	return b
}

// Separator prints a full-width separator line of the given symbol.
func (b *Builder) Separator(char byte) *Builder {
	b.buf.WriteString(strings.Repeat(string(char), b.width))
	b.buf.WriteByte(LF)
	return b
}

// FeedAndCut feeds the paper clear of the blade and sends a partial cut.
func (b *Builder) FeedAndCut() *Builder {
	b.FeedLines(3)
	b.buf.Write([]byte{GS, 'V', 0x01})
	return b
}

// Cut sends the full paper cut command without feeding.
func (b *Builder) Cut() *Builder {
	b.buf.Write([]byte{GS, 'V', 0x00})
	return b
}

// Bytes returns the accumulated ESC/POS byte stream.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Reset clears the buffer and reinitializes the builder.
func (b *Builder) Reset() *Builder {
	b.buf.Reset()
	b.Init()
	return b
}
