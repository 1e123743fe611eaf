package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderInitOnCreate(t *testing.T) {
	b := NewBuilder(32)
	assert.Equal(t, []byte{ESC, '@'}, b.Bytes())
}

func TestBuilderDefaultsWidth(t *testing.T) {
	assert.Equal(t, 32, NewBuilder(0).Width())
	assert.Equal(t, 48, NewBuilder(48).Width())
}

func TestBuilderText(t *testing.T) {
	b := NewBuilder(32)
	b.Text("hola")
	b.TextF("pedido #%d", 7)

	data := b.Bytes()
	assert.True(t, bytes.Contains(data, []byte("hola\n")))
	assert.True(t, bytes.Contains(data, []byte("pedido #7\n")))
}

func TestBuilderAlignBoldSize(t *testing.T) {
	b := NewBuilder(32)
	b.Align(AlignCenter).Bold(true).Size(SizeDouble).Bold(false)

	data := b.Bytes()
	assert.True(t, bytes.Contains(data, []byte{ESC, 'a', 1}))
	assert.True(t, bytes.Contains(data, []byte{ESC, 'E', 1}))
	assert.True(t, bytes.Contains(data, []byte{GS, '!', SizeDouble}))
	assert.True(t, bytes.Contains(data, []byte{ESC, 'E', 0}))
}

func TestBuilderSeparator(t *testing.T) {
	b := NewBuilder(48)
	b.Separator('=')
	assert.True(t, bytes.Contains(b.Bytes(), append(bytes.Repeat([]byte{'='}, 48), LF)))
}

func TestBuilderFeedAndCut(t *testing.T) {
	b := NewBuilder(32)
	b.FeedAndCut()
	assert.True(t, bytes.HasSuffix(b.Bytes(), []byte{LF, LF, LF, GS, 'V', 0x01}))
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder(32)
	b.Text("anything")
	b.Reset()
	assert.Equal(t, []byte{ESC, '@'}, b.Bytes())
}
