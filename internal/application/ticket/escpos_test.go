package ticket

import (
	"bytes"
	"testing"

	"github.com/dvillalba/fogonpos-api/pkg/printer"
	"github.com/stretchr/testify/assert"
)

func TestEncodeESCPOS(t *testing.T) {
	doc := Document{
		{Kind: OpAlign, Align: AlignCenter},
		{Kind: OpEmphasis, Emphasis: true},
		{Kind: OpTextSize, Size: SizeDouble},
		{Kind: OpText, Text: "COMANDA COCINA"},
		{Kind: OpDivider},
		{Kind: OpCut},
	}

	data := EncodeESCPOS(doc, 32)

	// initialize, center, bold on, double size
	assert.True(t, bytes.HasPrefix(data, []byte{printer.ESC, '@'}))
	assert.True(t, bytes.Contains(data, []byte{printer.ESC, 'a', 1}))
	assert.True(t, bytes.Contains(data, []byte{printer.ESC, 'E', 1}))
	assert.True(t, bytes.Contains(data, []byte{printer.GS, '!', printer.SizeDouble}))
	assert.True(t, bytes.Contains(data, []byte("COMANDA COCINA\n")))
	assert.True(t, bytes.Contains(data, bytes.Repeat([]byte{'-'}, 32)))
	// partial cut at the end
	assert.True(t, bytes.HasSuffix(data, []byte{printer.GS, 'V', 0x01}))
}

func TestEncodeESCPOSDividerMatchesWidth(t *testing.T) {
	doc := Document{{Kind: OpDivider}}

	narrow := EncodeESCPOS(doc, 32)
	wide := EncodeESCPOS(doc, 48)

	assert.True(t, bytes.Contains(narrow, bytes.Repeat([]byte{'-'}, 32)))
	assert.False(t, bytes.Contains(narrow, bytes.Repeat([]byte{'-'}, 33)))
	assert.True(t, bytes.Contains(wide, bytes.Repeat([]byte{'-'}, 48)))
}

func TestSizeCodeMapping(t *testing.T) {
	assert.Equal(t, byte(printer.SizeNormal), sizeCode(SizeNormal))
	assert.Equal(t, byte(printer.SizeDoubleHeight), sizeCode(SizeDoubleHeight))
	assert.Equal(t, byte(printer.SizeDoubleWidth), sizeCode(SizeDoubleWidth))
	assert.Equal(t, byte(printer.SizeDouble), sizeCode(SizeDouble))
}

func TestParseTextSize(t *testing.T) {
	assert.Equal(t, SizeDoubleHeight, ParseTextSize("tall"))
	assert.Equal(t, SizeDoubleWidth, ParseTextSize("wide"))
	assert.Equal(t, SizeDouble, ParseTextSize("big"))
	assert.Equal(t, SizeNormal, ParseTextSize("normal"))
	assert.Equal(t, SizeNormal, ParseTextSize("banana"))
}
