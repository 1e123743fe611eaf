package ticket

import "github.com/dvillalba/fogonpos-api/internal/domain/entity"

// Alignment selects horizontal text placement
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// TextSize selects the character magnification
type TextSize int

const (
	SizeNormal TextSize = iota
	SizeDoubleHeight
	SizeDoubleWidth
	SizeDouble
)

// ParseTextSize maps a configured size name to a TextSize. Unknown
// names fall back to normal.
func ParseTextSize(name string) TextSize {
	switch name {
	case entity.TextSizeTall:
		return SizeDoubleHeight
	case entity.TextSizeWide:
		return SizeDoubleWidth
	case entity.TextSizeBig:
		return SizeDouble
	}
	return SizeNormal
}

// OpKind discriminates the instruction variants
type OpKind int

const (
	OpText OpKind = iota
	OpAlign
	OpEmphasis
	OpTextSize
	OpDivider
	OpCut
)

// Instruction is one abstract printer operation. The renderer emits
// instruction sequences; a protocol encoder maps them to wire bytes.
type Instruction struct {
	Kind     OpKind
	Text     string
	Align    Alignment
	Size     TextSize
	Emphasis bool
}

// Document is the ordered instruction sequence for one physical receipt
type Document []Instruction

// Lines returns the text content of every OpText instruction, in order.
// Useful for assertions and for plain-text previews.
func (d Document) Lines() []string {
	var out []string
	for _, in := range d {
		if in.Kind == OpText {
			out = append(out, in.Text)
		}
	}
	return out
}

// builder accumulates instructions with less noise at call sites
type builder struct {
	doc Document
}

func (b *builder) text(s string) {
	b.doc = append(b.doc, Instruction{Kind: OpText, Text: s})
}

func (b *builder) align(a Alignment) {
	b.doc = append(b.doc, Instruction{Kind: OpAlign, Align: a})
}

func (b *builder) emphasis(on bool) {
	b.doc = append(b.doc, Instruction{Kind: OpEmphasis, Emphasis: on})
}

func (b *builder) size(s TextSize) {
	b.doc = append(b.doc, Instruction{Kind: OpTextSize, Size: s})
}

func (b *builder) divider() {
	b.doc = append(b.doc, Instruction{Kind: OpDivider})
}

func (b *builder) cut() {
	b.doc = append(b.doc, Instruction{Kind: OpCut})
}
