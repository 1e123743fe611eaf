package ticket

import "github.com/dvillalba/fogonpos-api/pkg/printer"

// EncodeESCPOS maps an abstract instruction sequence to the ESC/POS
// byte stream for a printer of the given character width.
func EncodeESCPOS(doc Document, width int) []byte {
	b := printer.NewBuilder(width)
	for _, in := range doc {
		switch in.Kind {
		case OpText:
			b.Text(in.Text)
		case OpAlign:
			if in.Align == AlignCenter {
				b.Align(printer.AlignCenter)
			} else {
				b.Align(printer.AlignLeft)
			}
		case OpEmphasis:
			b.Bold(in.Emphasis)
		case OpTextSize:
			b.Size(sizeCode(in.Size))
		case OpDivider:
			b.Separator('-')
		case OpCut:
			b.FeedAndCut()
		}
	}
	return b.Bytes()
}

func sizeCode(s TextSize) byte {
	switch s {
	case SizeDoubleHeight:
		return printer.SizeDoubleHeight
	case SizeDoubleWidth:
		return printer.SizeDoubleWidth
	case SizeDouble:
		return printer.SizeDouble
	}
	return printer.SizeNormal
}
