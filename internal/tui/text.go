package tui

import (
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/MarcusTL12/solitare/engine"
)

var (
	textBack  = pterm.NewStyle(pterm.FgBlue)
	textEmpty = pterm.NewStyle(pterm.FgDarkGray)
	textRed   = pterm.NewStyle(pterm.FgRed, pterm.BgWhite)
	textBlack = pterm.NewStyle(pterm.FgBlack, pterm.BgWhite)
)

// WriteText prints t to w in the same arrangement as the screen, using ANSI
// colours unless pterm colour output is disabled. Nothing is highlighted.
func WriteText(w io.Writer, t *engine.Table, twice bool) error {
	var b strings.Builder
	pad := func() {
		if twice {
			b.WriteByte(' ')
		}
	}
	card := func(c engine.Card) {
		style := textBlack
		if c.IsRed() {
			style = textRed
		}
		b.WriteString(style.Sprint(string(Glyph(c))))
		pad()
	}

	for suit := uint8(0); suit < engine.NumSuits; suit++ {
		if top, ok := t.FoundationTop(suit); ok {
			card(top)
		} else {
			b.WriteString(textEmpty.Sprint(string(CardBack)))
			pad()
		}
	}
	b.WriteString(separator)
	for _, c := range t.ReserveCards() {
		card(c)
	}
	b.WriteString("\n\n")

	for row := uint8(0); row < t.Tallest(); row++ {
		for col := range t.Columns {
			pile := &t.Columns[col]
			switch {
			case row >= pile.Len:
				b.WriteByte(' ')
				pad()
			case pile.IsFaceDown(row):
				b.WriteString(textBack.Sprint(string(CardBack)))
				pad()
			default:
				card(pile.At(row))
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
