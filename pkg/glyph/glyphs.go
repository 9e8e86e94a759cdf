// Package glyph holds the decorative symbols the presentation layer renders.
package glyph

type Glyph struct {
	Symbol  string
	Meaning string
}

type Icon int

const (
	Movie Icon = iota
	Game
	Log
	Lock
	Unlock
	Trophy
	Plus
	Check
)

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Symbol:  "▶",
		Meaning: "movie",
	}, Glyph{
		Symbol:  "◆",
		Meaning: "game",
	}, Glyph{
		Symbol:  "☰",
		Meaning: "activity log",
	}, Glyph{
		Symbol:  "●",
		Meaning: "admin locked",
	}, Glyph{
		Symbol:  "○",
		Meaning: "admin unlocked",
	}, Glyph{
		Symbol:  "✦",
		Meaning: "achievements",
	}, Glyph{
		Symbol:  "+",
		Meaning: "add",
	}, Glyph{
		Symbol:  "✔",
		Meaning: "completed",
	})

	return g
}

func (i Icon) Glyph() Glyph {
	return DefaultGlyphs()[i]
}

func (i Icon) String() string {
	return i.Glyph().Symbol
}
