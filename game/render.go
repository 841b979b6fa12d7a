package game

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	glyphA     = " X "
	glyphB     = " O "
	glyphEmpty = " . "
)

func (s State) String() string {
	return s.Render(false)
}

// Render draws the board one row per line, each cell a three character glyph.
// With colored set, seats are highlighted with ANSI colours.
func (s State) Render(colored bool) string {
	au := aurora.NewAurora(colored)
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			switch s.at(r*s.cols + c) {
			case PlayerA:
				sb.WriteString(au.Bold(au.Red(glyphA)).String())
			case PlayerB:
				sb.WriteString(au.Bold(au.Blue(glyphB)).String())
			default:
				sb.WriteString(au.Faint(glyphEmpty).String())
			}
		}
	}
	return sb.String()
}
