package board

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/fatih/color"

	"github.com/daystram/gambitcore/square"
)

var (
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

const (
	svgCellLight = "fill:#eeeed2"
	svgCellDark  = "fill:#769656"
	svgLabel     = "font-family:sans-serif;fill:#333333;text-anchor:middle"
)

// Draw renders the board with colored cells for a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := square.Span - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := square.Square(0); x < square.Span; x++ {
			sym := b.cells[square.New(x, y)].SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			cell := colorCellDark
			if (x+y)%2 == 1 {
				cell = colorCellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := square.Square(0); x < square.Span; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationFile()))
	}
	return builder.String()
}

// WriteSVG renders the board as an SVG document with cells of the given pixel size, rank 8 on top.
func (b *Board) WriteSVG(w io.Writer, cell int) {
	margin := cell / 2
	size := margin + int(square.Span)*cell
	canvas := svg.New(w)
	canvas.Start(size, size+margin)
	for y := square.Span - 1; y >= 0; y-- {
		top := int(square.Span-1-y) * cell
		canvas.Text(margin/2, top+cell/2+margin/4, fmt.Sprint(y+1), fmt.Sprintf("%s;font-size:%dpx", svgLabel, margin/2))
		for x := square.Square(0); x < square.Span; x++ {
			left := margin + int(x)*cell
			style := svgCellDark
			if (x+y)%2 == 1 {
				style = svgCellLight
			}
			canvas.Rect(left, top, cell, cell, style)
			if sym := b.cells[square.New(x, y)].SymbolUnicode(); sym != "" {
				canvas.Text(left+cell/2, top+cell*4/5, sym, fmt.Sprintf("text-anchor:middle;font-size:%dpx", cell*3/4))
			}
		}
	}
	for x := square.Square(0); x < square.Span; x++ {
		left := margin + int(x)*cell
		canvas.Text(left+cell/2, size+margin/2, x.NotationFile(), fmt.Sprintf("%s;font-size:%dpx", svgLabel, margin/2))
	}
	canvas.End()
}
