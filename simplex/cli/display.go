package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/simplex/slate"
	"github.com/npillmayer/simplex/vm"
)

// slateTable renders a slate as a table, labelled with logical coordinates.
// On the current slate the cursor cell is highlighted.
func slateTable(m *vm.Machine, index int, g *slate.Grid) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Slate %d", index)
	minX, minY, maxX, _ := g.Bounds()
	header := table.Row{"y \\ x"}
	for x := minX; x <= maxX; x++ {
		header = append(header, strconv.Itoa(x))
	}
	tw.AppendHeader(header)
	cx, cy := m.Position()
	current := index == m.SlateIndex()
	for r, row := range g.Rows() {
		y := minY + r
		tr := table.Row{strconv.Itoa(y)}
		for c, cell := range row {
			text := cell.Round(15).String()
			if current && minX+c == cx && y == cy {
				text = prtxt.Colors{prtxt.BgGreen, prtxt.FgBlack}.Sprint(text)
			}
			tr = append(tr, text)
		}
		tw.AppendRow(tr)
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// machineStatus collects the registers of a machine for display.
func machineStatus(m *vm.Machine) map[string]interface{} {
	x, y := m.Position()
	motions := m.Motions()
	return map[string]interface{}{
		"cursor":  fmt.Sprintf("(%d,%d)", x, y),
		"slate":   m.SlateIndex(),
		"slates":  m.Slates().Len(),
		"delta":   m.Delta().String(),
		"motions": []string{motions[0].String(), motions[1].String()},
		"fuel":    m.Fuel().String(),
		"steps":   m.Steps(),
	}
}
