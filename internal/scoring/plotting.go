package scoring

import (
	"fmt"
	"io"
	"sort"
	"strings"

	chainutils "github.com/tensorplex-labs/koth/internal/utils/chain_utils"
)

// PlotWeightsTerminal draws the final weights as horizontal bars, heaviest
// first, alongside the u16 value each hotkey would be emitted with.
func PlotWeightsTerminal(w io.Writer, weights map[string]float64, title string) error {
	type hotkeyWeight struct {
		Hotkey string
		Weight float64
	}

	rows := make([]hotkeyWeight, 0, len(weights))
	for hk, wt := range weights {
		rows = append(rows, hotkeyWeight{Hotkey: hk, Weight: wt})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Weight != rows[j].Weight {
			return rows[i].Weight > rows[j].Weight
		}
		return rows[i].Hotkey < rows[j].Hotkey
	})

	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "\n%s: no weights\n", title)
		return err
	}

	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r.Weight
	}
	u16, err := chainutils.ConvertWeightsForEmit(vals)
	if err != nil {
		return err
	}

	maxWeight := rows[0].Weight
	maxBarWidth := 50

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (Terminal Plot - Descending Order):\n", title)
	fmt.Fprintf(&b, "%-48s | Weight   | u16   | Bar Chart\n", "Hotkey")
	fmt.Fprintf(&b, "%s|----------|-------|%s\n", strings.Repeat("-", 49), strings.Repeat("-", maxBarWidth))

	for i, r := range rows {
		var barWidth int
		if maxWeight > 0 {
			barWidth = int(r.Weight / maxWeight * float64(maxBarWidth))
		}

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Fprintf(&b, "%-48s | %.6f | %5d | %s\n", r.Hotkey, r.Weight, u16[i], bar)
	}

	fmt.Fprintf(&b, "\nBar width represents weight relative to the heaviest hotkey (0 to %d chars)\n", maxBarWidth)
	_, err = io.WriteString(w, b.String())
	return err
}
