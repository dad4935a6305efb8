package app

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/specialistvlad/blocksched/internal/sched"
)

// writeReport renders one table row per emitted instruction, blocks in pass
// order, with the block totals in the footer.
func writeReport(w io.Writer, reports []*sched.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Block", "#", "Instruction", "Cycle", "Preferred", "Cost", "Latency", "Depth"})

	var cycles, stalls, insts int
	for _, r := range reports {
		for i, e := range r.Entries {
			preferred := strconv.Itoa(e.PreferredCycle)
			if e.Stalled() {
				preferred += " (stall)"
			}
			table.Append([]string{
				r.Block,
				strconv.Itoa(i),
				e.Instruction.Label(),
				strconv.Itoa(e.Cycle),
				preferred,
				strconv.Itoa(e.Cost),
				strconv.Itoa(e.Latency),
				strconv.Itoa(e.Depth),
			})
		}
		cycles += r.Cycles
		stalls += r.Stalls()
		insts += len(r.Entries)
	}

	table.SetFooter([]string{"", "", strconv.Itoa(insts) + " instructions", strconv.Itoa(cycles) + " cycles", strconv.Itoa(stalls) + " stalls", "", "", ""})
	table.Render()
}
