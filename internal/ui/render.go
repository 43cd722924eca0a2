package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/obadao/gribble/internal/app"
	"github.com/obadao/gribble/internal/fsnav"
)

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	staleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	gaugeFill     = "█"
	gaugeEmpty    = "░"
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
	focusedCardStyle = cardStyle.Copy().BorderForeground(lipgloss.Color("45"))
	modalStyle       = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("45")).
				Padding(1, 2)
)

func (m *Model) View() string {
	vm := m.state.View()

	if vm.HelpOpen {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			modalStyle.Render(titleStyle.Render("Help")+"\n\n"+m.help.View()))
	}
	if vm.Modal != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			renderModal(vm.Modal))
	}

	header := m.renderHeader(vm)
	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(app.PanelSystemMonitor, vm, renderSystemMonitor(vm)),
		renderCard(app.PanelSystemStatus, vm, renderSystemStatus(vm)),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(app.PanelProcessManager, vm, renderProcesses(vm)),
		renderCard(app.PanelFileExplorer, vm, renderExplorer(vm)),
		renderCard(app.PanelNetworkGraph, vm, renderNetwork(vm)),
	)
	footer := subtleStyle.Render("h/l panels · j/k select · enter open · i details · r refresh · ? help · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, row1, row2, footer)
}

func (m *Model) renderHeader(vm app.ViewModel) string {
	title := titleStyle.Render("gribble")
	ts := subtleStyle.Render(vm.Sample.Timestamp.Format("Mon Jan 2 15:04:05"))
	parts := []string{title, ts}
	if vm.Stale {
		parts = append(parts, staleStyle.Render("STALE"))
		if vm.PollErr != nil {
			parts = append(parts, errStyle.Render(vm.PollErr.Error()))
		}
	}
	return strings.Join(parts, "  ")
}

func renderCard(p app.Panel, vm app.ViewModel, body string) string {
	style := cardStyle
	if vm.Focus == p {
		style = focusedCardStyle
	}
	return style.Render(labelStyle.Render(p.String()) + "\n" + body)
}

func renderSystemMonitor(vm app.ViewModel) string {
	s := vm.Sample
	var b strings.Builder
	fmt.Fprintf(&b, "CPU %s  load %.2f %.2f %.2f\n",
		gaugeBar(s.CPU.Total, 24), s.CPU.Load1, s.CPU.Load5, s.CPU.Load15)
	fmt.Fprintf(&b, "Mem %s  %s / %s\n",
		gaugeBar(pct(s.Memory.UsedBytes, s.Memory.TotalBytes), 24),
		app.FormatBytes(s.Memory.UsedBytes), app.FormatBytes(s.Memory.TotalBytes))
	fmt.Fprintf(&b, "Swp %s  %s / %s",
		gaugeBar(pct(s.Memory.SwapUsed, s.Memory.SwapTotal), 24),
		app.FormatBytes(s.Memory.SwapUsed), app.FormatBytes(s.Memory.SwapTotal))
	for i, core := range s.CPU.PerCore {
		if i%2 == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "c%-2d %s  ", i, gaugeBar(core, 10))
	}
	return b.String()
}

func renderSystemStatus(vm app.ViewModel) string {
	s := vm.Sample
	h := s.Host
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s (%s)\n", h.Hostname, h.Platform, h.PlatformVer, h.KernelVersion)
	fmt.Fprintf(&b, "up %s  ·  %d cores\n", app.FormatUptime(h.UptimeSec), s.CPU.Count)
	for _, d := range s.Disks {
		fmt.Fprintf(&b, "%-14s %s %s\n",
			app.Truncate(d.Mount, 14),
			gaugeBar(pct(d.UsedBytes, d.TotalBytes), 16),
			app.FormatBytes(d.TotalBytes))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderProcesses(vm app.ViewModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-7s %-18s %6s %9s %s\n", "pid", "name", "cpu%", "mem", "st")

	procs := vm.Sample.Processes
	start, end := window(vm.ProcCursor, len(procs))
	for i := start; i < end; i++ {
		p := procs[i]
		row := fmt.Sprintf("%-7d %-18s %6.1f %9s %s",
			p.PID, app.Truncate(p.Name, 18), p.CPU, app.FormatBytes(p.Memory), p.Status)
		if i == vm.ProcCursor.Selected {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}
	fmt.Fprintf(&b, "%s", subtleStyle.Render(fmt.Sprintf("%d processes", len(procs))))
	return b.String()
}

func renderExplorer(vm app.ViewModel) string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render(app.Truncate(vm.Dir, 40)) + "\n")
	if vm.NavErr != nil {
		b.WriteString(errStyle.Render(app.Truncate(vm.NavErr.Error(), 40)) + "\n")
	}

	start, end := window(vm.FileCursor, len(vm.Entries))
	for i := start; i < end; i++ {
		e := vm.Entries[i]
		row := explorerRow(e)
		if i == vm.FileCursor.Selected {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}
	if len(vm.Entries) == 0 {
		b.WriteString(subtleStyle.Render("(empty)") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func explorerRow(e fsnav.Entry) string {
	if e.IsDir {
		return fmt.Sprintf("%-30s %10s", app.Truncate(e.Name, 29)+"/", "")
	}
	return fmt.Sprintf("%-30s %10s", app.Truncate(e.Name, 30), app.FormatBytes(uint64(e.Size)))
}

func renderNetwork(vm app.ViewModel) string {
	if len(vm.Interfaces) == 0 {
		return subtleStyle.Render("no interfaces")
	}
	name := vm.Interfaces[vm.IfaceIndex]
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(name),
		subtleStyle.Render(fmt.Sprintf("(%d/%d)", vm.IfaceIndex+1, len(vm.Interfaces))))
	fmt.Fprintf(&b, "RX %10s  %s\n", app.FormatRate(vm.RxRate), sparkline(vm.RxHistory, 30))
	fmt.Fprintf(&b, "TX %10s  %s", app.FormatRate(vm.TxRate), sparkline(vm.TxHistory, 30))
	return b.String()
}

func renderModal(m *app.Modal) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title) + "\n\n")
	for _, f := range m.Fields {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", f.Label)), f.Value)
	}
	b.WriteString("\n" + subtleStyle.Render("esc/i close"))
	return modalStyle.Render(b.String())
}

// window converts cursor state into the [start, end) slice of visible rows.
func window(c app.CursorView, n int) (int, int) {
	start := c.Offset
	if start > n {
		start = n
	}
	end := start + c.Viewport
	if end > n {
		end = n
	}
	return start, end
}

func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func pct(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100 / float64(total)
}

const helpText = `Panels
  ←/h  →/l      cycle panel focus

Lists
  ↑/k  ↓/j      move selection (or cycle interface)
  pgup/pgdown   page by 10
  home/end      jump to first/last

File explorer
  enter         open directory
  backspace     go to parent
  b             go back through history

General
  r             refresh now
  i             toggle detail view
  ?             toggle this help
  q / ctrl+c    quit`
