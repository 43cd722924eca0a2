package app

// Panel identifies one of the five dashboard panels. The numeric order is
// the left-to-right focus cycle order.
type Panel int

const (
	PanelSystemMonitor Panel = iota
	PanelSystemStatus
	PanelProcessManager
	PanelFileExplorer
	PanelNetworkGraph

	panelCount
)

func (p Panel) String() string {
	switch p {
	case PanelSystemMonitor:
		return "System Monitor"
	case PanelSystemStatus:
		return "System Status"
	case PanelProcessManager:
		return "Process Manager"
	case PanelFileExplorer:
		return "File Explorer"
	case PanelNetworkGraph:
		return "Network Graph"
	}
	return "unknown"
}

// Next returns the panel to the right, wrapping around.
func (p Panel) Next() Panel { return (p + 1) % panelCount }

// Prev returns the panel to the left, wrapping around.
func (p Panel) Prev() Panel { return (p + panelCount - 1) % panelCount }
