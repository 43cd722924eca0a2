package model

import "time"

// CPU aggregates instantaneous CPU usage.
type CPU struct {
	Total   float64   // percent 0-100
	PerCore []float64 // per-core percent
	Count   int       // logical core count
	Load1   float64
	Load5   float64
	Load15  float64
}

// Memory captures RAM and swap usage in bytes for precision.
type Memory struct {
	UsedBytes  uint64
	TotalBytes uint64
	SwapUsed   uint64
	SwapTotal  uint64
}

// Process is one row of the process table.
type Process struct {
	PID     int32
	Name    string
	CPU     float64 // percent
	Memory  uint64  // resident bytes
	Status  string
	Command string
}

// Disk describes one mounted filesystem.
type Disk struct {
	Device     string
	Mount      string
	Fstype     string
	UsedBytes  uint64
	TotalBytes uint64
}

// NetInterface carries the cumulative counters for one interface.
// Rates are derived downstream; a Sample only ever holds raw totals.
type NetInterface struct {
	Name    string
	RxBytes uint64
	TxBytes uint64
}

// Host is the static system identity block.
type Host struct {
	Hostname      string
	OS            string
	Platform      string
	PlatformVer   string
	KernelVersion string
	UptimeSec     uint64
}

// Sample is one poll's worth of host state. It is immutable once produced:
// the engine folds it into history and panel state, then discards it.
type Sample struct {
	Timestamp  time.Time
	CPU        CPU
	Memory     Memory
	Processes  []Process
	Disks      []Disk
	Interfaces []NetInterface
	Host       Host
}

// Zero returns an empty sample for initialization.
func Zero() Sample { return Sample{Timestamp: time.Now()} }
