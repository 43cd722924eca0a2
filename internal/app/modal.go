package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/obadao/gribble/internal/fsnav"
	"github.com/obadao/gribble/internal/model"
)

// ModalKind discriminates the detail overlays.
type ModalKind int

const (
	ModalProcess ModalKind = iota
	ModalNetwork
	ModalSystem
	ModalFile
	ModalDisk
)

// Field is one label/value row of a modal.
type Field struct {
	Label string
	Value string
}

// Modal is a detail overlay. Fields are rendered as captured at open time;
// a poll landing while the modal is up does not rewrite what the user is
// reading.
type Modal struct {
	Kind   ModalKind
	Title  string
	Fields []Field
}

func processModal(p model.Process) *Modal {
	return &Modal{
		Kind:  ModalProcess,
		Title: p.Name,
		Fields: []Field{
			{"PID", fmt.Sprintf("%d", p.PID)},
			{"CPU", fmt.Sprintf("%.1f%%", p.CPU)},
			{"Memory", FormatBytes(p.Memory)},
			{"Status", p.Status},
			{"Command", Truncate(p.Command, 120)},
		},
	}
}

func networkModal(name string, iface model.NetInterface, rxRate, txRate float64) *Modal {
	return &Modal{
		Kind:  ModalNetwork,
		Title: name,
		Fields: []Field{
			{"Interface", name},
			{"RX total", FormatBytes(iface.RxBytes)},
			{"TX total", FormatBytes(iface.TxBytes)},
			{"RX rate", FormatRate(rxRate)},
			{"TX rate", FormatRate(txRate)},
		},
	}
}

func systemModal(s model.Sample) *Modal {
	h := s.Host
	return &Modal{
		Kind:  ModalSystem,
		Title: h.Hostname,
		Fields: []Field{
			{"Hostname", h.Hostname},
			{"OS", fmt.Sprintf("%s %s", h.Platform, h.PlatformVer)},
			{"Kernel", h.KernelVersion},
			{"CPU cores", fmt.Sprintf("%d", s.CPU.Count)},
			{"Memory", FormatBytes(s.Memory.TotalBytes)},
			{"Uptime", FormatUptime(h.UptimeSec)},
		},
	}
}

func fileModal(dir string, e fsnav.Entry) *Modal {
	kind := "file"
	if e.IsDir {
		kind = "directory"
	}
	fields := []Field{
		{"Name", e.Name},
		{"Type", kind},
		{"Size", FormatBytes(uint64(e.Size))},
		{"Permissions", e.Mode.String()},
		{"Path", filepath.Join(dir, e.Name)},
	}
	if !e.ModTime.IsZero() {
		fields = append(fields, Field{"Modified", e.ModTime.Format(time.RFC1123)})
	}
	return &Modal{Kind: ModalFile, Title: e.Name, Fields: fields}
}

func diskModal(d model.Disk) *Modal {
	return &Modal{
		Kind:  ModalDisk,
		Title: d.Mount,
		Fields: []Field{
			{"Mount point", d.Mount},
			{"Device", d.Device},
			{"Filesystem", d.Fstype},
			{"Total", FormatBytes(d.TotalBytes)},
			{"Used", FormatBytes(d.UsedBytes)},
			{"Available", FormatBytes(d.TotalBytes - d.UsedBytes)},
		},
	}
}
