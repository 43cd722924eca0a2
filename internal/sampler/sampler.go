// Package sampler collects host metrics through gopsutil and streams
// immutable Samples to the UI. All reads are best-effort: a subsystem that
// fails to answer leaves its section zeroed rather than failing the poll.
package sampler

import (
	"context"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/obadao/gribble/internal/errors"
	"github.com/obadao/gribble/internal/logger"
	"github.com/obadao/gribble/internal/model"
)

const (
	// MaxProcesses bounds the process table carried in a Sample.
	MaxProcesses = 1000
	// MaxInterfaces bounds the interface list carried in a Sample.
	MaxInterfaces = 100
)

// Result pairs a sample with the poll error that produced it. On error the
// sample is the zero value and the receiver keeps showing its last data.
type Result struct {
	Sample model.Sample
	Err    error
}

// Sampler builds Samples. CPU percentages are computed from the delta of
// cumulative CPU times between polls, so the first poll reports zero.
type Sampler struct {
	log     logger.Logger
	refresh chan struct{}

	prevTotal float64
	prevIdle  float64
	prevCore  []cpu.TimesStat
}

func New(log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{log: log, refresh: make(chan struct{}, 1)}
}

// Refresh asks the streaming goroutine for an out-of-cycle poll. Requests
// arriving while one is already pending collapse into it.
func (s *Sampler) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Stream polls every interval until ctx is done. The channel holds a single
// slot: if the receiver has not consumed the previous sample by the time the
// next one is ready, the stale one is dropped so the receiver always gets
// the newest snapshot and the poller never blocks on a slow UI.
func (s *Sampler) Stream(ctx context.Context, interval time.Duration) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		send := func(now time.Time) {
			sample, err := s.Sample(now)
			select {
			case ch <- Result{Sample: sample, Err: err}:
			default:
				select {
				case <-ch:
				default:
				}
				ch <- Result{Sample: sample, Err: err}
			}
		}

		send(time.Now())
		for {
			select {
			case t := <-ticker.C:
				send(t)
			case <-s.refresh:
				send(time.Now())
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Sample takes one snapshot of the host. The returned error only reflects
// total failure to read memory, the one section nothing downstream can
// render without; every other subsystem degrades to zero values.
func (s *Sampler) Sample(now time.Time) (model.Sample, error) {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return model.Zero(), errors.Wrap(err, errors.ErrPoll, "read memory")
	}
	swapStat, _ := mem.SwapMemory()

	sample := model.Sample{
		Timestamp: now,
		CPU:       s.cpuSection(),
		Memory: model.Memory{
			UsedBytes:  memStat.Used,
			TotalBytes: memStat.Total,
		},
		Processes:  s.processes(),
		Disks:      s.disks(),
		Interfaces: s.interfaces(),
		Host:       s.hostInfo(),
	}
	if swapStat != nil {
		sample.Memory.SwapUsed = swapStat.Used
		sample.Memory.SwapTotal = swapStat.Total
	}
	return sample, nil
}

func (s *Sampler) cpuSection() model.CPU {
	out := model.CPU{}
	if n, err := cpu.Counts(true); err == nil {
		out.Count = n
	}
	if avg, err := load.Avg(); err == nil {
		out.Load1, out.Load5, out.Load15 = avg.Load1, avg.Load5, avg.Load15
	}

	times, err := cpu.Times(false)
	if err != nil || len(times) == 0 {
		s.log.Debug("cpu times unavailable: %v", err)
		return out
	}
	cur := times[0]
	curTotal := cur.Total()
	curIdle := cur.Idle + cur.Iowait
	if s.prevTotal > 0 {
		if dt := curTotal - s.prevTotal; dt > 0 {
			out.Total = 100 * (1 - (curIdle-s.prevIdle)/dt)
		}
	}
	s.prevTotal, s.prevIdle = curTotal, curIdle

	coreTimes, _ := cpu.Times(true)
	out.PerCore = make([]float64, len(coreTimes))
	for i, c := range coreTimes {
		if i >= len(s.prevCore) {
			continue
		}
		prev := s.prevCore[i]
		dt := c.Total() - prev.Total()
		di := (c.Idle + c.Iowait) - (prev.Idle + prev.Iowait)
		if dt > 0 {
			out.PerCore[i] = 100 * (1 - di/dt)
		}
	}
	s.prevCore = coreTimes
	return out
}

func (s *Sampler) processes() []model.Process {
	procs, err := process.Processes()
	if err != nil {
		s.log.Debug("process list unavailable: %v", err)
		return nil
	}

	out := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		// Kernel threads and vanished PIDs report no name; skip them.
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		entry := model.Process{PID: p.Pid, Name: name}
		if pct, err := p.CPUPercent(); err == nil {
			entry.CPU = pct
		}
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			entry.Memory = mi.RSS
		}
		if st, err := p.Status(); err == nil && len(st) > 0 {
			entry.Status = st[0]
		}
		if cmd, err := p.Cmdline(); err == nil && cmd != "" {
			entry.Command = cmd
		} else {
			entry.Command = name
		}
		out = append(out, entry)
	}

	// Heaviest consumers first; the cap keeps a fork bomb from flooding
	// the table with its tail.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CPU != out[j].CPU {
			return out[i].CPU > out[j].CPU
		}
		return out[i].PID < out[j].PID
	})
	if len(out) > MaxProcesses {
		out = out[:MaxProcesses]
	}
	return out
}

func (s *Sampler) disks() []model.Disk {
	parts, err := disk.Partitions(false)
	if err != nil {
		s.log.Debug("partitions unavailable: %v", err)
		return nil
	}
	out := make([]model.Disk, 0, len(parts))
	for _, p := range parts {
		d := model.Disk{Device: p.Device, Mount: p.Mountpoint, Fstype: p.Fstype}
		if usage, err := disk.Usage(p.Mountpoint); err == nil {
			d.UsedBytes = usage.Used
			d.TotalBytes = usage.Total
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mount < out[j].Mount })
	return out
}

func (s *Sampler) interfaces() []model.NetInterface {
	counters, err := net.IOCounters(true)
	if err != nil {
		s.log.Debug("net counters unavailable: %v", err)
		return nil
	}
	out := make([]model.NetInterface, 0, len(counters))
	for _, c := range counters {
		if len(out) >= MaxInterfaces {
			break
		}
		out = append(out, model.NetInterface{
			Name:    c.Name,
			RxBytes: c.BytesRecv,
			TxBytes: c.BytesSent,
		})
	}
	return out
}

func (s *Sampler) hostInfo() model.Host {
	info, err := host.Info()
	if err != nil {
		s.log.Debug("host info unavailable: %v", err)
		return model.Host{}
	}
	return model.Host{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Platform:      info.Platform,
		PlatformVer:   info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		UptimeSec:     info.Uptime,
	}
}
