package platformservice

import (
	"context"
	"fmt"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostDetails are environment facts about the machine beyond identity:
// kernel, uptime, CPU, memory and clock.
type HostDetails struct {
	KernelVersion  string        `json:"kernel_version" yaml:"kernel_version"`
	KernelArch     string        `json:"kernel_arch" yaml:"kernel_arch"`
	Virtualization string        `json:"virtualization,omitempty" yaml:"virtualization,omitempty"`
	BootTime       time.Time     `json:"boot_time" yaml:"boot_time"`
	Uptime         time.Duration `json:"uptime" yaml:"uptime"`
	// bytes
	TotalRAM   uint64   `json:"total_ram" yaml:"total_ram"`
	CPUModel   string   `json:"cpu_model" yaml:"cpu_model"`
	CPUVendor  string   `json:"cpu_vendor" yaml:"cpu_vendor"`
	CPUCores   int      `json:"cpu_cores" yaml:"cpu_cores"`
	CPUThreads int      `json:"cpu_threads" yaml:"cpu_threads"`
	Time       TimeInfo `json:"time" yaml:"time"`
}

// GatherHostDetails collects host details. Kernel and memory lookups that
// fail are returned as an error alongside whatever could be read.
func GatherHostDetails(ctx context.Context) (*HostDetails, error) {
	hd := &HostDetails{
		CPUModel:   cpuid.CPU.BrandName,
		CPUVendor:  cpuid.CPU.VendorString,
		CPUCores:   cpuid.CPU.PhysicalCores,
		CPUThreads: cpuid.CPU.LogicalCores,
		Time:       getTimeInfo(time.Now()),
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return hd, fmt.Errorf("reading host info: %w", err)
	}

	hd.KernelVersion = info.KernelVersion
	hd.KernelArch = info.KernelArch
	hd.BootTime = time.Unix(int64(info.BootTime), 0)
	hd.Uptime = time.Duration(info.Uptime) * time.Second

	if info.VirtualizationSystem != "" {
		hd.Virtualization = info.VirtualizationSystem + " (" + info.VirtualizationRole + ")"
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return hd, fmt.Errorf("reading memory info: %w", err)
	}

	hd.TotalRAM = vm.Total

	return hd, nil
}
