// Package sysinfo probes the host properties reported alongside benchmark
// results.
package sysinfo

import (
	"bufio"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Info describes the host a program is running on.
type Info struct {
	OS        string   `json:"os"`
	Arch      string   `json:"arch"`
	CPU       string   `json:"cpu"`
	NumCPU    int      `json:"num_cpu"`
	GoVersion string   `json:"go_version"`
	Features  []string `json:"features"`
}

// Probe collects information about the host. The CPU name is left empty on
// platforms where it cannot be determined.
func Probe() Info {
	return Info{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPU:       cpuName(),
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		Features:  Features(),
	}
}

// Features returns the names of the notable instruction set extensions
// supported by the CPU.
func Features() []string {
	var features []struct {
		name string
		has  bool
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		features = []struct {
			name string
			has  bool
		}{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"aes", cpu.X86.HasAES},
			{"pclmulqdq", cpu.X86.HasPCLMULQDQ},
			{"bmi2", cpu.X86.HasBMI2},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		features = []struct {
			name string
			has  bool
		}{
			{"asimd", cpu.ARM64.HasASIMD},
			{"aes", cpu.ARM64.HasAES},
			{"pmull", cpu.ARM64.HasPMULL},
			{"crc32", cpu.ARM64.HasCRC32},
			{"sha2", cpu.ARM64.HasSHA2},
			{"atomics", cpu.ARM64.HasATOMICS},
		}
	}

	names := make([]string, 0, len(features))
	for _, f := range features {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}

// parseCPUInfo extracts the first "model name" entry of a /proc/cpuinfo
// listing.
func parseCPUInfo(r io.Reader) string {
	s := bufio.NewScanner(r)
	for s.Scan() {
		key, value, ok := strings.Cut(s.Text(), ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
