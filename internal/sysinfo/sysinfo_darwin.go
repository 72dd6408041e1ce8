package sysinfo

import (
	"strings"

	"golang.org/x/sys/unix"
)

func cpuName() string {
	name, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}
