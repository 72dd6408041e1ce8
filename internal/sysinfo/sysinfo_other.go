//go:build !linux && !darwin

package sysinfo

func cpuName() string { return "" }
