package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// OS is a target operating system.
type OS string

const (
	// OSLinux targets Linux.
	OSLinux OS = "linux"
	// OSDarwin targets macOS.
	OSDarwin OS = "darwin"
)

// Arch is a target CPU architecture.
type Arch string

const (
	// ArchX86 targets 32-bit x86.
	ArchX86 Arch = "x86"
	// ArchX8664 targets 64-bit x86.
	ArchX8664 Arch = "x86_64"
	// ArchArm64 targets 64-bit ARM.
	ArchArm64 Arch = "arm64"
	// ArchThumbv7 targets 32-bit ARMv7 in Thumb mode.
	ArchThumbv7 Arch = "thumbv7"
)

// OSes lists the supported operating systems in matching order.
var OSes = []OS{OSLinux, OSDarwin}

// Archs lists the supported architectures.
var Archs = []Arch{ArchX86, ArchX8664, ArchArm64, ArchThumbv7}

// archTokens maps host triple substrings to architectures.
// 64-bit x86 comes first because "x86" is a substring of "x86_64".
var archTokens = []struct {
	token string
	arch  Arch
}{
	{"x86_64", ArchX8664},
	{"amd64", ArchX8664},
	{"i386", ArchX86},
	{"i486", ArchX86},
	{"i586", ArchX86},
	{"i686", ArchX86},
	{"x86", ArchX86},
	{"aarch64", ArchArm64},
	{"arm64", ArchArm64},
	{"thumbv7", ArchThumbv7},
	{"armv7", ArchThumbv7},
}

// ParseOS extracts the operating system from a host triple.
func ParseOS(host string) (OS, error) {
	for _, os := range OSes {
		if strings.Contains(host, string(os)) {
			return os, nil
		}
	}
	return "", hostError(ErrUnrecognizedOS, host)
}

// ParseArch extracts the architecture from a host triple.
func ParseArch(host string) (Arch, error) {
	for _, t := range archTokens {
		if strings.Contains(host, t.token) {
			return t.arch, nil
		}
	}
	return "", hostError(ErrUnrecognizedArch, host)
}

// ParseOSName parses an explicitly configured operating system name.
func ParseOSName(name string) (OS, error) {
	for _, os := range OSes {
		if string(os) == name {
			return os, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidOS, fmt.Sprintf("os %q", name)), "os", name)
}

// ParseArchName parses an explicitly configured architecture name.
func ParseArchName(name string) (Arch, error) {
	for _, a := range Archs {
		if string(a) == name {
			return a, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidArch, fmt.Sprintf("arch %q", name)), "arch", name)
}

func hostError(sentinel error, host string) error {
	return zerr.With(zerr.Wrap(sentinel, fmt.Sprintf("Host string %q", host)), "host", host)
}
