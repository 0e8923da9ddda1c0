// File: os.go
// Title: Operating System Detection
// Description: Classifies operating system identifiers into a small fixed
//              set of families.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package osx

import (
	"runtime"
	"strings"
	"sync"
)

// OS is an operating system family. The numeric values are stable.
type OS int

const (
	Unknown OS = iota + 1
	Windows
	Linux
	MacOS
)

// String returns "unknown", "windows", "linux" or "macos"
func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// DetectOS classifies identifier by case-insensitive substring, checking
// "dar", then "win", then "linux".
func DetectOS(identifier string) OS {
	id := strings.ToLower(identifier)
	switch {
	case strings.Contains(id, "dar"):
		return MacOS
	case strings.Contains(id, "win"):
		return Windows
	case strings.Contains(id, "linux"):
		return Linux
	default:
		return Unknown
	}
}

var hostOS = sync.OnceValue(func() OS {
	return DetectOS(runtime.GOOS)
})

// GetOS returns the family of the running system
func GetOS() OS {
	return hostOS()
}
