//go:build !linux

package fileinfo

import (
	"os"
	"time"
)

// Platforms without a portable stat layout fall back to the modification time.

func createdTime(_ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}

func accessedTime(_ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
