// Package metrics exposes the narrow read-only system metrics surface
// the cleanup views display. It never mutates anything.
package metrics

import (
	"os"

	"github.com/shirou/gopsutil/v4/disk"
)

// Usage is a point-in-time capacity snapshot of the volume holding a
// path.
type Usage struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// DiskUsage returns capacity figures for the volume containing path.
func DiskUsage(path string) (Usage, error) {
	du, err := disk.Usage(path)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		Path:        path,
		Total:       du.Total,
		Used:        du.Used,
		Free:        du.Free,
		UsedPercent: du.UsedPercent,
	}, nil
}

// HomeUsage returns capacity figures for the volume holding the user's
// home directory, falling back to the root volume.
func HomeUsage() (Usage, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "/"
	}
	return DiskUsage(home)
}
