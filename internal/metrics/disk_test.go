package metrics

import "testing"

func TestDiskUsageRootVolume(t *testing.T) {
	usage, err := DiskUsage("/")
	if err != nil {
		t.Fatalf("disk usage: %v", err)
	}
	if usage.Path != "/" {
		t.Fatalf("path = %q", usage.Path)
	}
	if usage.Total == 0 {
		t.Fatalf("root volume reports zero capacity")
	}
	if usage.Used > usage.Total {
		t.Fatalf("used %d exceeds total %d", usage.Used, usage.Total)
	}
	if usage.UsedPercent < 0 || usage.UsedPercent > 100 {
		t.Fatalf("used percent out of range: %f", usage.UsedPercent)
	}
}

func TestDiskUsageMissingPath(t *testing.T) {
	if _, err := DiskUsage("/definitely/not/a/mountpoint"); err == nil {
		t.Fatalf("expected an error for a missing path")
	}
}
