package catalog

import "testing"

func TestDefaultOrderIsStable(t *testing.T) {
	want := []ID{UserCache, SystemCache, LogFiles, TempFiles, DevArtifacts}
	cats := Default()
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, id := range want {
		if cats[i].ID != id {
			t.Fatalf("category %d: expected %s, got %s", i, id, cats[i].ID)
		}
	}
}

func TestMatches(t *testing.T) {
	cat := Category{ID: LogFiles, Match: []string{"*.log", "*.log.*"}}

	for _, name := range []string{"system.log", "app.log.1", "wifi.log.gz"} {
		if !cat.Matches(name) {
			t.Fatalf("expected %q to match", name)
		}
	}
	for _, name := range []string{"notes.txt", "logbook", "log"} {
		if cat.Matches(name) {
			t.Fatalf("expected %q not to match", name)
		}
	}
}

func TestMatchesEmptyFilterClaimsEverything(t *testing.T) {
	cat := Category{ID: TempFiles}
	if !cat.ClaimsAll() {
		t.Fatalf("category without filters should claim all")
	}
	if !cat.Matches("anything.bin") {
		t.Fatalf("category without filters should match any name")
	}
}

func TestInfoForKnownAndUnknown(t *testing.T) {
	for _, cat := range Default() {
		info := InfoFor(cat.ID)
		if info.Name == "" || info.Icon == "" {
			t.Fatalf("category %s missing display metadata", cat.ID)
		}
	}

	info := InfoFor(ID("somethingElse"))
	if info.Name != "SomethingElse" {
		t.Fatalf("unexpected fallback name %q", info.Name)
	}
}
