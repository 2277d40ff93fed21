package bobo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileMeansNoKnowledge(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, ok, err := store.Load("anyone")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Load reported a profile from a missing file")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	saved := Profile{Greedy: true, Nice: false}
	if err := store.Save("hardliner", saved); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Load("hardliner")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("saved profile not found")
	}
	if !got.Greedy || got.Nice {
		t.Errorf("Load = %+v, expected greedy and not nice", got)
	}
	if got.GreedyWeight != 1 || got.NiceWeight != 0 {
		t.Errorf("Load weights = %v/%v, expected 1/0", got.GreedyWeight, got.NiceWeight)
	}
}

func TestFileStoreContinuousWeightsRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	saved := Profile{GreedyWeight: 0.77, NiceWeight: 0.37, Greedy: true}
	if err := store.Save("adaptive", saved); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Load("adaptive")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("saved profile not found")
	}
	if got.GreedyWeight != 0.77 || got.NiceWeight != 0.37 {
		t.Errorf("Load weights = %v/%v, expected 0.77/0.37", got.GreedyWeight, got.NiceWeight)
	}
	if !got.Greedy || got.Nice {
		t.Errorf("Load flags = %+v, expected greedy only", got)
	}
}

// Records append; the first record for an opponent wins on read.
func TestFileStoreFirstMatchWins(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Save("hardliner", Profile{Greedy: true}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("hardliner", Profile{Nice: true}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Load("hardliner")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("profile not found")
	}
	if !got.Greedy || got.Nice {
		t.Errorf("Load = %+v, expected the first (greedy) record", got)
	}
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.md")
	content := "# notes about opponents\n" +
		"hardliner,not-a-flag,also-not\n" +
		"hardliner,true,false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(dir)
	got, ok, err := store.Load("hardliner")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("valid record after malformed lines not found")
	}
	if !got.Greedy {
		t.Errorf("Load = %+v, expected greedy", got)
	}
}

func TestFileStoreIgnoresOtherOpponents(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if err := store.Save("conceder", Profile{Nice: true}); err != nil {
		t.Fatal(err)
	}

	_, ok, err := store.Load("hardliner")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Load matched a record for a different opponent")
	}
}
