package bobo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FileStore persists opponent profiles as comma-separated lines in a single
// append-only file, one record per finished session:
//
//	hardliner,true,false
//	conceder,0.1200,0.8300
//
// Discrete profiles are written as boolean flags, continuous ones as
// numeric weights; the reader accepts either. Reads are first-match-wins,
// so the oldest record for an opponent shadows later ones.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to data.md inside dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "data.md")}
}

// Load implements ProfileStore. A missing file or malformed record is not
// an error: it means no prior knowledge.
func (s *FileStore) Load(opponent string) (Profile, bool, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, errors.Wrap(err, "opening profile store")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(parts) != 3 || parts[0] != opponent {
			continue
		}

		profile, ok := parseProfile(parts[1], parts[2])
		if !ok {
			continue
		}

		return profile, true, nil
	}

	if err := scanner.Err(); err != nil {
		return Profile{}, false, errors.Wrap(err, "reading profile store")
	}

	return Profile{}, false, nil
}

// Save implements ProfileStore, appending one record.
func (s *FileStore) Save(opponent string, p Profile) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "opening profile store")
	}

	var record string
	if p.GreedyWeight != 0 || p.NiceWeight != 0 {
		record = fmt.Sprintf("%s,%.4f,%.4f\n", opponent, p.GreedyWeight, p.NiceWeight)
	} else {
		record = fmt.Sprintf("%s,%t,%t\n", opponent, p.Greedy, p.Nice)
	}

	if _, err := f.WriteString(record); err != nil {
		f.Close()
		return errors.Wrap(err, "writing profile record")
	}

	return errors.Wrap(f.Close(), "closing profile store")
}

// parseProfile decodes the two classification fields of a record. Boolean
// flags map to weights 0/1; numeric weights map to flags at the 0.5 mark.
func parseProfile(greedy, nice string) (Profile, bool) {
	if g, err := strconv.ParseBool(greedy); err == nil {
		n, err := strconv.ParseBool(nice)
		if err != nil {
			return Profile{}, false
		}

		p := Profile{Greedy: g, Nice: n}
		if g {
			p.GreedyWeight = 1
		}
		if n {
			p.NiceWeight = 1
		}
		return p, true
	}

	g, err := strconv.ParseFloat(greedy, 64)
	if err != nil {
		return Profile{}, false
	}
	n, err := strconv.ParseFloat(nice, 64)
	if err != nil {
		return Profile{}, false
	}

	return Profile{
		Greedy:       g >= 0.5,
		Nice:         n >= 0.5,
		GreedyWeight: g,
		NiceWeight:   n,
	}, true
}
