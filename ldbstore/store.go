package ldbstore

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	bobo "github.com/ciocanea/ANL-2025-bobo-agent"
)

// Store is a ProfileStore backed by a LevelDB database. Values are
// gob-encoded bobo.Profile records keyed by opponent identity.
type Store struct {
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// New creates a Store over an already-opened database. The caller retains
// ownership of the database until Close is called.
func New(db *leveldb.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements bobo.ProfileStore.
func (s *Store) Load(opponent string) (bobo.Profile, bool, error) {
	buf, err := s.db.Get([]byte(opponent), s.rOpts)
	if err == leveldb.ErrNotFound {
		return bobo.Profile{}, false, nil
	}
	if err != nil {
		return bobo.Profile{}, false, errors.Wrapf(err, "loading profile %q", opponent)
	}

	var profile bobo.Profile
	dec := gob.NewDecoder(bytes.NewReader(buf))
	if err := dec.Decode(&profile); err != nil {
		return bobo.Profile{}, false, errors.Wrapf(err, "decoding profile %q", opponent)
	}

	return profile, true, nil
}

// Save implements bobo.ProfileStore, replacing any previous record for the
// opponent.
func (s *Store) Save(opponent string, p bobo.Profile) error {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return errors.Wrapf(err, "encoding profile %q", opponent)
	}

	return errors.Wrapf(s.db.Put([]byte(opponent), buf.Bytes(), s.wOpts),
		"saving profile %q", opponent)
}
