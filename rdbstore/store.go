//go:build cgo

// Package rdbstore persists opponent profiles in a RocksDB database.
//
// It is functionally equivalent to ldbstore but requires cgo and an
// installed RocksDB; use it when profile storage is shared with other
// RocksDB data. Reads are last-write-wins.
package rdbstore

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
	rocksdb "github.com/tecbot/gorocksdb"

	bobo "github.com/ciocanea/ANL-2025-bobo-agent"
)

// Params are the database configuration for a Store.
type Params struct {
	Path         string
	Options      *rocksdb.Options
	ReadOptions  *rocksdb.ReadOptions
	WriteOptions *rocksdb.WriteOptions
}

// DefaultParams returns reasonable database options for the given path.
func DefaultParams(path string) Params {
	opts := rocksdb.NewDefaultOptions()
	opts.SetCreateIfMissing(true)

	return Params{
		Path:         path,
		Options:      opts,
		ReadOptions:  rocksdb.NewDefaultReadOptions(),
		WriteOptions: rocksdb.NewDefaultWriteOptions(),
	}
}

// Close releases the option structs.
func (p Params) Close() {
	p.Options.Destroy()
	p.ReadOptions.Destroy()
	p.WriteOptions.Destroy()
}

// Store is a ProfileStore backed by a RocksDB database.
type Store struct {
	params Params
	db     *rocksdb.DB
}

// New opens (creating if missing) a database at params.Path.
func New(params Params) (*Store, error) {
	db, err := rocksdb.OpenDb(params.Options, params.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening rocksdb at %s", params.Path)
	}

	return &Store{params: params, db: db}, nil
}

// Close closes the database. Params must be closed separately by whoever
// created them.
func (s *Store) Close() {
	s.db.Close()
}

// Load implements bobo.ProfileStore.
func (s *Store) Load(opponent string) (bobo.Profile, bool, error) {
	value, err := s.db.Get(s.params.ReadOptions, []byte(opponent))
	if err != nil {
		return bobo.Profile{}, false, errors.Wrapf(err, "loading profile %q", opponent)
	}
	defer value.Free()

	if value.Data() == nil {
		return bobo.Profile{}, false, nil
	}

	var profile bobo.Profile
	dec := gob.NewDecoder(bytes.NewReader(value.Data()))
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

	return errors.Wrapf(s.db.Put(s.params.WriteOptions, []byte(opponent), buf.Bytes()),
		"saving profile %q", opponent)
}
