// Package ldbstore persists opponent profiles in a LevelDB database,
// rather than the plain append-only file used by bobo.FileStore.
//
// Unlike the file store, records are keyed one-per-opponent and overwritten
// wholesale, so reads are last-write-wins.
package ldbstore
