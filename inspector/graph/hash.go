package graph

import (
	"github.com/minio/highwayhash"
)

// digestKey must stay fixed so that digests are comparable between runs
var digestKey = []byte("luamod-source-digest-key-32bytes")

// Hash returns highwayhash 64 bit digest of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(digestKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Matches reports whether data still hashes to digest
func Matches(data []byte, digest uint64) (bool, error) {
	actual, err := Hash(data)
	if err != nil {
		return false, err
	}
	return actual == digest, nil
}
