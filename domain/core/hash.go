package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"sort"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// SampleDigest fingerprints a set of sample streams. Two runs with the same
// engine, seed and parameters must produce the same digest.
type SampleDigest Hash

func (h SampleDigest) String() string { return Hash(h).String() }

// ComputeSampleDigest hashes the bit patterns of every sample, stream by
// stream, with stream lengths mixed in so regrouping changes the digest
func ComputeSampleDigest(streams [][]float64) SampleDigest {
	h := sha256.New()
	var buf [8]byte
	for _, s := range streams {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	return SampleDigest(hex.EncodeToString(h.Sum(nil)))
}

// ComputeParamsHash hashes a parameter map independently of key order
func ComputeParamsHash(params map[string]string) Hash {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data []byte
	for _, k := range keys {
		data = append(data, k...)
		data = append(data, '=')
		data = append(data, params[k]...)
		data = append(data, 0)
	}
	return NewHash(data)
}
