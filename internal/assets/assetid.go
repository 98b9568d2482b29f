package assets

import (
	"crypto/sha512"
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Beacon is the randomness capability this module consumes to derive fresh
// asset ids. It is keyed by a caller-supplied tag so the same
// (counter, caller) pair never samples the same bytes twice within a block.
type Beacon interface {
	Sample(tag []byte) [64]byte
}

// DeterministicBeacon is a reference Beacon for tests and the CLI demo: it
// hashes an internal running seed together with the tag, so output is
// reproducible given the same sequence of calls and never touches
// wall-clock time or crypto/rand.
type DeterministicBeacon struct {
	seed uint64
}

// NewDeterministicBeacon creates a beacon seeded with an arbitrary starting
// value (callers typically seed from the genesis/parent-block hash).
func NewDeterministicBeacon(seed uint64) *DeterministicBeacon {
	return &DeterministicBeacon{seed: seed}
}

func (b *DeterministicBeacon) Sample(tag []byte) [64]byte {
	b.seed++
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], b.seed)
	h := sha512.New()
	h.Write(buf[:])
	h.Write(tag)
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// IdentifierService produces opaque AssetIds from a monotonic nonce shared by
// all callers, the caller's id and the runtime's randomness beacon. Grounded on the
// teacher's Sha512Half keylet-hashing idiom
// (internal/crypto/common/sha512Half.go), generalized to a 24-byte digest
// and a caller-supplied collision check instead of a fixed keylet namespace.
type IdentifierService struct {
	beacon  Beacon
	counter uint32
	seen    *lru.Cache[AssetId, struct{}]
}

// NewIdentifierService creates an id service with the counter initialised to
// 100. seenCapacity bounds the in-memory collision-check
// cache; it is a performance aid only — the authoritative collision check is
// always against the asset registry itself (see NewAssetId's caller).
func NewIdentifierService(beacon Beacon, seenCapacity int) *IdentifierService {
	cache, err := lru.New[AssetId, struct{}](seenCapacity)
	if err != nil {
		// Only invalid (<=0) capacities reach here; fall back to a small
		// default rather than panicking a library constructor.
		cache, _ = lru.New[AssetId, struct{}](128)
	}
	return &IdentifierService{beacon: beacon, counter: 100, seen: cache}
}

// NewAssetId synthesises a fresh AssetId for caller, checking it against
// exists (normally Txn.Asset's existence check) and ErrCreatingAssetId if
// it collides — callers are expected to retry on that error.
func (s *IdentifierService) NewAssetId(caller AccountId, exists func(AssetId) bool) (AssetId, error) {
	var counterBytes [4]byte
	binary.BigEndian.PutUint32(counterBytes[:], s.counter)

	tag := make([]byte, 0, len(counterBytes)+len(caller))
	tag = append(tag, counterBytes[:]...)
	tag = append(tag, caller[:]...)

	sample := s.beacon.Sample(tag)

	h := sha512.New()
	h.Write(counterBytes[:])
	h.Write(sample[:])
	h.Write(caller[:])
	digest := h.Sum(nil)

	var id AssetId
	copy(id[:], digest[:len(id)])

	s.counter++

	if _, cached := s.seen.Get(id); cached || exists(id) {
		return AssetId{}, ErrCreatingAssetId
	}
	s.seen.Add(id, struct{}{})
	return id, nil
}
