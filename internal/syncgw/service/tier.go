package service

// Tier says where a payload of a given size belongs. Kept separate from the
// transport calls so the threshold is testable without network mocking.
type Tier int

const (
	TierInline Tier = iota
	TierOffloaded
)

// HeavyDataThreshold is the serialized size above which a payload moves to the
// object store. The metadata store enforces row-size limits; the object store
// does not, but has no query capability.
const HeavyDataThreshold = 50 * 1024

func ChooseTier(sizeBytes int) Tier {
	if sizeBytes > HeavyDataThreshold {
		return TierOffloaded
	}
	return TierInline
}
