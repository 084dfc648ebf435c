package ledger

// accountStorageOverhead is the per-slot metadata charged on top of the data
// length.
const accountStorageOverhead = 128

// Rent computes minimum permanent-storage balances.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
}

// DefaultRent matches the ledger's genesis parameters.
var DefaultRent = Rent{LamportsPerByteYear: 3480, ExemptionThreshold: 2}

// MinimumBalance returns the balance a slot holding size bytes needs to be
// exempt from rent collection.
func (r Rent) MinimumBalance(size int) uint64 {
	perYear := uint64(accountStorageOverhead+size) * r.LamportsPerByteYear
	return uint64(float64(perYear) * r.ExemptionThreshold)
}
