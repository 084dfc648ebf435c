package domain

// SignerSeeds is the capability a program presents to ledger services to act
// for one of its derived addresses. Services re-derive the address from
// Seeds, Bump and the invoking program's identity; no private key exists.
type SignerSeeds struct {
	Seeds [][]byte
	Bump  uint8
}

// Full returns the seeds with the bump appended, the form consumed by the
// address derivation primitive.
func (s SignerSeeds) Full() [][]byte {
	out := make([][]byte, 0, len(s.Seeds)+1)
	out = append(out, s.Seeds...)
	return append(out, []byte{s.Bump})
}
