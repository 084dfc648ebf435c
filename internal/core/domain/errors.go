package domain

import "fmt"

// ErrorKind groups program failures by the class of check that rejected the
// instruction.
type ErrorKind uint8

const (
	// KindStructural covers missing slots, short payloads and unknown opcodes.
	KindStructural ErrorKind = iota + 1
	// KindAuthorization covers missing signatures.
	KindAuthorization
	// KindIdentityMismatch covers derived address and owner mismatches.
	KindIdentityMismatch
	// KindStatePrecondition covers slots in the wrong lifecycle state.
	KindStatePrecondition
	// KindBusinessRule covers expiry, balance and campaign binding rules.
	KindBusinessRule
	// KindExternalService covers failures reported by ledger services.
	KindExternalService
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindAuthorization:
		return "authorization"
	case KindIdentityMismatch:
		return "identity_mismatch"
	case KindStatePrecondition:
		return "state_precondition"
	case KindBusinessRule:
		return "business_rule"
	case KindExternalService:
		return "external_service"
	default:
		return "unknown"
	}
}

// ProgramError is a terminal instruction failure. Tag is the human readable
// diagnostic surfaced to callers; Code is stable across releases.
type ProgramError struct {
	Kind ErrorKind
	Code uint32
	Tag  string
}

func (e *ProgramError) Error() string {
	return e.Tag
}

// GoString makes sentinel values readable in test failure output.
func (e *ProgramError) GoString() string {
	return fmt.Sprintf("ProgramError(%s/%d %q)", e.Kind, e.Code, e.Tag)
}

var (
	ErrNotEnoughAccountKeys   = &ProgramError{KindStructural, 1, "not enough account keys"}
	ErrInvalidInstructionData = &ProgramError{KindStructural, 2, "invalid instruction data"}
	ErrIncorrectProgramID     = &ProgramError{KindStructural, 3, "incorrect program id"}
	ErrInvalidAccountData     = &ProgramError{KindStructural, 4, "invalid account data"}

	ErrMissingRequiredSignature = &ProgramError{KindAuthorization, 10, "missing required signature"}
	ErrAccountNotWritable       = &ProgramError{KindAuthorization, 11, "account not writable"}

	ErrIllegalOwner         = &ProgramError{KindIdentityMismatch, 20, "illegal account owner"}
	ErrCampaignMismatch     = &ProgramError{KindIdentityMismatch, 21, "campaign address does not match derivation"}
	ErrContributionMismatch = &ProgramError{KindIdentityMismatch, 22, "contribution address does not match derivation"}
	ErrInvalidSeeds         = &ProgramError{KindIdentityMismatch, 23, "no valid derived address for seeds"}

	ErrAccountAlreadyInitialized = &ProgramError{KindStatePrecondition, 30, "account already initialized"}
	ErrUninitializedAccount      = &ProgramError{KindStatePrecondition, 31, "account not initialized"}
	ErrMintNotInitialized        = &ProgramError{KindStatePrecondition, 32, "mint does not exist"}

	ErrCampaignExpired     = &ProgramError{KindBusinessRule, 40, "campaign closed"}
	ErrInsufficientBalance = &ProgramError{KindBusinessRule, 41, "insufficient contributor balance"}
	ErrMintMismatch        = &ProgramError{KindBusinessRule, 42, "mint does not match campaign"}
	ErrVaultMismatch       = &ProgramError{KindBusinessRule, 43, "vault does not match campaign"}
	ErrArithmeticOverflow  = &ProgramError{KindBusinessRule, 44, "arithmetic overflow"}

	ErrExternalService = &ProgramError{KindExternalService, 50, "ledger service rejected call"}
)
