package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

// Processor is the crowdfunding program. It implements port.Program by
// routing each instruction to its handler. It holds no state between
// invocations; all state lives in the slots passed to Process.
type Processor struct {
	programID solana.PublicKey
	logger    *slog.Logger
}

var _ port.Program = (*Processor)(nil)

// NewProcessor creates the program bound to its own identity.
func NewProcessor(programID solana.PublicKey, logger *slog.Logger) *Processor {
	return &Processor{programID: programID, logger: logger}
}

// ProgramID returns the identity the processor owns its records under.
func (p *Processor) ProgramID() solana.PublicKey {
	return p.programID
}

// Process reads the opcode from the first payload byte and hands the rest to
// the matching handler.
func (p *Processor) Process(ctx context.Context, rt port.Runtime, programID solana.PublicKey, accounts []*domain.Account, data []byte) error {
	if !programID.Equals(p.programID) {
		return fmt.Errorf("%w: invoked as %s", domain.ErrIncorrectProgramID, programID)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", domain.ErrInvalidInstructionData)
	}

	op, body := domain.Opcode(data[0]), data[1:]
	switch op {
	case domain.OpInitialize:
		return p.initialize(ctx, rt, accounts, body)
	case domain.OpContribute:
		return p.contribute(ctx, rt, accounts, body)
	default:
		return fmt.Errorf("%w: unknown %s", domain.ErrInvalidInstructionData, op)
	}
}
