package httpadapter

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gagliardetto/solana-go"

	"fundraiser/internal/adapter/ledger"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

type accountMetaRequest struct {
	Address    string `json:"address"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// transactionRequest is the wire form of domain.Transaction. Nonce is
// base58; data is standard base64; signatures map base58 signer addresses to
// base58 signatures over the transaction message.
type transactionRequest struct {
	ProgramID  string               `json:"program_id"`
	Nonce      string               `json:"nonce"`
	Accounts   []accountMetaRequest `json:"accounts"`
	Data       string               `json:"data"`
	Signatures map[string]string    `json:"signatures"`
}

type receiptResponse struct {
	ID     string   `json:"id"`
	Digest string   `json:"digest"`
	Opcode string   `json:"opcode"`
	Logs   []string `json:"logs"`
}

func (req *transactionRequest) toDomain() (*domain.Transaction, error) {
	programID, err := solana.PublicKeyFromBase58(req.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("program_id: %w", err)
	}
	nonce, err := solana.HashFromBase58(req.Nonce)
	if err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	tx := &domain.Transaction{
		ProgramID:  programID,
		Nonce:      nonce,
		Accounts:   make([]domain.AccountMeta, 0, len(req.Accounts)),
		Data:       data,
		Signatures: make(map[solana.PublicKey]solana.Signature, len(req.Signatures)),
	}
	for i, m := range req.Accounts {
		addr, err := solana.PublicKeyFromBase58(m.Address)
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}
		tx.Accounts = append(tx.Accounts, domain.AccountMeta{Address: addr, IsSigner: m.IsSigner, IsWritable: m.IsWritable})
	}
	for signer, sig := range req.Signatures {
		key, err := solana.PublicKeyFromBase58(signer)
		if err != nil {
			return nil, fmt.Errorf("signatures[%s]: %w", signer, err)
		}
		s, err := solana.SignatureFromBase58(sig)
		if err != nil {
			return nil, fmt.Errorf("signatures[%s]: %w", signer, err)
		}
		tx.Signatures[key] = s
	}
	return tx, nil
}

// handleSubmitTransaction executes one instruction. Program failures yield
// HTTP 422 with the diagnostic tag of the failed check; bad signatures yield
// 401; resubmitted messages 409; malformed requests 400.
func (h *Handler) handleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	tx, err := req.toDomain()
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid transaction", Detail: err.Error()})
		return
	}

	receipt, err := h.ledger.Execute(r.Context(), tx)
	if err != nil {
		h.writeExecuteError(w, err)
		return
	}
	logs := receipt.Logs
	if logs == nil {
		logs = []string{}
	}
	h.writeJSON(w, http.StatusOK, receiptResponse{
		ID:     receipt.ID.String(),
		Digest: receipt.Digest.String(),
		Opcode: receipt.Opcode.String(),
		Logs:   logs,
	})
}

func (h *Handler) writeExecuteError(w http.ResponseWriter, err error) {
	var perr *domain.ProgramError
	switch {
	case errors.As(err, &perr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  perr.Tag,
			Kind:   perr.Kind.String(),
			Code:   perr.Code,
			Detail: err.Error(),
		})
	case errors.Is(err, domain.ErrSignatureVerification):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "signature verification failed", Detail: err.Error()})
	case errors.Is(err, port.ErrAlreadyProcessed):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: "transaction already processed", Detail: err.Error()})
	case errors.Is(err, ledger.ErrProgramNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "program not found", Detail: err.Error()})
	case errors.Is(err, ledger.ErrReadonlyModified),
		errors.Is(err, ledger.ErrExternalAccountModified),
		errors.Is(err, ledger.ErrUnbalancedTransaction):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "ledger rule violated", Detail: err.Error()})
	default:
		h.logger.Error("execute transaction error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
