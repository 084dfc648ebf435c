package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/gagliardetto/solana-go"
)

type airdropRequest struct {
	To       string `json:"to"`
	Lamports uint64 `json:"lamports"`
}

type createMintRequest struct {
	Mint      string `json:"mint"`
	Authority string `json:"authority"`
	Decimals  uint8  `json:"decimals"`
}

type mintToRequest struct {
	Mint   string `json:"mint"`
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount"`
}

type mintToResponse struct {
	HoldingAccount string `json:"holding_account"`
}

// parseKeys parses base58 addresses in order, writing HTTP 400 naming the
// first bad field.
func (h *Handler) parseKeys(w http.ResponseWriter, fields ...string) ([]solana.PublicKey, bool) {
	keys := make([]solana.PublicKey, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, err := solana.PublicKeyFromBase58(fields[i+1])
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid "+fields[i])
			return nil, false
		}
		keys = append(keys, key)
	}
	return keys, true
}

func (h *Handler) handleAirdrop(w http.ResponseWriter, r *http.Request) {
	var req airdropRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	keys, ok := h.parseKeys(w, "to", req.To)
	if !ok {
		return
	}
	if err := h.faucet.Airdrop(r.Context(), keys[0], req.Lamports); err != nil {
		h.logger.Error("airdrop error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateMint(w http.ResponseWriter, r *http.Request) {
	var req createMintRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	keys, ok := h.parseKeys(w, "mint", req.Mint, "authority", req.Authority)
	if !ok {
		return
	}
	if err := h.faucet.CreateMint(r.Context(), keys[0], keys[1], req.Decimals); err != nil {
		h.logger.Error("create mint error", slog.Any("error", err))
		h.writeError(w, http.StatusConflict, "mint not created")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleMintTo(w http.ResponseWriter, r *http.Request) {
	var req mintToRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	keys, ok := h.parseKeys(w, "mint", req.Mint, "owner", req.Owner)
	if !ok {
		return
	}
	holder, err := h.faucet.MintTo(r.Context(), keys[0], keys[1], req.Amount)
	if err != nil {
		h.logger.Error("mint to error", slog.Any("error", err))
		h.writeError(w, http.StatusUnprocessableEntity, "mint failed")
		return
	}
	h.writeJSON(w, http.StatusOK, mintToResponse{HoldingAccount: holder.String()})
}
