package httpadapter

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"fundraiser/internal/adapter/pda"
	"fundraiser/internal/core/domain"
	"fundraiser/internal/core/port"
)

type accountResponse struct {
	Address  string `json:"address"`
	Owner    string `json:"owner"`
	Lamports uint64 `json:"lamports"`
	Data     string `json:"data"`
}

type campaignResponse struct {
	Address       string `json:"address"`
	Maker         string `json:"maker"`
	FundingMint   string `json:"funding_mint"`
	Vault         string `json:"vault"`
	TargetAmount  uint64 `json:"target_amount"`
	CurrentAmount uint64 `json:"current_amount"`
	Target        string `json:"target"`
	Raised        string `json:"raised"`
	StartTime     int64  `json:"start_time"`
	DurationDays  uint8  `json:"duration_days"`
	ExpiresAt     int64  `json:"expires_at"`
	Expired       bool   `json:"expired"`
	Bump          uint8  `json:"bump"`
}

type contributionResponse struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// uiAmount renders a raw asset amount with the mint's decimals.
func uiAmount(raw uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals)).StringFixed(int32(decimals))
}

// addressParam parses a base58 path parameter, writing HTTP 400 on failure.
func (h *Handler) addressParam(w http.ResponseWriter, r *http.Request, name string) (solana.PublicKey, bool) {
	key, err := solana.PublicKeyFromBase58(chi.URLParam(r, name))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid "+name)
		return solana.PublicKey{}, false
	}
	return key, true
}

// writeLookupError maps read-path failures: unknown slots are 404, slots
// that are not the requested record kind are 422.
func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	var perr *domain.ProgramError
	switch {
	case errors.Is(err, port.ErrAccountNotFound):
		h.writeError(w, http.StatusNotFound, "account not found")
	case errors.As(err, &perr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: perr.Tag, Kind: perr.Kind.String(), Code: perr.Code})
	default:
		h.logger.Error("lookup error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	addr, ok := h.addressParam(w, r, "address")
	if !ok {
		return
	}
	a, err := h.ledger.Account(r.Context(), addr)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, accountResponse{
		Address:  a.Address.String(),
		Owner:    a.Owner.String(),
		Lamports: a.Lamports,
		Data:     base64.StdEncoding.EncodeToString(a.Data),
	})
}

// handleGetCampaign decodes a campaign record. Amounts are returned both as
// raw base units and as decimal strings scaled by the mint's decimals.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	addr, ok := h.addressParam(w, r, "address")
	if !ok {
		return
	}
	v, err := h.ledger.Campaign(r.Context(), addr)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	c := v.Campaign
	h.writeJSON(w, http.StatusOK, campaignResponse{
		Address:       v.Address.String(),
		Maker:         c.Maker.String(),
		FundingMint:   c.FundingMint.String(),
		Vault:         c.Vault.String(),
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		Target:        uiAmount(c.TargetAmount, v.Decimals),
		Raised:        uiAmount(c.CurrentAmount, v.Decimals),
		StartTime:     c.StartTime,
		DurationDays:  c.DurationDays,
		ExpiresAt:     v.ExpiresAt,
		Expired:       v.Expired,
		Bump:          c.Bump,
	})
}

func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	addr, ok := h.addressParam(w, r, "address")
	if !ok {
		return
	}
	h.writeContribution(w, r, addr)
}

// handleGetCampaignContribution derives the contributor's record address
// for the campaign and decodes it.
func (h *Handler) handleGetCampaignContribution(w http.ResponseWriter, r *http.Request) {
	campaign, ok := h.addressParam(w, r, "address")
	if !ok {
		return
	}
	contributor, ok := h.addressParam(w, r, "contributor")
	if !ok {
		return
	}
	addr, _, err := pda.Contribution(campaign, contributor, h.ledger.ProgramID())
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeContribution(w, r, addr)
}

func (h *Handler) writeContribution(w http.ResponseWriter, r *http.Request, addr solana.PublicKey) {
	c, err := h.ledger.Contribution(r.Context(), addr)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, contributionResponse{Address: addr.String(), Amount: c.Amount})
}
