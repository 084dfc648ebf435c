package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fundraiser/internal/core/port"
)

// Handler is the inbound HTTP adapter of the ledger host. It submits
// transactions and decodes stored records. The faucet routes are mounted
// only when a port.Faucet is supplied.
type Handler struct {
	ledger  port.Ledger
	faucet  port.Faucet
	logger  *slog.Logger
	maxBody int64
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. faucet may be
// nil. maxBody caps request bodies in bytes.
func NewHandler(ledger port.Ledger, faucet port.Faucet, logger *slog.Logger, maxBody int64) *Handler {
	h := &Handler{ledger: ledger, faucet: faucet, logger: logger, maxBody: maxBody}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transactions", h.handleSubmitTransaction)
		r.Get("/accounts/{address}", h.handleGetAccount)
		r.Get("/campaigns/{address}", h.handleGetCampaign)
		r.Get("/campaigns/{address}/contributions/{contributor}", h.handleGetCampaignContribution)
		r.Get("/contributions/{address}", h.handleGetContribution)

		if faucet != nil {
			r.Route("/dev", func(r chi.Router) {
				r.Post("/airdrop", h.handleAirdrop)
				r.Post("/mints", h.handleCreateMint)
				r.Post("/mint-to", h.handleMintTo)
			})
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type errorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	Code   uint32 `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody reads a JSON request body of at most maxBody bytes.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
