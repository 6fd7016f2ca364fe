package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/utils"
	"github.com/SaurabViena/heirloom/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func (h *Handler) keys(w http.ResponseWriter, r *http.Request) {
	domain := h.gateway.Domain()
	_, _ = utils.WriteJSON(w, models.GatewayKeys{
		NetworkKey: h.gateway.NetworkKey(),
		ChainID:    domain.ChainID,
		Verifier:   domain.Verifier,
		WidthBits:  h.gateway.WidthBits(),
	}, http.StatusOK)
}

func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	var req models.InputsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.ingest", err)
		return
	}
	if err := validateInputs(req); err != nil {
		h.writeError(w, r, "*Handler.ingest", err)
		return
	}

	inputs := make([][]byte, len(req.Inputs))
	for i, in := range req.Inputs {
		inputs[i] = in
	}

	bundle, err := h.gateway.Ingest(r.Context(), req.Destination, req.Submitter, inputs)
	if err != nil {
		h.writeError(w, r, "*Handler.ingest", err)
		return
	}
	_, _ = utils.WriteJSON(w, bundle, http.StatusCreated)
}

func (h *Handler) verifyInput(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyInputRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.verifyInput", err)
		return
	}
	if err := validateVerifyInput(req); err != nil {
		h.writeError(w, r, "*Handler.verifyInput", err)
		return
	}

	bundle := models.CiphertextBundle{Handles: req.Handles, Proof: req.Proof}
	if err := h.gateway.VerifyInput(r.Context(), req.Destination, req.Submitter, bundle); err != nil {
		h.writeError(w, r, "*Handler.verifyInput", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userDecrypt(w http.ResponseWriter, r *http.Request) {
	var req models.UserDecryptPayload
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.userDecrypt", err)
		return
	}
	if err := validateUserDecrypt(req); err != nil {
		h.writeError(w, r, "*Handler.userDecrypt", err)
		return
	}

	pairs := make([]fhe.HandlePair, len(req.Pairs))
	for i, p := range req.Pairs {
		pairs[i] = fhe.HandlePair{Handle: p.Handle, Destination: p.Contract}
	}

	sealed, err := h.gateway.UserDecrypt(r.Context(), engine.UserDecryptRequest{
		Pairs:        pairs,
		PublicKey:    req.PublicKey,
		Signature:    req.Signature,
		Destinations: req.Contracts,
		Viewer:       req.UserAddress,
		IssuedAt:     time.Unix(req.StartTimestamp, 0).UTC(),
		Duration:     time.Duration(req.DurationSeconds) * time.Second,
	})
	if err != nil {
		h.writeError(w, r, "*Handler.userDecrypt", err)
		return
	}

	resp := models.UserDecryptResponse{Results: make([]models.SealedResult, 0, len(sealed))}
	seen := make(map[models.Handle]struct{}, len(sealed))
	for _, p := range req.Pairs {
		box, ok := sealed[p.Handle]
		if !ok {
			continue
		}
		if _, dup := seen[p.Handle]; dup {
			continue
		}
		seen[p.Handle] = struct{}{}
		resp.Results = append(resp.Results, models.SealedResult{Handle: p.Handle, Payload: box})
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) allow(w http.ResponseWriter, r *http.Request) {
	var req models.ACLRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.allow", err)
		return
	}
	if err := validateACL(req); err != nil {
		h.writeError(w, r, "*Handler.allow", err)
		return
	}

	if err := h.gateway.Allow(r.Context(), req.Handles, req.Account); err != nil {
		h.writeError(w, r, "*Handler.allow", err)
		return
	}

	subject, _ := utils.GetSubjectFromContext(r.Context())
	logger.FromRequest(r).Info().
		Str("subject", subject).
		Str("account", req.Account.Hex()).
		Int("handles", len(req.Handles)).
		Msg("access list extended")
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// writeError answers with the status mapped from err. Server-side failures
// hide their details from the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}
	utils.WriteError(w, r, message, status)
}

var errEmptyHandle = errors.New("handle must not be empty")
