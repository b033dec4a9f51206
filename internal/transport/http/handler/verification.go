package handler

import (
	"encoding/json"
	"net/http"

	"github.com/souqly/souqly-api/internal/application/otp"
	"github.com/souqly/souqly-api/internal/pkg/validate"
)

// VerificationHandler handles the OTP issuance endpoint.
type VerificationHandler struct {
	svc otp.Service
}

func NewVerificationHandler(svc otp.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"required"`
}

func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req sendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.IssueCode(r.Context(), req.Email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true})
}
