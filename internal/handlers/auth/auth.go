package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	authservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/authservice"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
)

type Service interface {
	Verify(ctx context.Context, address, signature, message string) (*domain.User, error)
	GenerateToken(userID int, address string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Verify godoc
//
//	@Summary		Verify a wallet signature
//	@Description	Check an ed25519 signature against the wallet's public key and issue a JWT session token. Unknown addresses are registered on the fly.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyRequestDTO	true	"Signed challenge"
//	@Success		200		{object}	dto.VerifyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or address"
//	@Failure		401		{object}	utils.Response	"Signature verification failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Verify(r.Context(), req.PublicKey, req.Signature, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.StellarAddress)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		Token:          token,
		StellarAddress: user.StellarAddress,
	})
}
