package http

import (
	"errors"
	"net/http"

	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidation(w, ve)
		case errors.Is(err, service.ErrUserExists):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			writeInternal(w, r, "register failed", err)
		}
		return
	}

	httpx.WriteData(w, http.StatusOK, "register success", toUserDTO(user))
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Same message for unknown identifier, inactive account and
			// wrong password.
			httpx.WriteError(w, http.StatusForbidden, "user not found")
			return
		}
		writeInternal(w, r, "login failed", err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteData(w, http.StatusOK, "login success", map[string]string{"token": token})
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.AuthService.Me(r.Context(), identity.UserID)
	if err != nil {
		writeInternal(w, r, "profile lookup failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "success", toUserDTO(user))
}

type activationRequest struct {
	Code string `json:"code"`
}

func (h *AuthHandler) HandleActivation(w http.ResponseWriter, r *http.Request) {
	var req activationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.Activate(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrActivationCodeNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "activation code not found")
			return
		}
		writeInternal(w, r, "activation failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "activation success", toUserDTO(user))
}

type updateProfileRequest struct {
	FullName       string `json:"fullName"`
	ProfilePicture string `json:"profilePicture"`
}

func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.FullName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "fullName is required")
		return
	}

	user, err := h.AuthService.UpdateProfile(r.Context(), identity.UserID, req.FullName, req.ProfilePicture)
	if err != nil {
		writeInternal(w, r, "profile update failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "update profile success", toUserDTO(user))
}

type updatePasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *AuthHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.UpdatePassword(r.Context(), identity.UserID, req.Password, req.ConfirmPassword)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeValidation(w, ve)
			return
		}
		writeInternal(w, r, "password update failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "update password success", toUserDTO(user))
}
