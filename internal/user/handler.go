package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
)

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, fieldErrors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(fieldErrors) > 0 && len(fieldErrors[0]) > 0 {
		payload["errors"] = fieldErrors[0]
	}
	respondJSON(w, status, payload)
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fieldErrors []string
	if req.Name == "" {
		fieldErrors = append(fieldErrors, "Name is required")
	}
	if req.Email == "" {
		fieldErrors = append(fieldErrors, "Email is required")
	}
	if req.Password == "" {
		fieldErrors = append(fieldErrors, "Password is required")
	}
	if len(fieldErrors) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed", fieldErrors)
		return
	}

	_, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) || errors.Is(err, ErrInvalidEmail) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "User registered successfully.",
	})
}

func (h *Handler) HandleGetAllUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   users,
	})
}

func (h *Handler) HandleGetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusNotFound, ErrUserNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   user,
	})
}

func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fieldErrors []string
	if req.Name == "" {
		fieldErrors = append(fieldErrors, "Name is required")
	}
	if req.Email == "" {
		fieldErrors = append(fieldErrors, "Email is required")
	}
	if len(fieldErrors) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed", fieldErrors)
		return
	}

	user, err := h.userService.UpdateUser(id, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusNotFound, ErrUserNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   user,
	})
}

func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusNotFound, ErrUserNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
