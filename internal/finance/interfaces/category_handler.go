package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	CreateCategory(draft domain.CategoryDraft, userID int64) (*domain.Category, error)
	GetUserCategories(userID int64) ([]domain.Category, error)
	GetCategoryByIDAndUser(categoryID, userID int64) (*domain.Category, error)
	UpdateCategory(categoryID, userID int64, draft domain.CategoryDraft) (*domain.Category, error)
	DeleteCategory(categoryID, userID int64) error
}

type categoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type categoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func newCategoryResponse(category *domain.Category) categoryResponse {
	return categoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	}
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) respondServiceError(w http.ResponseWriter, err error) {
	var validationErrors *financeErrors.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Messages())
		return
	}
	switch {
	case errors.Is(err, financeErrors.ErrOwnerNotFound):
		h.respondError(w, http.StatusNotFound, financeErrors.ErrOwnerNotFound.Error())
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		h.respondError(w, http.StatusNotFound, financeErrors.ErrCategoryNotFound.Error())
	default:
		log.Printf("category handler error: %v", err)
		h.respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(domain.CategoryDraft{Name: req.Name, Color: req.Color}, userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    newCategoryResponse(category),
	})
}

func (h *CategoryHandler) GetUserCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	responses := make([]categoryResponse, len(categories))
	for i := range categories {
		responses[i] = newCategoryResponse(&categories[i])
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Categories retrieved successfully.",
		"data":    responses,
	})
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategoryByIDAndUser(categoryID, userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category")
		return
	}
	if category == nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrCategoryNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newCategoryResponse(category),
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(categoryID, userID, domain.CategoryDraft{Name: req.Name, Color: req.Color})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newCategoryResponse(category),
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(categoryID, userID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
