package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

func TestCreateCategory_Success(t *testing.T) {
	service := &MockCategoryService{
		CreateFunc: func(draft domain.CategoryDraft, userID int64) (*domain.Category, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "Groceries", draft.Name)
			return &domain.Category{ID: 4, Name: draft.Name, Color: draft.Color, UserID: userID}, nil
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Groceries", "color": "#00FF00"})
	w := httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/categories", body, 1))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response["status"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["id"])
	assert.Equal(t, "Groceries", data["name"])
	assert.Equal(t, "#00FF00", data["color"])
}

func TestCreateCategory_ValidationErrors(t *testing.T) {
	service := &MockCategoryService{
		CreateFunc: func(draft domain.CategoryDraft, userID int64) (*domain.Category, error) {
			validationErrors := &financeErrors.ValidationErrors{}
			validationErrors.Add(financeErrors.NewFieldValidationError("name", "must not be blank"))
			return nil, validationErrors
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": ""})
	w := httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/categories", body, 1))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "error", response["status"])
	assert.Len(t, response["errors"], 1)
}

func TestCreateCategory_OwnerNotFound(t *testing.T) {
	service := &MockCategoryService{
		CreateFunc: func(draft domain.CategoryDraft, userID int64) (*domain.Category, error) {
			return nil, financeErrors.ErrOwnerNotFound
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Groceries"})
	w := httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/categories", body, 999))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetUserCategories_EmptyList(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetUserCategories(w, authedRequest(http.MethodGet, "/api/categories", nil, 1))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Empty(t, data)
}

func TestGetUserCategories_ReturnsOwnedOnly(t *testing.T) {
	service := &MockCategoryService{
		ListFunc: func(userID int64) ([]domain.Category, error) {
			return []domain.Category{
				{ID: 1, Name: "Rent", UserID: userID},
				{ID: 2, Name: "Salary", Color: "#FFAA00", UserID: userID},
			}, nil
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetUserCategories(w, authedRequest(http.MethodGet, "/api/categories", nil, 1))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Rent", first["name"])
	_, hasColor := first["color"]
	assert.False(t, hasColor)
}

func TestGetCategoryByID_NotOwnedLooksAbsent(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authedRequest(http.MethodGet, "/api/categories/9", nil, 1)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.GetCategoryByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetCategoryByID_Success(t *testing.T) {
	service := &MockCategoryService{
		GetFunc: func(categoryID, userID int64) (*domain.Category, error) {
			assert.Equal(t, int64(9), categoryID)
			return &domain.Category{ID: 9, Name: "Rent", UserID: userID}, nil
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodGet, "/api/categories/9", nil, 1)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.GetCategoryByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Rent", data["name"])
}

func TestUpdateCategory_NotFound(t *testing.T) {
	service := &MockCategoryService{
		UpdateFunc: func(categoryID, userID int64, draft domain.CategoryDraft) (*domain.Category, error) {
			return nil, financeErrors.ErrCategoryNotFound
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Updated"})
	req := authedRequest(http.MethodPut, "/api/categories/9", body, 1)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateCategory_InvalidID(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Updated"})
	req := authedRequest(http.MethodPut, "/api/categories/abc", body, 1)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteCategory_NoContent(t *testing.T) {
	service := &MockCategoryService{
		DeleteFunc: func(categoryID, userID int64) error {
			assert.Equal(t, int64(9), categoryID)
			return nil
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodDelete, "/api/categories/9", nil, 1)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}
