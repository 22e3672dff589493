package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
)

func newRouter() *chi.Mux {
	router := chi.NewRouter()
	svc := catalog.NewService(catalog.NewKVRepository(kv.NewMemory()))
	catalog.NewHandler(svc).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductEndpoints(t *testing.T) {
	router := newRouter()

	rec := do(t, router, http.MethodPost, "/api/v1/catalog/products",
		`{"name":"Classic Blue T-Shirt","price":25,"stock":50,"category":"Tops"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)

	rec = do(t, router, http.MethodGet, "/api/v1/catalog/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Classic Blue T-Shirt")

	rec = do(t, router, http.MethodPut, "/api/v1/catalog/products/1",
		`{"name":"Classic Tee","price":30,"stock":50}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Classic Tee")

	rec = do(t, router, http.MethodDelete, "/api/v1/catalog/products/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/catalog/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductValidation(t *testing.T) {
	router := newRouter()

	rec := do(t, router, http.MethodPost, "/api/v1/catalog/products", `{"price":25}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/catalog/products", `{"name":"Tee","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/catalog/products", `{"name":"Tee","price":1,"stock":-2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUnknownProductReturns404(t *testing.T) {
	router := newRouter()
	rec := do(t, router, http.MethodPut, "/api/v1/catalog/products/99", `{"name":"Ghost","price":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
