package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	appmw "app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// メモリストアで全ルートを備えたechoを組み立てる
func newTestEcho(t *testing.T) (*echo.Echo, *infraRepo.MemoryStore) {
	t.Helper()

	store := infraRepo.NewMemoryStore()
	productRepo := infraRepo.NewProductMemoryRepository(store)
	cartRepo := infraRepo.NewCartMemoryRepository(store)
	cartItemRepo := infraRepo.NewCartItemMemoryRepository(store)

	log, _ := logtest.NewNullLogger()

	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, log)

	e := echo.New()
	e.Validator = handler.NewRequestValidator()

	handler.NewProductHandler(productUC).RegisterRoutes(e.Group("/api/products"))

	cartG := e.Group("/api/cart")
	cartG.Use(appmw.SessionID())
	handler.NewCartHandler(cartUC).RegisterRoutes(cartG)

	checkoutG := e.Group("/api/checkout")
	checkoutG.Use(appmw.SessionID())
	handler.NewCheckoutHandler(checkoutUC).RegisterRoutes(checkoutG)

	return e, store
}

func seedTestProduct(t *testing.T, store *infraRepo.MemoryStore, name string, price int64, stock int64) model.Product {
	t.Helper()
	p, err := infraRepo.NewProductMemoryRepository(store).Create(context.Background(), model.Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: model.CategoryAccessoires,
	})
	require.NoError(t, err)
	return p
}

func doJSON(e *echo.Echo, method string, path string, userID string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set(appmw.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_GetCart_Empty(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodGet, "/api/cart", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
}

func TestCartHandler_AddAndGet(t *testing.T) {
	e, store := newTestEcho(t)
	p := seedTestProduct(t, store, "Ballon", 25000, 10)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", "u1",
		`{"product_id": `+jsonInt(p.ID)+`, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(50000), out.Total)

	// 別ユーザーには見えない
	rec = doJSON(e, http.MethodGet, "/api/cart", "u2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
}

func TestCartHandler_Add_InsufficientStock(t *testing.T) {
	e, store := newTestEcho(t)
	p := seedTestProduct(t, store, "Ballon", 25000, 3)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", "u1",
		`{"product_id": `+jsonInt(p.ID)+`, "quantity": 5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "insufficient stock", out.Error)
	require.NotNil(t, out.Available)
	assert.Equal(t, int64(3), *out.Available)
}

func TestCartHandler_Add_InvalidBody(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", "u1", `{"quantity": 0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_UpdateToZeroRemoves(t *testing.T) {
	e, store := newTestEcho(t)
	p := seedTestProduct(t, store, "Ballon", 25000, 10)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", "u1",
		`{"product_id": `+jsonInt(p.ID)+`, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/cart/update", "u1",
		`{"product_id": `+jsonInt(p.ID)+`, "quantity": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
}

func TestCartHandler_RemoveMissing_NotFound(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodDelete, "/api/cart/remove/42", "u1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_Clear_AlwaysOK(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodDelete, "/api/cart/clear", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
}

func TestCheckoutHandler_ConfirmsAndClears(t *testing.T) {
	e, store := newTestEcho(t)
	p := seedTestProduct(t, store, "Ballon", 25000, 10)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", "u1",
		`{"product_id": `+jsonInt(p.ID)+`, "quantity": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/checkout", "u1",
		`{"customer_name": "Awa", "address": "Dakar", "payment_method": "cash"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CheckoutOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(25000), out.Total)

	rec = doJSON(e, http.MethodGet, "/api/cart", "u1", "")
	var cart usecase.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestProductHandler_ListAndDetail(t *testing.T) {
	e, store := newTestEcho(t)
	p := seedTestProduct(t, store, "Ballon Officiel", 25000, 10)

	rec := doJSON(e, http.MethodGet, "/api/products?page=1&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list usecase.ProductListOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)

	rec = doJSON(e, http.MethodGet, "/api/products/"+jsonInt(p.ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/products/999", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func jsonInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
