package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehall/internal/catalog"
	"cinehall/internal/models"
	"cinehall/internal/payment"
	"cinehall/internal/service"
	"cinehall/internal/storage"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	services := service.NewServices(catalog.Seeded(), storage.NopStore{}, &payment.SimulatedGateway{})
	h := NewHandlers(services, nil, nil)

	api := r.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", h.CreateOrder)
			orders.POST("/reserve", h.ReserveOrder)
			orders.POST("/expire", h.ExpireOrders)
			orders.PATCH("/pay", h.PayOrder)
			orders.PATCH("/cancel", h.CancelOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:id", h.GetOrder)
		}

		seats := api.Group("/seats")
		{
			seats.GET("", h.ListSeats)
			seats.GET("/price", h.PriceSeat)
		}

		pricing := api.Group("/pricing")
		{
			pricing.GET("/strategy", h.GetStrategy)
			pricing.PUT("/strategy", h.SetStrategy)
		}

		api.GET("/shows", h.ListShows)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/orders", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-001",
		SeatIDs: []string{"4-1", "4-2"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var snap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, models.OrderPending, snap.Status)
	assert.Nil(t, snap.LockExpiry)
	assert.ElementsMatch(t, []string{"4-1", "4-2"}, snap.SeatIDs)
}

func TestCreateOrderValidation(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/orders", gin.H{"user_id": "USER-001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReserveOrder(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/orders/reserve", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-001",
		SeatIDs: []string{"5-5"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var snap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, models.OrderReserved, snap.Status)
	assert.NotNil(t, snap.LockExpiry)
}

func TestReserveConflict(t *testing.T) {
	r := setupRouter()

	first := doJSON(t, r, "POST", "/api/orders/reserve", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-001",
		SeatIDs: []string{"6-6"},
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, r, "POST", "/api/orders/reserve", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-001",
		SeatIDs: []string{"6-6", "6-7"},
	})
	assert.Equal(t, http.StatusConflict, second.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "conflict", resp.Kind)
	assert.Equal(t, "6-6", resp.SeatID)
}

func TestPayAndCancelFlow(t *testing.T) {
	r := setupRouter()

	created := doJSON(t, r, "POST", "/api/orders", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-002",
		SeatIDs: []string{"4-4"},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var snap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &snap))

	paid := doJSON(t, r, "PATCH", "/api/orders/pay", models.PayOrderRequest{OrderID: snap.OrderID})
	assert.Equal(t, http.StatusOK, paid.Code)

	var paidSnap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(paid.Body.Bytes(), &paidSnap))
	assert.Equal(t, models.OrderPaid, paidSnap.Status)

	// Cancelling a paid order takes the refund path.
	cancelled := doJSON(t, r, "PATCH", "/api/orders/cancel", models.CancelOrderRequest{OrderID: snap.OrderID})
	assert.Equal(t, http.StatusOK, cancelled.Code)

	var refunded models.OrderSnapshot
	require.NoError(t, json.Unmarshal(cancelled.Body.Bytes(), &refunded))
	assert.Equal(t, models.OrderRefunded, refunded.Status)
}

func TestPayUnknownOrder(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "PATCH", "/api/orders/pay", models.PayOrderRequest{OrderID: "ORD-missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayTerminalOrder(t *testing.T) {
	r := setupRouter()

	created := doJSON(t, r, "POST", "/api/orders", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-003",
		SeatIDs: []string{"2-2"},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var snap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &snap))

	cancelled := doJSON(t, r, "PATCH", "/api/orders/cancel", models.CancelOrderRequest{OrderID: snap.OrderID})
	require.Equal(t, http.StatusOK, cancelled.Code)

	w := doJSON(t, r, "PATCH", "/api/orders/pay", models.PayOrderRequest{OrderID: snap.OrderID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetOrder(t *testing.T) {
	r := setupRouter()

	created := doJSON(t, r, "POST", "/api/orders", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-001",
		SeatIDs: []string{"7-7"},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var snap models.OrderSnapshot
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &snap))

	w := doJSON(t, r, "GET", "/api/orders/"+snap.OrderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	missing := doJSON(t, r, "GET", "/api/orders/ORD-missing", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestListOrders(t *testing.T) {
	r := setupRouter()

	created := doJSON(t, r, "POST", "/api/orders", models.CreateOrderRequest{
		UserID:  "USER-001",
		ShowID:  "SHOW-004",
		SeatIDs: []string{"1-1"},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, r, "GET", "/api/orders?user_id=USER-001", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.OrderSnapshot `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)

	missing := doJSON(t, r, "GET", "/api/orders", nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestExpireEndpoint(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/orders/expire", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ExpireResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Expired)
}

func TestListSeats(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "GET", "/api/seats?show_id=SHOW-001", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ListSeatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SHOW-001", resp.ShowID)
	// ROOM-001 is 8x12.
	assert.Len(t, resp.Seats, 96)
	assert.Equal(t, "1-1", resp.Seats[0].ID)
	assert.Equal(t, models.SeatVIP, resp.Seats[0].Type)

	missing := doJSON(t, r, "GET", "/api/seats", nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	unknown := doJSON(t, r, "GET", "/api/seats?show_id=SHOW-999", nil)
	assert.Equal(t, http.StatusNotFound, unknown.Code)
}

func TestPriceSeat(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "GET", "/api/seats/price?show_id=SHOW-001&seat_id=4-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PriceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "standard", resp.Strategy)
	assert.Greater(t, resp.Price, 0.0)

	malformed := doJSON(t, r, "GET", "/api/seats/price?show_id=SHOW-001&seat_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
}

func TestStrategyEndpoints(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "GET", "/api/pricing/strategy", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StrategyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "standard", resp.Strategy)

	updated := doJSON(t, r, "PUT", "/api/pricing/strategy", models.StrategyRequest{Strategy: "premium"})
	assert.Equal(t, http.StatusOK, updated.Code)
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &resp))
	assert.Equal(t, "premium", resp.Strategy)

	unknown := doJSON(t, r, "PUT", "/api/pricing/strategy", models.StrategyRequest{Strategy: "dynamic"})
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
}

func TestListShows(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "GET", "/api/shows", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Shows []models.ShowResponse `json:"shows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Shows, 4)
	assert.Equal(t, "SHOW-001", resp.Shows[0].ID)
	assert.Equal(t, "The Wandering Signal", resp.Shows[0].MovieTitle)
	assert.Equal(t, 96, resp.Shows[0].TotalSeats)
}
