package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"consultly/catalog"
	"consultly/models"
	booking "consultly/services/booking"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	expertRepo := catalog.NewInMemoryExpertRepo()
	serviceRepo := catalog.NewInMemoryServiceRepo()
	slotStore := catalog.NewSlotStore(42, time.Now())

	svc := &booking.DefaultBookingSessionService{
		Experts:        expertRepo,
		Services:       serviceRepo,
		Slots:          slotStore,
		Cache:          client,
		SessionTTL:     30 * time.Minute,
		ExpertID:       "exp-1",
		DefaultVariant: booking.DefaultVariant,
		Logger:         zap.NewNop(),
	}

	logger := zap.NewNop()
	catalogHandler := NewCatalogHandler(expertRepo, serviceRepo, serviceRepo, slotStore, logger)
	bookingHandler := NewBookingHandler(svc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/experts/:expertID", catalogHandler.GetExpert)
	api.GET("/services", catalogHandler.ListServices)
	api.GET("/services/:serviceID", catalogHandler.GetService)
	api.GET("/faq", catalogHandler.ListFAQ)
	api.GET("/slots", catalogHandler.ListAvailableSlots)

	bk := api.Group("/booking")
	bk.POST("/session", bookingHandler.InitiateSession)
	bk.GET("/session/:sessionID", bookingHandler.GetSession)
	bk.PUT("/session/:sessionID/step", bookingHandler.AdvanceStep)
	bk.PUT("/session/:sessionID/service", bookingHandler.SetService)
	bk.GET("/session/:sessionID/summary", bookingHandler.GetSummary)
	bk.DELETE("/session/:sessionID", bookingHandler.CancelSession)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetExpertEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/experts/exp-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var expert models.Expert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &expert))
	assert.Equal(t, "Dr. Sarah Johnson", expert.Name)

	w = doJSON(t, r, http.MethodGet, "/api/experts/exp-404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListServicesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, w.Code)

	var services []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Len(t, services, 5)
}

func TestGetServiceIncludesQuote(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/services/service-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Service models.Service    `json:"service"`
		Quote   models.PriceQuote `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "service-1", resp.Service.ID)
	assert.Equal(t, "42.00", resp.Quote.TotalDisplay)
}

func TestSlotsEndpointRequiresFullRange(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/slots?from=2026-09-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/slots", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingSessionLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var view booking.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	id := view.Session.SessionID
	require.NotEmpty(t, id)
	assert.Equal(t, models.StepService, view.Session.Step)

	// Scheduling before a service is chosen is rejected.
	w = doJSON(t, r, http.MethodPut, "/api/booking/session/"+id+"/step", `{"step":"schedule"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/booking/session/"+id+"/service", `{"serviceId":"service-2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/booking/session/"+id+"/step", `{"step":"schedule"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+id+"/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	var quote models.PriceQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, "78.75", quote.TotalDisplay)

	w = doJSON(t, r, http.MethodDelete, "/api/booking/session/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownSessionReturns404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownStepReturns400(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var view booking.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	w = doJSON(t, r, http.MethodPut, "/api/booking/session/"+view.Session.SessionID+"/step", `{"step":"checkout"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
