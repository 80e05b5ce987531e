package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarpenko/flightdesk/api"
	"github.com/vkarpenko/flightdesk/internal/repository"
	"github.com/vkarpenko/flightdesk/internal/service/flights"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewFlightRepository()
	svc := flights.NewFlightService(repo, zerolog.Nop())
	return NewRouter(zerolog.Nop(), svc)
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, api.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRouter_ListSeed(t *testing.T) {
	router := newTestRouter()

	w, resp := do(t, router, "GET", "/flights", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.([]interface{}), 10)
}

func TestRouter_ListInvalidSortBy(t *testing.T) {
	router := newTestRouter()

	w, resp := do(t, router, "GET", "/flights?sortBy=invalid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "company")
	assert.Contains(t, resp.Message, "arrivalPlace")
	assert.Contains(t, resp.Message, "departureDate")
}

func TestRouter_UnroutedPath(t *testing.T) {
	router := newTestRouter()

	w, resp := do(t, router, "GET", "/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "/nope")
}

func TestRouter_FlightLifecycle(t *testing.T) {
	router := newTestRouter()

	body := `{"flightName":"X1","company":"Acme","departurePlace":"A","arrivalPlace":"B","departureDate":"2025-05-01","arrivalDate":"2025-05-03"}`
	w, resp := do(t, router, "POST", "/flights", body)
	require.Equal(t, http.StatusCreated, w.Code)

	created := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(11), created["id"])
	assert.Equal(t, float64(2), created["durationDays"])

	w, _ = do(t, router, "GET", "/flights/11", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Departure after arrival is rejected on update as well.
	badRange := `{"flightName":"X1","company":"Acme","departurePlace":"A","arrivalPlace":"B","departureDate":"2025-05-05","arrivalDate":"2025-05-01"}`
	w, resp = do(t, router, "PUT", "/flights/11", badRange)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "departureDate")

	w, _ = do(t, router, "DELETE", "/flights/11", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, "DELETE", "/flights/11", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_DuplicateNameAnyCase(t *testing.T) {
	router := newTestRouter()

	body := `{"flightName":"h001-v","company":"Acme","departurePlace":"A","arrivalPlace":"B","departureDate":"2025-05-01","arrivalDate":"2025-05-03"}`
	w, resp := do(t, router, "POST", "/flights", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
}

func TestRouter_ValidationFieldMap(t *testing.T) {
	router := newTestRouter()

	w, resp := do(t, router, "POST", "/flights", `{"company":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := resp.Data.(map[string]interface{})
	assert.Contains(t, fields, "flightName")
	assert.Contains(t, fields, "arrivalDate")
}
