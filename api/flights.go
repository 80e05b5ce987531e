package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vkarpenko/flightdesk/internal/dates"
	"github.com/vkarpenko/flightdesk/internal/domain"
	"github.com/vkarpenko/flightdesk/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	FlightName     string `json:"flightName" binding:"required"`
	Company        string `json:"company" binding:"required"`
	DeparturePlace string `json:"departurePlace" binding:"required"`
	ArrivalPlace   string `json:"arrivalPlace" binding:"required"`
	DepartureDate  string `json:"departureDate" binding:"required"`
	ArrivalDate    string `json:"arrivalDate" binding:"required"`
}

type flightResponse struct {
	ID             int64  `json:"id"`
	FlightName     string `json:"flightName"`
	Company        string `json:"company"`
	DeparturePlace string `json:"departurePlace"`
	ArrivalPlace   string `json:"arrivalPlace"`
	DepartureDate  string `json:"departureDate"`
	ArrivalDate    string `json:"arrivalDate"`
	DurationDays   int64  `json:"durationDays"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// list godoc
// @Summary      List flights
// @Description  Combinable filters by company, arrival place and departure date, with optional sorting
// @Tags         flights
// @Produce      json
// @Param        company       query string false "Company name (case-insensitive exact match)"
// @Param        arrivalPlace  query string false "Arrival place (case-insensitive exact match)"
// @Param        departureDate query string false "Departure date (YYYY-MM-DD)"
// @Param        sortBy        query string false "departureDate, company or arrivalPlace"
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Router       /flights [get]
func (h *FlightHandler) list(c *gin.Context) {
	departureDate, err := dates.Parse(c.Query("departureDate"), "departureDate")
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), flights.ListQuery{
		Company:       c.Query("company"),
		ArrivalPlace:  c.Query("arrivalPlace"),
		DepartureDate: departureDate,
		SortBy:        c.Query("sortBy"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]flightResponse, 0, len(result))
	for _, f := range result {
		data = append(data, toResponse(f))
	}
	respond(c, http.StatusOK, "flight list", data)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "flight found by id", toResponse(*f))
}

// create godoc
// @Summary      Create a flight
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body flightRequest true "Flight data"
// @Success      201 {object} Response
// @Failure      400 {object} Response
// @Failure      409 {object} Response
// @Router       /flights [post]
func (h *FlightHandler) create(c *gin.Context) {
	f, err := h.bindFlight(c)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "flight created", toResponse(*created))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := h.bindFlight(c)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, f)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "flight updated", toResponse(*updated))
}

func (h *FlightHandler) remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "flight deleted", nil)
}

// bindFlight decodes and validates the request body, then parses both dates.
// Binding failures surface as validator field errors; date failures as
// bad-input errors naming the field.
func (h *FlightHandler) bindFlight(c *gin.Context) (domain.Flight, error) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return domain.Flight{}, err
		}
		return domain.Flight{}, domain.BadInput("invalid request body")
	}

	departureDate, err := dates.Parse(req.DepartureDate, "departureDate")
	if err != nil {
		return domain.Flight{}, err
	}
	arrivalDate, err := dates.Parse(req.ArrivalDate, "arrivalDate")
	if err != nil {
		return domain.Flight{}, err
	}

	return domain.Flight{
		FlightName:     req.FlightName,
		Company:        req.Company,
		DeparturePlace: req.DeparturePlace,
		ArrivalPlace:   req.ArrivalPlace,
		DepartureDate:  departureDate,
		ArrivalDate:    arrivalDate,
	}, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.BadInput("invalid id")
	}
	return id, nil
}

func toResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:             f.ID,
		FlightName:     f.FlightName,
		Company:        f.Company,
		DeparturePlace: f.DeparturePlace,
		ArrivalPlace:   f.ArrivalPlace,
		DepartureDate:  f.DepartureDate.Format(dates.Layout),
		ArrivalDate:    f.ArrivalDate.Format(dates.Layout),
		DurationDays:   f.DurationDays(),
	}
}
