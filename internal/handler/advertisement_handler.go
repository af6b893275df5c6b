package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"adboard/internal/model"
	"adboard/internal/repository"
	"adboard/internal/service"
)

// AdvertisementHandler handles advertisement endpoints.
type AdvertisementHandler struct {
	adService service.AdvertisementService
}

// NewAdvertisementHandler creates a new advertisement handler.
func NewAdvertisementHandler(adService service.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{adService: adService}
}

// AdvertisementCreateRequest represents a new advertisement.
type AdvertisementCreateRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Author      string          `json:"author" validate:"required"`
}

// AdvertisementUpdateRequest represents a partial advertisement update.
// Absent fields are left untouched.
type AdvertisementUpdateRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Author      *string          `json:"author"`
}

// AdvertisementResponse is the full public shape of an advertisement.
// Price is rendered as a plain JSON number.
type AdvertisementResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchResponse carries the ids of matching advertisements.
type SearchResponse struct {
	Advertisements []uint `json:"advertisements"`
}

// NewAdvertisementResponse builds the public view of an advertisement.
func NewAdvertisementResponse(ad *model.Advertisement) AdvertisementResponse {
	return AdvertisementResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price.InexactFloat64(),
		Author:      ad.Author,
		CreatedAt:   ad.CreatedAt,
	}
}

// Create godoc
// @Summary Create an advertisement owned by the caller
// @Tags advertisements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdvertisementCreateRequest true "Advertisement data"
// @Success 201 {object} IDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /advertisement [post]
func (h *AdvertisementHandler) Create(c echo.Context) error {
	var req AdvertisementCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ad, err := h.adService.Create(c.Request().Context(), Identity(c), req.Title, req.Description, req.Price, req.Author)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: ad.ID})
}

// Get godoc
// @Summary Get advertisement by id
// @Tags advertisements
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} AdvertisementResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /advertisement/{id} [get]
func (h *AdvertisementHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ad, err := h.adService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, NewAdvertisementResponse(ad))
}

// Update godoc
// @Summary Partially update an advertisement (owner or admin)
// @Tags advertisements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Param request body AdvertisementUpdateRequest true "Fields to change"
// @Success 200 {object} IDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /advertisement/{id} [patch]
func (h *AdvertisementHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req AdvertisementUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ad, err := h.adService.Update(c.Request().Context(), Identity(c), uint(id), service.AdvertisementUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Author:      req.Author,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, IDResponse{ID: ad.ID})
}

// Delete godoc
// @Summary Delete an advertisement (owner or admin)
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Success 200 {object} IDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /advertisement/{id} [delete]
func (h *AdvertisementHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.adService.Delete(c.Request().Context(), Identity(c), uint(id)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, IDResponse{ID: uint(id)})
}

// Search godoc
// @Summary Search advertisements by conjunctive filters
// @Tags advertisements
// @Produce json
// @Param title query string false "Case-insensitive substring of title"
// @Param author query string false "Case-insensitive substring of author"
// @Param price_min query number false "Inclusive lower price bound"
// @Param price_max query number false "Inclusive upper price bound"
// @Param created_from query string false "Inclusive ISO-8601 lower bound on created_at"
// @Param created_to query string false "Inclusive ISO-8601 upper bound on created_at"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /advertisement [get]
func (h *AdvertisementHandler) Search(c echo.Context) error {
	filter := repository.SearchFilter{
		Title:  c.QueryParam("title"),
		Author: c.QueryParam("author"),
	}

	if raw := c.QueryParam("price_min"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid price_min")
		}
		filter.PriceMin = &p
	}
	if raw := c.QueryParam("price_max"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid price_max")
		}
		filter.PriceMax = &p
	}
	if raw := c.QueryParam("created_from"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_from")
		}
		filter.CreatedFrom = &t
	}
	if raw := c.QueryParam("created_to"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_to")
		}
		filter.CreatedTo = &t
	}

	ids, err := h.adService.Search(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return c.JSON(http.StatusOK, SearchResponse{Advertisements: ids})
}
