package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"passfit/internal/delivery/http/response"
	"passfit/internal/domain/entity"
	"passfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudioHandlerParams holds dependencies for StudioHandler, injected by Fx.
type StudioHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	CheckInUC   usecase.CheckInUsecase
	Logger      *slog.Logger
}

// StudioHandler holds dependencies for studio directory handlers
type StudioHandler struct {
	directoryUC usecase.DirectoryUsecase
	checkInUC   usecase.CheckInUsecase
	logger      *slog.Logger
}

// NewStudioHandler is the constructor for StudioHandler
func NewStudioHandler(params StudioHandlerParams) *StudioHandler {
	return &StudioHandler{
		directoryUC: params.DirectoryUC,
		checkInUC:   params.CheckInUC,
		logger:      params.Logger,
	}
}

// SearchStudios handles studio directory queries. All filters are optional;
// with no center or radius the search is unbounded.
func (h *StudioHandler) SearchStudios(c echo.Context) error {
	query := &usecase.DirectoryQuery{
		SearchTerm: c.QueryParam("search"),
		OpenNow:    c.QueryParam("open_now") == "true",
	}

	center, err := parseCenter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid center coordinates")
	}
	query.Center = center

	if raw := c.QueryParam("radius_km"); raw != "" {
		radius, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid radius")
		}
		query.RadiusKm = radius
	}

	if raw := c.QueryParam("min_rating"); raw != "" {
		rating, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid minimum rating")
		}
		query.MinRating = rating
	}

	if raw := c.QueryParam("amenities"); raw != "" {
		for _, amenity := range strings.Split(raw, ",") {
			if amenity = strings.TrimSpace(amenity); amenity != "" {
				query.Amenities = append(query.Amenities, amenity)
			}
		}
	}

	viewport, err := parseViewport(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid viewport bounds")
	}
	query.Viewport = viewport

	results, err := h.directoryUC.Search(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Studios retrieved successfully")
}

// GetStudio handles retrieving a single studio, annotated with the distance
// from the optional center coordinates.
func (h *StudioHandler) GetStudio(c echo.Context) error {
	studioID := c.Param("id")
	if studioID == "" {
		return response.BadRequest(c, "INVALID_ID", "Studio ID is required")
	}

	center, err := parseCenter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid center coordinates")
	}

	result, err := h.directoryUC.GetStudio(c.Request().Context(), studioID, center)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Studio retrieved successfully")
}

// GetStudioCheckInCode handles rendering the studio's check-in QR code as PNG
func (h *StudioHandler) GetStudioCheckInCode(c echo.Context) error {
	studioID := c.Param("id")
	if studioID == "" {
		return response.BadRequest(c, "INVALID_ID", "Studio ID is required")
	}

	png, err := h.checkInUC.GenerateStudioCode(c.Request().Context(), studioID)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseCenter reads optional lat/lng query params. Both must be present for
// a center to apply.
func parseCenter(c echo.Context) (*entity.GeoPoint, error) {
	rawLat := c.QueryParam("lat")
	rawLng := c.QueryParam("lng")
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, err
	}

	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, err
	}

	return &entity.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// parseViewport reads optional viewport bounds. All four edges must be
// present for the viewport to apply.
func parseViewport(c echo.Context) (*usecase.ViewportBounds, error) {
	raws := []string{
		c.QueryParam("lat_min"),
		c.QueryParam("lat_max"),
		c.QueryParam("lng_min"),
		c.QueryParam("lng_max"),
	}

	present := 0
	for _, raw := range raws {
		if raw != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}

	values := make([]float64, len(raws))
	for idx, raw := range raws {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		values[idx] = value
	}

	return &usecase.ViewportBounds{
		LatMin: values[0],
		LatMax: values[1],
		LngMin: values[2],
		LngMax: values[3],
	}, nil
}
