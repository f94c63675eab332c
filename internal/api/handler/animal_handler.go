package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/animalia/listing-system/internal/api/metrics"
	"github.com/animalia/listing-system/internal/core/ports"
)

// AnimalHandler handles HTTP requests for listing operations.
type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// Search handles POST /v0/animal/search.
//
// @Summary      Search animal listings
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        limit   query     int                 false  "Page size (default 100)"
// @Param        offset  query     int                 false  "Page offset (default 0)"
// @Param        body    body      searchAnimalRequest true   "Free-text query"
// @Success      200     {object}  searchAnimalResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /v0/animal/search [post]
func (h *AnimalHandler) Search(c echo.Context) error {
	var req searchAnimalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	started := time.Now()

	result, err := h.service.SearchAnimals(c.Request().Context(), ports.SearchAnimalsInput{
		Query:  req.Query,
		Limit:  intQueryParam(c, "limit", ports.DefaultSearchLimit),
		Offset: intQueryParam(c, "offset", 0),
	})
	if err != nil {
		return err
	}

	metrics.SearchDuration.Observe(time.Since(started).Seconds())
	metrics.SearchesTotal.WithLabelValues(strconv.FormatBool(c.Get("user_id") != nil)).Inc()

	return c.JSON(http.StatusOK, searchAnimalResponse{
		Hits:    result.Hits,
		Animals: toAnimalResponses(result.Animals),
		Limit:   result.Limit,
		Offset:  result.Offset,
	})
}

// Get handles GET /v0/animal. A missing id yields an empty list, not 404.
//
// @Summary      Fetch an animal listing by id
// @Tags         animals
// @Produce      json
// @Param        id           query     string  true   "Animal identifier"
// @Param        deactivated  query     bool    false  "Include deactivated listings (default false)"
// @Param        limit        query     int     false  "Page size (default 1)"
// @Param        offset       query     int     false  "Page offset (default 0)"
// @Success      200          {array}   animalResponse
// @Failure      400          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /v0/animal [get]
func (h *AnimalHandler) Get(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "id is required"})
	}

	deactivated, _ := strconv.ParseBool(c.QueryParam("deactivated"))

	views, err := h.service.GetAnimal(c.Request().Context(), ports.GetAnimalInput{
		ID:                 id,
		IncludeDeactivated: deactivated,
		Limit:              intQueryParam(c, "limit", ports.DefaultFetchLimit),
		Offset:             intQueryParam(c, "offset", 0),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAnimalResponses(views))
}

// Create handles POST /v0/animal, registration of a new listing.
//
// @Summary      Register a new animal listing
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        token  header    string               true  "Session token"
// @Param        body   body      createAnimalRequest  true  "Listing draft"
// @Success      201    {object}  animalResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /v0/animal [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	var req createAnimalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ownerID, _ := c.Get("user_id").(string)

	view, err := h.service.CreateAnimal(c.Request().Context(), ports.CreateAnimalInput{
		Name:            req.Name,
		Description:     req.Description,
		PhotoURL:        req.PhotoURL,
		Price:           req.Price,
		AcquisitionDate: req.AcquisitionDate,
		OwnerID:         ownerID,
	})
	if err != nil {
		return err
	}

	metrics.AnimalsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toAnimalResponse(*view))
}

// Like handles POST /v0/like.
//
// @Summary      Like an animal listing
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        token  header    string       true  "Session token"
// @Param        body   body      likeRequest  true  "Animal to like"
// @Success      201    {object}  likeResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      409    {object}  errorResponse
// @Router       /v0/like [post]
func (h *AnimalHandler) Like(c echo.Context) error {
	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, _ := c.Get("user_id").(string)

	if err := h.service.LikeAnimal(c.Request().Context(), req.AnimalID, userID); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, likeResponse{AnimalID: req.AnimalID})
}

func toAnimalResponse(v ports.AnimalView) animalResponse {
	return animalResponse{
		ID:              v.ID,
		Name:            v.Name,
		Description:     v.Description,
		Price:           v.Price,
		AcquisitionDate: v.AcquisitionDate,
		PhotoURL:        v.PhotoURL,
		Likes:           v.Likes,
		CreatedAt:       v.CreatedAt,
	}
}

func toAnimalResponses(views []ports.AnimalView) []animalResponse {
	out := make([]animalResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toAnimalResponse(v))
	}
	return out
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
