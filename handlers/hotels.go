package handlers

import (
	"net/http"
	"strconv"

	"tripnest/services/offers"
	"tripnest/services/search"
	"tripnest/services/supplier"
	"tripnest/services/trip"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelHandler exposes destination search, per-hotel room configuration
// groups and the review carousel data.
type HotelHandler struct {
	Client   supplier.Client
	Trip     trip.TripService
	Defaults search.Defaults
	Logger   *zap.Logger
}

func NewHotelHandler(client supplier.Client, tripSvc trip.TripService, defaults search.Defaults, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{Client: client, Trip: tripSvc, Defaults: defaults, Logger: logger}
}

// SearchPlaces resolves a free-text destination query.
func (h *HotelHandler) SearchPlaces(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: q"})
		return
	}

	places, err := h.Client.SearchPlaces(c.Request.Context(), query)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "place search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

// HotelOffers fetches a hotel's rate offers under the trip's criteria and
// returns them collapsed into configuration groups, cheapest group first.
// The traveler picks a room shape once and a rate second.
func (h *HotelHandler) HotelOffers(c *gin.Context) {
	tripID := c.Query("tripID")
	if tripID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: tripID"})
		return
	}

	ctx := c.Request.Context()
	state, err := h.Trip.Get(ctx, tripID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found or expired"})
		return
	}
	if err := search.ValidateParams(state.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotelID := c.Param("hotelID")
	req := search.BuildRequest(state.Params, h.Defaults, 0, 0)
	details, err := h.Client.HotelRates(ctx, hotelID, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch hotel rates", err.Error())
		return
	}

	groups := offers.Group(details.Rates)
	c.JSON(http.StatusOK, gin.H{
		"hotelId": details.HotelID,
		"name":    details.Name,
		"groups":  groups,
	})
}

// HotelReviews proxies a page of guest reviews, optionally with the
// supplier's sentiment block.
func (h *HotelHandler) HotelReviews(c *gin.Context) {
	hotelID := c.Param("hotelID")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	sentiment := c.DefaultQuery("getSentiment", "false") == "true"

	page, err := h.Client.Reviews(c.Request.Context(), hotelID, limit, offset, sentiment)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, page)
}
