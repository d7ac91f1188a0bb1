package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"tripnest/models"
	"tripnest/services/cart"
	"tripnest/services/search"
	"tripnest/services/supplier"
	"tripnest/services/trip"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes the search/selection funnel: trip state, query
// updates, paginated search and the cart.
type TripHandler struct {
	Trip       trip.TripService
	Client     supplier.Client
	Defaults   search.Defaults
	FetchBatch int
	Logger     *zap.Logger
}

func NewTripHandler(tripSvc trip.TripService, client supplier.Client, defaults search.Defaults, fetchBatch int, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		Trip:       tripSvc,
		Client:     client,
		Defaults:   defaults,
		FetchBatch: fetchBatch,
		Logger:     logger,
	}
}

// StartTrip issues a fresh trip to the client.
func (h *TripHandler) StartTrip(c *gin.Context) {
	state, err := h.Trip.Start(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start trip", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripId": state.TripID})
}

// GetTrip returns the current funnel state.
func (h *TripHandler) GetTrip(c *gin.Context) {
	state, err := h.Trip.Get(c.Request.Context(), c.Param("tripID"))
	if err != nil {
		h.tripError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateQuery merges a partial set of search fields into the trip.
func (h *TripHandler) UpdateQuery(c *gin.Context) {
	var patch models.SearchParamsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := h.Trip.UpdateQuery(c.Request.Context(), c.Param("tripID"), patch)
	if err != nil {
		h.tripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripId": state.TripID, "params": state.Params})
}

// RunSearch fetches the next supplier batch and merges it into the trip.
// With reset=true the held results are dropped first and the generation is
// bumped, so any batch still in flight for the old criteria is discarded on
// arrival.
func (h *TripHandler) RunSearch(c *gin.Context) {
	var input struct {
		Reset bool `json:"reset"`
	}
	// An absent body means "continue the current search", not a bad request.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	tripID := c.Param("tripID")

	state, err := h.Trip.Get(ctx, tripID)
	if err != nil {
		h.tripError(c, err)
		return
	}
	if input.Reset {
		if state, err = h.Trip.ResetSearch(ctx, tripID); err != nil {
			h.tripError(c, err)
			return
		}
	}
	if err := search.ValidateParams(state.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generation := state.Generation
	req := search.BuildRequest(state.Params, h.Defaults, h.FetchBatch, len(state.Hotels))

	page, total, err := h.Client.SearchRates(ctx, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "hotel search failed", err.Error())
		return
	}

	state, err = h.Trip.AppendResults(ctx, tripID, generation, page)
	if err != nil {
		if errors.Is(err, trip.ErrStaleGeneration) {
			c.JSON(http.StatusConflict, gin.H{"error": "search was reset while results were in flight"})
			return
		}
		h.tripError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tripId":    state.TripID,
		"total":     total,
		"held":      len(state.Hotels),
		"displayed": state.Displayed,
		"hotels":    state.Visible(),
	})
}

// ShowMore widens the client-side display window by one page.
func (h *TripHandler) ShowMore(c *gin.Context) {
	state, err := h.Trip.ShowMore(c.Request.Context(), c.Param("tripID"))
	if err != nil {
		h.tripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tripId":    state.TripID,
		"held":      len(state.Hotels),
		"displayed": state.Displayed,
		"hotels":    state.Visible(),
	})
}

// GetCart returns the cart with its running total.
func (h *TripHandler) GetCart(c *gin.Context) {
	state, err := h.Trip.Get(c.Request.Context(), c.Param("tripID"))
	if err != nil {
		h.tripError(c, err)
		return
	}
	h.respondCart(c, state)
}

// AddToCart appends a chosen offer to the trip's cart.
func (h *TripHandler) AddToCart(c *gin.Context) {
	var input struct {
		Offer      models.RoomOffer       `json:"offer"`
		Preference models.GuestPreference `json:"preference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := h.Trip.AddToCart(c.Request.Context(), c.Param("tripID"), input.Offer, input.Preference)
	if err != nil {
		if errors.Is(err, cart.ErrDuplicateOffer) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.tripError(c, err)
		return
	}
	h.respondCart(c, state)
}

// RemoveFromCart deletes the cart line at the given position.
func (h *TripHandler) RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
		return
	}

	state, err := h.Trip.RemoveFromCart(c.Request.Context(), c.Param("tripID"), index)
	if err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.tripError(c, err)
		return
	}
	h.respondCart(c, state)
}

func (h *TripHandler) respondCart(c *gin.Context, state *trip.TripState) {
	total, currency, err := state.Cart.Total()
	if err != nil {
		// Mixed currencies: the items are still returned, the total is not.
		c.JSON(http.StatusOK, gin.H{
			"tripId":  state.TripID,
			"items":   state.Cart.Items,
			"warning": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tripId":   state.TripID,
		"items":    state.Cart.Items,
		"total":    total,
		"currency": currency,
	})
}

func (h *TripHandler) tripError(c *gin.Context, err error) {
	if errors.Is(err, trip.ErrTripNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found or expired"})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "trip operation failed", err.Error())
}
