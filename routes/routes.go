package routes

import (
	"tripnest/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the booking funnel.
func RegisterRoutes(r *gin.Engine, tripH *handlers.TripHandler, hotelH *handlers.HotelHandler, bookingH *handlers.BookingHandler) {
	api := r.Group("/api")

	// Destination and hotel catalogue.
	api.GET("/places", hotelH.SearchPlaces)
	hotels := api.Group("/hotels")
	{
		hotels.GET("/:hotelID/offers", hotelH.HotelOffers)
		hotels.GET("/:hotelID/reviews", hotelH.HotelReviews)
	}

	// Per-traveler funnel state.
	tripGroup := api.Group("/trip")
	{
		tripGroup.POST("", tripH.StartTrip)
		tripGroup.GET("/:tripID", tripH.GetTrip)
		tripGroup.PUT("/:tripID/query", tripH.UpdateQuery)
		tripGroup.POST("/:tripID/search", tripH.RunSearch)
		tripGroup.POST("/:tripID/more", tripH.ShowMore)
		tripGroup.GET("/:tripID/cart", tripH.GetCart)
		tripGroup.POST("/:tripID/cart", tripH.AddToCart)
		tripGroup.DELETE("/:tripID/cart/:index", tripH.RemoveFromCart)
		tripGroup.POST("/:tripID/prebook", bookingH.Prebook)
	}

	// Prebook/submit lifecycle.
	bookingGroup := api.Group("/booking")
	{
		bookingGroup.POST("/submit", bookingH.Submit)
		bookingGroup.POST("/verify", bookingH.Verify)
		bookingGroup.POST("/resend", bookingH.ResendCode)
		bookingGroup.GET("/session/:sessionID", bookingH.GetSession)
	}

	// Booking history.
	api.GET("/bookings", bookingH.ListBookings)
	api.GET("/bookings/:bookingID", bookingH.GetBooking)
}
