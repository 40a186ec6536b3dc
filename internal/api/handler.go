package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmstay/farmstay-server/internal/models"
	"github.com/farmstay/farmstay-server/internal/service"
	"github.com/farmstay/farmstay-server/internal/store"
)

// Handler holds the HTTP handlers for all API routes
type Handler struct {
	svc service.Service
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers all API routes on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
	}

	api.GET("/farmhouses", h.ListFarmhouses)
	api.GET("/farmhouses/:id", h.GetFarmhouse)
	api.GET("/stats", h.HomeStats)
	api.GET("/reviews", h.ListReviews)

	protected := api.Group("")
	protected.Use(AuthMiddleware())
	{
		protected.POST("/farmhouses", h.CreateFarmhouse)
		protected.PATCH("/farmhouses/:id", h.UpdateFarmhouse)
		protected.DELETE("/farmhouses/:id", h.DeleteFarmhouse)
		protected.GET("/bookings", h.ListBookings)
		protected.POST("/bookings", h.CreateBooking)
		protected.PATCH("/bookings/:id", h.UpdateBooking)
		protected.POST("/reviews", h.CreateReview)
		protected.GET("/dashboard", h.Dashboard)
	}
}

// Authentication handlers
func (h *Handler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.SignUp(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Status:  "error",
				Code:    "DUPLICATE_ACCOUNT",
				Message: err.Error(),
			})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  "error",
				Code:    "INVALID_CREDENTIALS",
				Message: err.Error(),
			})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "success"})
}

func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, models.SessionResponse{
		Status: "success",
		User:   h.svc.CurrentUser(),
	})
}

// Farmhouse handlers
func (h *Handler) ListFarmhouses(c *gin.Context) {
	farmhouses := h.svc.SearchFarmhouses(
		c.Query("q"),
		c.Query("price"),
		c.Query("guests"),
	)

	c.JSON(http.StatusOK, models.FarmhouseListResponse{
		Status:     "success",
		Farmhouses: farmhouses,
	})
}

func (h *Handler) GetFarmhouse(c *gin.Context) {
	farmhouse, ok := h.svc.GetFarmhouse(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:  "error",
			Code:    "NOT_FOUND",
			Message: "farmhouse not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.FarmhouseResponse{
		Status:    "success",
		Farmhouse: &farmhouse,
	})
}

func (h *Handler) HomeStats(c *gin.Context) {
	c.JSON(http.StatusOK, models.HomeStatsResponse{
		Status: "success",
		Stats:  h.svc.HomeStats(),
	})
}

func (h *Handler) CreateFarmhouse(c *gin.Context) {
	var req models.CreateFarmhouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	userID := c.GetString("userId")
	farmhouse, err := h.svc.CreateFarmhouse(c.Request.Context(), userID, req)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.FarmhouseResponse{
		Status:    "success",
		Farmhouse: farmhouse,
	})
}

func (h *Handler) UpdateFarmhouse(c *gin.Context) {
	var req models.UpdateFarmhouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Unknown ids are absorbed by the store, so this always succeeds
	if err := h.svc.UpdateFarmhouse(c.Request.Context(), c.Param("id"), req); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "success"})
}

func (h *Handler) DeleteFarmhouse(c *gin.Context) {
	if err := h.svc.DeleteFarmhouse(c.Request.Context(), c.Param("id")); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "success"})
}

// Booking handlers
func (h *Handler) ListBookings(c *gin.Context) {
	userID := c.GetString("userId")

	c.JSON(http.StatusOK, models.BookingListResponse{
		Status:   "success",
		Bookings: h.svc.CustomerBookings(userID),
	})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	userID := c.GetString("userId")
	booking, err := h.svc.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		Status:  "success",
		Booking: booking,
	})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.svc.UpdateBooking(c.Request.Context(), c.Param("id"), req); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "success"})
}

// Review handlers
func (h *Handler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReviewListResponse{
		Status:  "success",
		Reviews: h.svc.FarmhouseReviews(c.Query("farmhouseId")),
	})
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	userID := c.GetString("userId")
	review, err := h.svc.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ReviewResponse{
		Status: "success",
		Review: review,
	})
}

// Dashboard handler
func (h *Handler) Dashboard(c *gin.Context) {
	userID := c.GetString("userId")

	c.JSON(http.StatusOK, models.DashboardResponse{
		Status:    "success",
		Dashboard: h.svc.OwnerDashboard(userID),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "INVALID_REQUEST",
		Message: err.Error(),
	})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Status:  "error",
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}
