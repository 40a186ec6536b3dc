package models

// Request models
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=customer owner"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateFarmhouseRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Price       int      `json:"price" binding:"required,min=1"`
	MaxGuests   int      `json:"maxGuests" binding:"required,min=1"`
	Bedrooms    int      `json:"bedrooms" binding:"required,min=1"`
	Bathrooms   int      `json:"bathrooms" binding:"required,min=1"`
	Images      []string `json:"images"`
	Facilities  []string `json:"facilities"`
}

// UpdateFarmhouseRequest is a partial update; absent fields are unchanged.
type UpdateFarmhouseRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	Price        *int     `json:"price"`
	MaxGuests    *int     `json:"maxGuests"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Images       []string `json:"images"`
	Facilities   []string `json:"facilities"`
	Availability *bool    `json:"availability"`
}

type CreateBookingRequest struct {
	FarmhouseID string  `json:"farmhouseId" binding:"required"`
	CheckIn     string  `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut    string  `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Guests      int     `json:"guests" binding:"required,min=1"`
	TotalPrice  float64 `json:"totalPrice" binding:"required,min=0"`
	Message     string  `json:"message"`
}

type UpdateBookingRequest struct {
	CheckIn    *string  `json:"checkIn" binding:"omitempty,datetime=2006-01-02"`
	CheckOut   *string  `json:"checkOut" binding:"omitempty,datetime=2006-01-02"`
	Guests     *int     `json:"guests" binding:"omitempty,min=1"`
	TotalPrice *float64 `json:"totalPrice"`
	Status     *string  `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Message    *string  `json:"message"`
}

type CreateReviewRequest struct {
	FarmhouseID string `json:"farmhouseId" binding:"required"`
	BookingID   string `json:"bookingId" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

// Response models
type AuthResponse struct {
	Status    string `json:"status"`
	User      *User  `json:"user,omitempty"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expiresIn,omitempty"`
}

type SessionResponse struct {
	Status string `json:"status"`
	User   *User  `json:"user"`
}

type FarmhouseListResponse struct {
	Status     string      `json:"status"`
	Farmhouses []Farmhouse `json:"farmhouses"`
}

type FarmhouseResponse struct {
	Status    string     `json:"status"`
	Farmhouse *Farmhouse `json:"farmhouse,omitempty"`
}

// HomeStats summarises the whole catalogue for the landing view.
// AverageRating is absent when there are no farmhouses.
type HomeStats struct {
	FarmhouseCount int      `json:"farmhouseCount"`
	AverageRating  *float64 `json:"averageRating,omitempty"`
	TotalReviews   int      `json:"totalReviews"`
}

type HomeStatsResponse struct {
	Status string    `json:"status"`
	Stats  HomeStats `json:"stats"`
}

type BookingResponse struct {
	Status  string   `json:"status"`
	Booking *Booking `json:"booking,omitempty"`
}

// BookingDetail joins a booking with its farmhouse. Farmhouse is nil when
// the listing has since been deleted; the booking itself is kept.
type BookingDetail struct {
	Booking   Booking    `json:"booking"`
	Farmhouse *Farmhouse `json:"farmhouse,omitempty"`
}

type BookingListResponse struct {
	Status   string          `json:"status"`
	Bookings []BookingDetail `json:"bookings"`
}

type ReviewResponse struct {
	Status string  `json:"status"`
	Review *Review `json:"review,omitempty"`
}

type ReviewListResponse struct {
	Status  string   `json:"status"`
	Reviews []Review `json:"reviews"`
}

// OwnerDashboard aggregates an owner's listings and the bookings made
// against them. AverageRating is absent when the owner has no listings.
type OwnerDashboard struct {
	Farmhouses    []Farmhouse `json:"farmhouses"`
	Bookings      []Booking   `json:"bookings"`
	TotalRevenue  float64     `json:"totalRevenue"`
	AverageRating *float64    `json:"averageRating,omitempty"`
}

type DashboardResponse struct {
	Status    string         `json:"status"`
	Dashboard OwnerDashboard `json:"dashboard"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
