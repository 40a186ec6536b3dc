package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmstay/farmstay-server/internal/models"
	"github.com/farmstay/farmstay-server/internal/store"
)

// Service defines all the business logic operations
type Service interface {
	// Authentication
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User

	// Farmhouse operations
	SearchFarmhouses(query, priceBand, guestBand string) []models.Farmhouse
	HomeStats() models.HomeStats
	GetFarmhouse(id string) (models.Farmhouse, bool)
	CreateFarmhouse(ctx context.Context, ownerID string, req models.CreateFarmhouseRequest) (*models.Farmhouse, error)
	UpdateFarmhouse(ctx context.Context, id string, req models.UpdateFarmhouseRequest) error
	DeleteFarmhouse(ctx context.Context, id string) error

	// Booking operations
	CustomerBookings(customerID string) []models.BookingDetail
	CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req models.UpdateBookingRequest) error

	// Review operations
	FarmhouseReviews(farmhouseID string) []models.Review
	CreateReview(ctx context.Context, customerID string, req models.CreateReviewRequest) (*models.Review, error)

	// Owner dashboard
	OwnerDashboard(ownerID string) models.OwnerDashboard
}

// DefaultService implements the Service interface
type DefaultService struct {
	sessions      *store.SessionStore
	data          *store.DataStore
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(sessions *store.SessionStore, data *store.DataStore, jwtSecret string) Service {
	return &DefaultService{
		sessions:      sessions,
		data:          data,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour, // 24 hours token validity
	}
}

// Authentication methods
func (s *DefaultService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	user, err := s.sessions.Register(ctx, req.Email, req.Password, req.Name, models.Role(req.Role), req.Phone)
	if err != nil {
		return nil, err
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Status:    "success",
		User:      user,
		Token:     token,
		ExpiresIn: int(s.tokenDuration.Seconds()),
	}, nil
}

func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Status:    "success",
		User:      user,
		Token:     token,
		ExpiresIn: int(s.tokenDuration.Seconds()),
	}, nil
}

func (s *DefaultService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *DefaultService) CurrentUser() *models.User {
	return s.sessions.Current()
}

// Farmhouse operations
func (s *DefaultService) SearchFarmhouses(query, priceBand, guestBand string) []models.Farmhouse {
	all := s.data.Farmhouses()

	matched := make([]models.Farmhouse, 0, len(all))
	for _, f := range all {
		if !matchesQuery(f, query) {
			continue
		}
		if !matchesPriceBand(f.Price, priceBand) {
			continue
		}
		if !matchesGuestBand(f.MaxGuests, guestBand) {
			continue
		}
		matched = append(matched, f)
	}

	return matched
}

func (s *DefaultService) HomeStats() models.HomeStats {
	farmhouses := s.data.Farmhouses()

	totalReviews := 0
	for _, f := range farmhouses {
		totalReviews += f.ReviewCount
	}

	return models.HomeStats{
		FarmhouseCount: len(farmhouses),
		AverageRating:  averageRating(farmhouses),
		TotalReviews:   totalReviews,
	}
}

func (s *DefaultService) GetFarmhouse(id string) (models.Farmhouse, bool) {
	return s.data.GetFarmhouse(id)
}

func (s *DefaultService) CreateFarmhouse(ctx context.Context, ownerID string, req models.CreateFarmhouseRequest) (*models.Farmhouse, error) {
	// New listings start with the default rating and no reviews
	farmhouse, err := s.data.AddFarmhouse(ctx, models.NewFarmhouse{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Price:        req.Price,
		MaxGuests:    req.MaxGuests,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Images:       compactStrings(req.Images),
		Facilities:   compactStrings(req.Facilities),
		Availability: true,
		Rating:       4.5,
		ReviewCount:  0,
		OwnerID:      ownerID,
	})
	if err != nil {
		return nil, err
	}

	return &farmhouse, nil
}

func (s *DefaultService) UpdateFarmhouse(ctx context.Context, id string, req models.UpdateFarmhouseRequest) error {
	return s.data.UpdateFarmhouse(ctx, id, models.FarmhousePatch{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Price:        req.Price,
		MaxGuests:    req.MaxGuests,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Images:       req.Images,
		Facilities:   req.Facilities,
		Availability: req.Availability,
	})
}

func (s *DefaultService) DeleteFarmhouse(ctx context.Context, id string) error {
	return s.data.DeleteFarmhouse(ctx, id)
}

// Booking operations
func (s *DefaultService) CustomerBookings(customerID string) []models.BookingDetail {
	bookings := s.data.Bookings()

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		if b.CustomerID != customerID {
			continue
		}
		detail := models.BookingDetail{Booking: b}
		// The farmhouse may have been deleted since the booking was made
		if farmhouse, ok := s.data.GetFarmhouse(b.FarmhouseID); ok {
			detail.Farmhouse = &farmhouse
		}
		details = append(details, detail)
	}

	return details
}

func (s *DefaultService) CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	booking, err := s.data.AddBooking(ctx, models.NewBooking{
		FarmhouseID: req.FarmhouseID,
		CustomerID:  customerID,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		TotalPrice:  req.TotalPrice,
		Status:      models.BookingPending,
		Message:     req.Message,
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *DefaultService) UpdateBooking(ctx context.Context, id string, req models.UpdateBookingRequest) error {
	patch := models.BookingPatch{
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Message:    req.Message,
	}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		patch.Status = &status
	}

	return s.data.UpdateBooking(ctx, id, patch)
}

// Review operations
func (s *DefaultService) FarmhouseReviews(farmhouseID string) []models.Review {
	all := s.data.Reviews()

	matched := make([]models.Review, 0, len(all))
	for _, r := range all {
		if r.FarmhouseID == farmhouseID {
			matched = append(matched, r)
		}
	}

	return matched
}

func (s *DefaultService) CreateReview(ctx context.Context, customerID string, req models.CreateReviewRequest) (*models.Review, error) {
	review, err := s.data.AddReview(ctx, models.NewReview{
		FarmhouseID: req.FarmhouseID,
		CustomerID:  customerID,
		BookingID:   req.BookingID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// OwnerDashboard aggregates the owner's listings, the bookings made
// against them, total revenue and the average listing rating.
func (s *DefaultService) OwnerDashboard(ownerID string) models.OwnerDashboard {
	farmhouses := s.data.Farmhouses()
	bookings := s.data.Bookings()

	owned := make([]models.Farmhouse, 0, len(farmhouses))
	ownedIDs := make(map[string]bool)
	for _, f := range farmhouses {
		if f.OwnerID == ownerID {
			owned = append(owned, f)
			ownedIDs[f.ID] = true
		}
	}

	ownerBookings := make([]models.Booking, 0, len(bookings))
	totalRevenue := 0.0
	for _, b := range bookings {
		if ownedIDs[b.FarmhouseID] {
			ownerBookings = append(ownerBookings, b)
			totalRevenue += b.TotalPrice
		}
	}

	return models.OwnerDashboard{
		Farmhouses:    owned,
		Bookings:      ownerBookings,
		TotalRevenue:  totalRevenue,
		AverageRating: averageRating(owned),
	}
}

// Helper methods
func (s *DefaultService) generateJWT(user *models.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenDuration)

	claims := jwt.MapClaims{
		"sub": user.ID, // subject
		"exp": expirationTime.Unix(),
		"iat": time.Now().Unix(), // issued at
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// averageRating returns nil for an empty set so callers render "not
// available" instead of propagating NaN.
func averageRating(farmhouses []models.Farmhouse) *float64 {
	if len(farmhouses) == 0 {
		return nil
	}

	sum := 0.0
	for _, f := range farmhouses {
		sum += f.Rating
	}
	avg := sum / float64(len(farmhouses))
	return &avg
}

func matchesQuery(f models.Farmhouse, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(f.Name), q) ||
		strings.Contains(strings.ToLower(f.Location), q)
}

func matchesPriceBand(price int, band string) bool {
	switch band {
	case "budget":
		return price <= 200
	case "mid":
		return price > 200 && price <= 300
	case "luxury":
		return price > 300
	default:
		return true
	}
}

func matchesGuestBand(maxGuests int, band string) bool {
	switch band {
	case "small":
		return maxGuests <= 4
	case "medium":
		return maxGuests > 4 && maxGuests <= 8
	case "large":
		return maxGuests > 8
	default:
		return true
	}
}

func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
