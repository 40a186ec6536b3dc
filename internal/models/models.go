package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Role identifies what a user can do on the platform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// BookingStatus is the lifecycle state of a booking. Transitions are not
// validated by the store; any status may be written through an update.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// User represents an account in the registry. Passwords are stored in
// plaintext and matched exactly; this is a demo application with no real
// authentication.
type User struct {
	ID        string    `json:"id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Role      Role      `json:"role" validate:"required,oneof=customer owner"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the user record shape, in particular that the role is
// exactly customer or owner.
func (u *User) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// Farmhouse is a rentable listing owned by one owner-role user.
type Farmhouse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Price        int       `json:"price"` // per night
	MaxGuests    int       `json:"maxGuests"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Images       []string  `json:"images"`
	Facilities   []string  `json:"facilities"`
	Availability bool      `json:"availability"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Booking is a reservation of a farmhouse by a customer for a date range.
// CheckIn and CheckOut are calendar dates in 2006-01-02 form.
type Booking struct {
	ID          string        `json:"id"`
	FarmhouseID string        `json:"farmhouseId"`
	CustomerID  string        `json:"customerId"`
	CheckIn     string        `json:"checkIn"`
	CheckOut    string        `json:"checkOut"`
	Guests      int           `json:"guests"`
	TotalPrice  float64       `json:"totalPrice"`
	Status      BookingStatus `json:"status"`
	Message     string        `json:"message,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Review is a rating and comment a customer leaves against a booking.
// Reviews are never updated or deleted.
type Review struct {
	ID          string    `json:"id"`
	FarmhouseID string    `json:"farmhouseId"`
	CustomerID  string    `json:"customerId"`
	BookingID   string    `json:"bookingId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewFarmhouse carries the caller-supplied fields of a farmhouse; the
// store fills in the id and creation timestamp.
type NewFarmhouse struct {
	Name         string
	Description  string
	Location     string
	Price        int
	MaxGuests    int
	Bedrooms     int
	Bathrooms    int
	Images       []string
	Facilities   []string
	Availability bool
	Rating       float64
	ReviewCount  int
	OwnerID      string
}

// NewBooking carries the caller-supplied fields of a booking.
type NewBooking struct {
	FarmhouseID string
	CustomerID  string
	CheckIn     string
	CheckOut    string
	Guests      int
	TotalPrice  float64
	Status      BookingStatus
	Message     string
}

// NewReview carries the caller-supplied fields of a review.
type NewReview struct {
	FarmhouseID string
	CustomerID  string
	BookingID   string
	Rating      int
	Comment     string
}

// FarmhousePatch is a partial update to a farmhouse. Nil fields are left
// unchanged; non-nil fields overwrite the existing value.
type FarmhousePatch struct {
	Name         *string
	Description  *string
	Location     *string
	Price        *int
	MaxGuests    *int
	Bedrooms     *int
	Bathrooms    *int
	Images       []string
	Facilities   []string
	Availability *bool
	Rating       *float64
	ReviewCount  *int
}

// BookingPatch is a partial update to a booking. Status accepts any
// BookingStatus value; the transition graph is deliberately not enforced.
type BookingPatch struct {
	CheckIn    *string
	CheckOut   *string
	Guests     *int
	TotalPrice *float64
	Status     *BookingStatus
	Message    *string
}
