package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/farmstay/farmstay-server/internal/models"
	"github.com/farmstay/farmstay-server/internal/repository"
)

const (
	farmhousesKey = "farmhouses"
	bookingsKey   = "bookings"
	reviewsKey    = "reviews"
)

// DataStore owns the farmhouse, booking and review collections. Each
// collection hydrates once at construction, either from storage or from
// the supplied seed, and every mutation rewrites the full collection
// under its storage key. A single mutex serializes all access so no
// reader can observe a half-written collection.
type DataStore struct {
	mu   sync.Mutex
	repo repository.Repository
	log  *logrus.Logger

	farmhouses []models.Farmhouse
	bookings   []models.Booking
	reviews    []models.Review
}

// NewDataStore builds the store and hydrates all three collections.
// Absent or malformed persisted values fall back to the seed.
func NewDataStore(ctx context.Context, repo repository.Repository, seedFarmhouses []models.Farmhouse, log *logrus.Logger) (*DataStore, error) {
	s := &DataStore{
		repo: repo,
		log:  log,
	}

	var err error
	if s.farmhouses, err = loadCollection(ctx, repo, log, farmhousesKey, seedFarmhouses); err != nil {
		return nil, err
	}
	if s.bookings, err = loadCollection(ctx, repo, log, bookingsKey, []models.Booking{}); err != nil {
		return nil, err
	}
	if s.reviews, err = loadCollection(ctx, repo, log, reviewsKey, []models.Review{}); err != nil {
		return nil, err
	}

	return s, nil
}

// loadCollection reads one persisted collection, falling back to the seed
// when the key is absent or its value does not deserialize.
func loadCollection[T any](ctx context.Context, repo repository.Repository, log *logrus.Logger, key string, fallback []T) ([]T, error) {
	raw, ok, err := repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", key, err)
	}

	if !ok {
		log.WithField("key", key).Info("no persisted state, using seed")
		return append([]T(nil), fallback...), nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.WithField("key", key).Warn("discarding malformed persisted state, using seed")
		return append([]T(nil), fallback...), nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func persistCollection[T any](ctx context.Context, repo repository.Repository, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("error serializing %s: %w", key, err)
	}
	if err := repo.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("error persisting %s: %w", key, err)
	}
	return nil
}

// Farmhouses returns a snapshot of the farmhouse collection.
func (s *DataStore) Farmhouses() []models.Farmhouse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Farmhouse, len(s.farmhouses))
	for i := range s.farmhouses {
		out[i] = cloneFarmhouse(s.farmhouses[i])
	}
	return out
}

// GetFarmhouse looks up one farmhouse by id. Callers must handle the
// missing case: bookings may reference listings that were deleted.
func (s *DataStore) GetFarmhouse(id string) (models.Farmhouse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.farmhouses {
		if s.farmhouses[i].ID == id {
			return cloneFarmhouse(s.farmhouses[i]), true
		}
	}
	return models.Farmhouse{}, false
}

// AddFarmhouse appends a new listing with a generated id and timestamp.
func (s *DataStore) AddFarmhouse(ctx context.Context, nf models.NewFarmhouse) (models.Farmhouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	farmhouse := models.Farmhouse{
		ID:           uuid.New().String(),
		Name:         nf.Name,
		Description:  nf.Description,
		Location:     nf.Location,
		Price:        nf.Price,
		MaxGuests:    nf.MaxGuests,
		Bedrooms:     nf.Bedrooms,
		Bathrooms:    nf.Bathrooms,
		Images:       append([]string(nil), nf.Images...),
		Facilities:   append([]string(nil), nf.Facilities...),
		Availability: nf.Availability,
		Rating:       nf.Rating,
		ReviewCount:  nf.ReviewCount,
		OwnerID:      nf.OwnerID,
		CreatedAt:    time.Now().UTC(),
	}

	s.farmhouses = append(s.farmhouses, farmhouse)
	if err := persistCollection(ctx, s.repo, farmhousesKey, s.farmhouses); err != nil {
		return models.Farmhouse{}, err
	}

	return cloneFarmhouse(farmhouse), nil
}

// UpdateFarmhouse merges the patch into the matching listing. An unknown
// id is a silent no-op.
func (s *DataStore) UpdateFarmhouse(ctx context.Context, id string, patch models.FarmhousePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.farmhouses {
		if s.farmhouses[i].ID != id {
			continue
		}
		f := &s.farmhouses[i]
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Description != nil {
			f.Description = *patch.Description
		}
		if patch.Location != nil {
			f.Location = *patch.Location
		}
		if patch.Price != nil {
			f.Price = *patch.Price
		}
		if patch.MaxGuests != nil {
			f.MaxGuests = *patch.MaxGuests
		}
		if patch.Bedrooms != nil {
			f.Bedrooms = *patch.Bedrooms
		}
		if patch.Bathrooms != nil {
			f.Bathrooms = *patch.Bathrooms
		}
		if patch.Images != nil {
			f.Images = append([]string(nil), patch.Images...)
		}
		if patch.Facilities != nil {
			f.Facilities = append([]string(nil), patch.Facilities...)
		}
		if patch.Availability != nil {
			f.Availability = *patch.Availability
		}
		if patch.Rating != nil {
			f.Rating = *patch.Rating
		}
		if patch.ReviewCount != nil {
			f.ReviewCount = *patch.ReviewCount
		}
		break
	}

	return persistCollection(ctx, s.repo, farmhousesKey, s.farmhouses)
}

// DeleteFarmhouse removes the listing if present. Bookings and reviews
// referencing it are kept; there is no cascade.
func (s *DataStore) DeleteFarmhouse(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.farmhouses[:0]
	for i := range s.farmhouses {
		if s.farmhouses[i].ID != id {
			kept = append(kept, s.farmhouses[i])
		}
	}
	s.farmhouses = kept

	return persistCollection(ctx, s.repo, farmhousesKey, s.farmhouses)
}

// Bookings returns a snapshot of the booking collection.
func (s *DataStore) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Booking(nil), s.bookings...)
}

// GetBooking looks up one booking by id.
func (s *DataStore) GetBooking(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return s.bookings[i], true
		}
	}
	return models.Booking{}, false
}

// AddBooking appends a new booking with a generated id and timestamp.
func (s *DataStore) AddBooking(ctx context.Context, nb models.NewBooking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.Booking{
		ID:          uuid.New().String(),
		FarmhouseID: nb.FarmhouseID,
		CustomerID:  nb.CustomerID,
		CheckIn:     nb.CheckIn,
		CheckOut:    nb.CheckOut,
		Guests:      nb.Guests,
		TotalPrice:  nb.TotalPrice,
		Status:      nb.Status,
		Message:     nb.Message,
		CreatedAt:   time.Now().UTC(),
	}

	s.bookings = append(s.bookings, booking)
	if err := persistCollection(ctx, s.repo, bookingsKey, s.bookings); err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

// UpdateBooking merges the patch into the matching booking. Any status
// value may be written; transitions are not validated. An unknown id is a
// silent no-op.
func (s *DataStore) UpdateBooking(ctx context.Context, id string, patch models.BookingPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		b := &s.bookings[i]
		if patch.CheckIn != nil {
			b.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			b.CheckOut = *patch.CheckOut
		}
		if patch.Guests != nil {
			b.Guests = *patch.Guests
		}
		if patch.TotalPrice != nil {
			b.TotalPrice = *patch.TotalPrice
		}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		if patch.Message != nil {
			b.Message = *patch.Message
		}
		break
	}

	return persistCollection(ctx, s.repo, bookingsKey, s.bookings)
}

// Reviews returns a snapshot of the review collection.
func (s *DataStore) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Review(nil), s.reviews...)
}

// AddReview appends a new review with a generated id and timestamp.
// Reviews are immutable once created.
func (s *DataStore) AddReview(ctx context.Context, nr models.NewReview) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := models.Review{
		ID:          uuid.New().String(),
		FarmhouseID: nr.FarmhouseID,
		CustomerID:  nr.CustomerID,
		BookingID:   nr.BookingID,
		Rating:      nr.Rating,
		Comment:     nr.Comment,
		CreatedAt:   time.Now().UTC(),
	}

	s.reviews = append(s.reviews, review)
	if err := persistCollection(ctx, s.repo, reviewsKey, s.reviews); err != nil {
		return models.Review{}, err
	}

	return review, nil
}

func cloneFarmhouse(f models.Farmhouse) models.Farmhouse {
	f.Images = append([]string(nil), f.Images...)
	f.Facilities = append([]string(nil), f.Facilities...)
	return f
}
