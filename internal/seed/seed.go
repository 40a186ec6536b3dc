// Package seed holds the fixed dataset the stores fall back to when the
// local storage has no persisted state yet.
package seed

import (
	"time"

	"github.com/farmstay/farmstay-server/internal/models"
)

var seededAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Users returns the static demo accounts: one customer and one owner.
func Users() []models.User {
	return []models.User{
		{
			ID:        "1",
			Email:     "john@example.com",
			Password:  "password123",
			Name:      "John Doe",
			Role:      models.RoleCustomer,
			Phone:     "+1234567890",
			CreatedAt: seededAt,
		},
		{
			ID:        "2",
			Email:     "owner@farmhouse.com",
			Password:  "owner123",
			Name:      "Sarah Wilson",
			Role:      models.RoleOwner,
			Phone:     "+1987654321",
			CreatedAt: seededAt,
		},
	}
}

// Farmhouses returns the ten demo listings, all owned by the seed owner.
func Farmhouses() []models.Farmhouse {
	return []models.Farmhouse{
		{
			ID:          "1",
			Name:        "Sunrise Valley Retreat",
			Description: "A charming farmhouse nestled in the rolling hills with breathtaking sunrise views. Perfect for family getaways and romantic escapes.",
			Location:    "Blue Ridge Mountains, Virginia",
			Price:       180,
			MaxGuests:   6,
			Bedrooms:    3,
			Bathrooms:   2,
			Images: []string{
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Fireplace", "Garden", "Parking", "BBQ"},
			Availability: true,
			Rating:       4.8,
			ReviewCount:  24,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "2",
			Name:        "Meadowbrook Farm Stay",
			Description: "Experience authentic farm life in this restored 19th-century farmhouse surrounded by peaceful meadows and working gardens.",
			Location:    "Lancaster County, Pennsylvania",
			Price:       220,
			MaxGuests:   8,
			Bedrooms:    4,
			Bathrooms:   3,
			Images: []string{
				"https://images.pexels.com/photos/2102587/pexels-photo-2102587.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Hot Tub", "Farm Animals", "Parking", "Laundry"},
			Availability: true,
			Rating:       4.9,
			ReviewCount:  31,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "3",
			Name:        "Whispering Pines Lodge",
			Description: "Rustic luxury meets modern comfort in this secluded pine forest retreat with stunning lake views and private dock access.",
			Location:    "Adirondack Park, New York",
			Price:       300,
			MaxGuests:   10,
			Bedrooms:    5,
			Bathrooms:   4,
			Images: []string{
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/2102587/pexels-photo-2102587.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Fireplace", "Lake Access", "Dock", "Kayaks", "Parking"},
			Availability: true,
			Rating:       4.7,
			ReviewCount:  18,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "4",
			Name:        "Golden Wheat Estate",
			Description: "A luxury farmhouse set among golden wheat fields with panoramic countryside views and elegant amenities.",
			Location:    "Sonoma County, California",
			Price:       350,
			MaxGuests:   12,
			Bedrooms:    6,
			Bathrooms:   5,
			Images: []string{
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Pool", "Wine Cellar", "Garden", "Parking", "Spa"},
			Availability: true,
			Rating:       4.9,
			ReviewCount:  42,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "5",
			Name:        "Countryside Haven",
			Description: "A cozy farmhouse retreat perfect for peaceful getaways, featuring traditional architecture and modern amenities.",
			Location:    "Hill Country, Texas",
			Price:       160,
			MaxGuests:   4,
			Bedrooms:    2,
			Bathrooms:   2,
			Images: []string{
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Fireplace", "Garden", "Parking", "Pet Friendly"},
			Availability: true,
			Rating:       4.6,
			ReviewCount:  29,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "6",
			Name:        "Harvest Moon Farm",
			Description: "Experience the magic of farm life under starlit skies in this beautifully restored farmhouse with organic gardens.",
			Location:    "Vermont Green Mountains",
			Price:       200,
			MaxGuests:   8,
			Bedrooms:    4,
			Bathrooms:   3,
			Images: []string{
				"https://images.pexels.com/photos/2102587/pexels-photo-2102587.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Organic Garden", "Farm Tours", "Parking", "Breakfast"},
			Availability: true,
			Rating:       4.8,
			ReviewCount:  36,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "7",
			Name:        "Riverside Ranch",
			Description: "A spacious ranch-style farmhouse situated along a gentle river, offering fishing, hiking, and ultimate relaxation.",
			Location:    "Montana Big Sky Country",
			Price:       280,
			MaxGuests:   10,
			Bedrooms:    5,
			Bathrooms:   4,
			Images: []string{
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "River Access", "Fishing", "Hiking Trails", "Parking", "BBQ"},
			Availability: true,
			Rating:       4.7,
			ReviewCount:  22,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "8",
			Name:        "Orchard View Cottage",
			Description: "A quaint cottage surrounded by fruit orchards, offering seasonal picking experiences and farm-to-table dining.",
			Location:    "Hood River Valley, Oregon",
			Price:       140,
			MaxGuests:   6,
			Bedrooms:    3,
			Bathrooms:   2,
			Images: []string{
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/2102587/pexels-photo-2102587.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Orchard Tours", "Fruit Picking", "Garden", "Parking"},
			Availability: true,
			Rating:       4.5,
			ReviewCount:  15,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "9",
			Name:        "Prairie Wind Estate",
			Description: "Experience the vast beauty of prairie landscapes in this modern farmhouse with sustainable features and luxury amenities.",
			Location:    "Kansas Prairie Lands",
			Price:       190,
			MaxGuests:   8,
			Bedrooms:    4,
			Bathrooms:   3,
			Images: []string{
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Solar Power", "Wind Turbine", "Garden", "Parking", "Star Gazing"},
			Availability: true,
			Rating:       4.6,
			ReviewCount:  19,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
		{
			ID:          "10",
			Name:        "Sunset Ridge Farmhouse",
			Description: "Watch spectacular sunsets from this elevated farmhouse with panoramic valley views and luxurious outdoor living spaces.",
			Location:    "Napa Valley, California",
			Price:       380,
			MaxGuests:   12,
			Bedrooms:    6,
			Bathrooms:   5,
			Images: []string{
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Facilities:   []string{"WiFi", "Kitchen", "Pool", "Hot Tub", "Vineyard Views", "Wine Tasting", "Parking", "Chef Service"},
			Availability: true,
			Rating:       4.9,
			ReviewCount:  56,
			OwnerID:      "2",
			CreatedAt:    seededAt,
		},
	}
}
