package queries

//go:generate go run go.uber.org/mock/mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock groundio/internal/usecase/queries UserQueries,VenueQueries,BookingQueries,ReviewQueries

import (
	"time"

	"github.com/google/uuid"
)

type LocationView struct {
	Kind    string `json:"kind"`
	Text    string `json:"text,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

type DayScheduleView struct {
	Open  bool     `json:"open"`
	Slots []string `json:"slots"`
}

// VenueView represents read-optimized venue data; it is also the cached shape.
type VenueView struct {
	ID              uuid.UUID                  `json:"id"`
	MerchantID      uuid.UUID                  `json:"merchant_id"`
	Name            string                     `json:"name"`
	Category        string                     `json:"category"`
	Location        LocationView               `json:"location"`
	LocationDisplay string                     `json:"location_display"`
	PricePerHour    int64                      `json:"price_per_hour"`
	Rating          *float64                   `json:"rating,omitempty"`
	DisplayRating   float64                    `json:"display_rating"`
	Images          []string                   `json:"images"`
	IsActive        bool                       `json:"is_active"`
	// Catalog marks static fallback entries; they have no slots and cannot be booked.
	Catalog         bool                       `json:"catalog,omitempty"`
	Availability    map[string]DayScheduleView `json:"availability,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

func (v *VenueView) PrimaryImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0]
}

// BookingView represents read-optimized booking data with its denormalized venue and customer.
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	VenueID         *uuid.UUID `json:"venue_id,omitempty"`
	VenueMerchantID uuid.UUID  `json:"venue_merchant_id"`
	VenueName       string     `json:"venue_name"`
	VenueLocation   string     `json:"venue_location"`
	VenueImage      string     `json:"venue_image"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	Date            string     `json:"date"`
	TimeSlot        string     `json:"time_slot"`
	Price           int64      `json:"price"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type SlotView struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type AvailabilityView struct {
	VenueID   uuid.UUID  `json:"venue_id"`
	Date      string     `json:"date"`
	Policy    string     `json:"policy"`
	Available []string   `json:"available"`
	Slots     []SlotView `json:"slots"`
}

type BusinessProfileView struct {
	BusinessName       string  `json:"business_name"`
	BusinessAddress    string  `json:"business_address"`
	City               string  `json:"city"`
	PAN                string  `json:"pan"`
	GSTIN              *string `json:"gstin,omitempty"`
	AadhaarMasked      *string `json:"aadhaar_masked,omitempty"`
	VerificationStatus string  `json:"verification_status"`
}

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID          uuid.UUID            `json:"id"`
	Email       string               `json:"email"`
	Role        string               `json:"role"`
	DisplayName string               `json:"display_name"`
	Phone       *string              `json:"phone,omitempty"`
	DeviceToken *string              `json:"device_token,omitempty"`
	IsActive    bool                 `json:"is_active"`
	LastLogin   *time.Time           `json:"last_login,omitempty"`
	Business    *BusinessProfileView `json:"business,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	VenueID   uuid.UUID `json:"venue_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
