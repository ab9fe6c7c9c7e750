package venue

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingMerchant = errors.New("venue must have an owning merchant")
	ErrAlreadyActive   = errors.New("venue is already active")
	ErrAlreadyInactive = errors.New("venue is already inactive")
)

// Details are the merchant-editable fields of a venue.
type Details struct {
	Name              string
	Category          string
	Location          Location
	PricePerHourMinor int64
	Images            []string
	Availability      WeeklySchedule
}

type Venue struct {
	id           uuid.UUID
	merchantID   uuid.UUID
	name         Name
	category     Category
	location     Location
	pricePerHour Money
	rating       *Rating
	images       Images
	availability WeeklySchedule
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVenue(merchantID uuid.UUID, d Details, now time.Time) (*Venue, error) {
	if merchantID == uuid.Nil {
		return nil, ErrMissingMerchant
	}

	v := &Venue{
		id:         uuid.New(),
		merchantID: merchantID,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}
	if err := v.apply(d); err != nil {
		return nil, err
	}
	return v, nil
}

func ReconstructVenue(
	id, merchantID uuid.UUID,
	name Name,
	category Category,
	location Location,
	pricePerHour Money,
	rating *Rating,
	images Images,
	availability WeeklySchedule,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Venue {
	return &Venue{
		id:           id,
		merchantID:   merchantID,
		name:         name,
		category:     category,
		location:     location,
		pricePerHour: pricePerHour,
		rating:       rating,
		images:       images,
		availability: availability,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Revise replaces the editable fields; on error the venue is left unchanged.
func (v *Venue) Revise(d Details, now time.Time) error {
	next := *v
	if err := next.apply(d); err != nil {
		return err
	}
	next.updatedAt = now
	*v = next
	return nil
}

func (v *Venue) apply(d Details) error {
	name, err := NewName(d.Name)
	if err != nil {
		return err
	}
	category, err := NewCategory(d.Category)
	if err != nil {
		return err
	}
	if d.Location.IsZero() {
		return ErrEmptyLocation
	}
	price, err := NewMoney(d.PricePerHourMinor)
	if err != nil {
		return err
	}
	images, err := NewImages(d.Images)
	if err != nil {
		return err
	}

	v.name = name
	v.category = category
	v.location = d.Location
	v.pricePerHour = price
	v.images = images
	v.availability = d.Availability
	return nil
}

func (v *Venue) Activate(now time.Time) error {
	if v.isActive {
		return ErrAlreadyActive
	}
	v.isActive = true
	v.updatedAt = now
	return nil
}

func (v *Venue) Deactivate(now time.Time) error {
	if !v.isActive {
		return ErrAlreadyInactive
	}
	v.isActive = false
	v.updatedAt = now
	return nil
}

func (v *Venue) Rate(r Rating, now time.Time) {
	v.rating = &r
	v.updatedAt = now
}

func (v *Venue) IsOwnedBy(merchantID uuid.UUID) bool {
	return v.merchantID == merchantID
}

func (v *Venue) Details() Details {
	return Details{
		Name:              v.name.String(),
		Category:          v.category.String(),
		Location:          v.location,
		PricePerHourMinor: v.pricePerHour.Minor(),
		Images:            v.images.URIs(),
		Availability:      v.availability,
	}
}

func (v *Venue) ID() uuid.UUID                  { return v.id }
func (v *Venue) MerchantID() uuid.UUID          { return v.merchantID }
func (v *Venue) Name() Name                     { return v.name }
func (v *Venue) Category() Category             { return v.category }
func (v *Venue) Location() Location             { return v.location }
func (v *Venue) PricePerHour() Money            { return v.pricePerHour }
func (v *Venue) Rating() *Rating                { return v.rating }
func (v *Venue) Images() Images                 { return v.images }
func (v *Venue) Availability() WeeklySchedule   { return v.availability }
func (v *Venue) IsActive() bool                 { return v.isActive }
func (v *Venue) CreatedAt() time.Time           { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time           { return v.updatedAt }
