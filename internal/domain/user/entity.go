package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotMerchant = errors.New("only merchants have a business profile")

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	displayName  DisplayName
	phone        *Phone
	deviceToken  *string
	business     *BusinessProfile
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, displayName DisplayName, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		displayName:  displayName,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	displayName DisplayName,
	phone *Phone,
	deviceToken *string,
	business *BusinessProfile,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		displayName:  displayName,
		phone:        phone,
		deviceToken:  deviceToken,
		business:     business,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

type ContactUpdate struct {
	DisplayName *string
	Phone       *string
	DeviceToken *string
}

// UpdateContact applies only the provided fields. An empty phone or device
// token clears the stored value.
func (u *User) UpdateContact(in ContactUpdate, now time.Time) error {
	next := *u
	if in.DisplayName != nil {
		name, err := NewDisplayName(*in.DisplayName)
		if err != nil {
			return err
		}
		next.displayName = name
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			next.phone = nil
		} else {
			p, err := NewPhone(*in.Phone)
			if err != nil {
				return err
			}
			next.phone = &p
		}
	}
	if in.DeviceToken != nil {
		if *in.DeviceToken == "" {
			next.deviceToken = nil
		} else {
			token := *in.DeviceToken
			next.deviceToken = &token
		}
	}
	next.updatedAt = now
	*u = next
	return nil
}

func (u *User) SetBusinessProfile(p *BusinessProfile, now time.Time) error {
	if u.role != RoleMerchant {
		return ErrNotMerchant
	}
	u.business = p
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) DisplayName() DisplayName    { return u.displayName }
func (u *User) Phone() *Phone               { return u.phone }
func (u *User) DeviceToken() *string        { return u.deviceToken }
func (u *User) Business() *BusinessProfile  { return u.business }
func (u *User) LastLogin() *time.Time       { return u.lastLogin }
func (u *User) IsActive() bool              { return u.isActive }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
