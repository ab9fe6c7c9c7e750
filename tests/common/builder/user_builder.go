//go:build unit || e2e

package builder

import (
	"time"

	"groundio/internal/domain/user"
	"groundio/internal/infra/query"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
	Phone        *string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "player@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleCustomer),
		DisplayName:  "Asha Rao",
		IsActive:     true,
		CreatedAt:    time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	name, err := user.NewDisplayName(u.DisplayName)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, name, u.CreatedAt), nil
}

func (u *UserBuilder) BuildInfra() query.UserRow {
	var phone pgtype.Text
	if u.Phone != nil {
		phone = pgtype.Text{String: *u.Phone, Valid: true}
	}

	return query.UserRow{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		DisplayName:  u.DisplayName,
		Phone:        phone,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.CreatedAt,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) AsMerchant() *UserBuilder {
	u.Role = string(user.RoleMerchant)
	u.Email = "owner@example.com"
	u.DisplayName = "Turf Owner"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
