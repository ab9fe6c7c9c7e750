package converter

import (
	"groundio/internal/domain/user"
	"groundio/internal/infra/query"
	"groundio/internal/pkg/pgconv"
)

func UserToRow(u *user.User) query.UserRow {
	var phone *string
	if p := u.Phone(); p != nil {
		s := p.String()
		phone = &s
	}
	return query.UserRow{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		DisplayName:  u.DisplayName().String(),
		Phone:        pgconv.StringPtrToPgtype(phone),
		DeviceToken:  pgconv.StringPtrToPgtype(u.DeviceToken()),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserFromRow(r query.UserRow) (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	name, err := user.NewDisplayName(r.DisplayName)
	if err != nil {
		return nil, err
	}

	var phone *user.Phone
	if s := pgconv.StringPtrFromPgtype(r.Phone); s != nil {
		p, err := user.NewPhone(*s)
		if err != nil {
			return nil, err
		}
		phone = &p
	}

	business, err := businessFromRow(r)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		r.ID, email, r.PasswordHash, role, name, phone,
		pgconv.StringPtrFromPgtype(r.DeviceToken), business,
		pgconv.TimePtrFromPgtype(r.LastLogin), r.IsActive, r.CreatedAt, r.UpdatedAt,
	), nil
}

func businessFromRow(r query.UserRow) (*user.BusinessProfile, error) {
	if !r.PAN.Valid {
		return nil, nil
	}
	pan, err := user.NewPAN(r.PAN.String)
	if err != nil {
		return nil, err
	}

	var gstin *user.GSTIN
	if r.GSTIN.Valid {
		g, err := user.NewGSTIN(r.GSTIN.String)
		if err != nil {
			return nil, err
		}
		gstin = &g
	}

	var aadhaar *user.Aadhaar
	if r.Aadhaar.Valid {
		a, err := user.NewAadhaar(r.Aadhaar.String)
		if err != nil {
			return nil, err
		}
		aadhaar = &a
	}

	return user.ReconstructBusinessProfile(
		r.BusinessName.String, r.BusinessAddress.String, r.City.String,
		pan, gstin, aadhaar, user.VerificationStatus(r.VerificationStatus.String),
	), nil
}

func MerchantProfileParams(u *user.User) query.UpsertMerchantProfileParams {
	p := u.Business()
	var gstin, aadhaar *string
	if g := p.GSTIN(); g != nil {
		s := string(*g)
		gstin = &s
	}
	if a := p.Aadhaar(); a != nil {
		s := string(*a)
		aadhaar = &s
	}
	return query.UpsertMerchantProfileParams{
		UserID:             u.ID(),
		BusinessName:       p.BusinessName(),
		BusinessAddress:    p.BusinessAddress(),
		City:               p.City(),
		PAN:                string(p.PAN()),
		GSTIN:              pgconv.StringPtrToPgtype(gstin),
		Aadhaar:            pgconv.StringPtrToPgtype(aadhaar),
		VerificationStatus: string(p.Verification()),
		At:                 u.UpdatedAt(),
	}
}
