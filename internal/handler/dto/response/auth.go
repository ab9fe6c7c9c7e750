package response

import (
	"github.com/google/uuid"

	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.TokenPair.AccessToken,
		UserID:      r.UserID,
		Role:        r.Role.String(),
	}
}

type BusinessProfileResponse struct {
	BusinessName       string  `json:"business_name"`
	BusinessAddress    string  `json:"business_address"`
	City               string  `json:"city"`
	PAN                string  `json:"pan"`
	GSTIN              *string `json:"gstin,omitempty"`
	AadhaarMasked      *string `json:"aadhaar_masked,omitempty"`
	VerificationStatus string  `json:"verification_status"`
}

type UserResponse struct {
	ID          uuid.UUID                `json:"id"`
	Email       string                   `json:"email"`
	Role        string                   `json:"role"`
	DisplayName string                   `json:"display_name"`
	Phone       *string                  `json:"phone,omitempty"`
	HasDevice   bool                     `json:"has_device_token"`
	Business    *BusinessProfileResponse `json:"business,omitempty"`
	CreatedAt   int64                    `json:"created_at"`
}

// FromUserView never echoes the device token back.
func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{
		ID:          v.ID,
		Email:       v.Email,
		Role:        v.Role,
		DisplayName: v.DisplayName,
		Phone:       v.Phone,
		HasDevice:   v.DeviceToken != nil,
		CreatedAt:   v.CreatedAt.Unix(),
	}
	if b := v.Business; b != nil {
		res.Business = &BusinessProfileResponse{
			BusinessName:       b.BusinessName,
			BusinessAddress:    b.BusinessAddress,
			City:               b.City,
			PAN:                b.PAN,
			GSTIN:              b.GSTIN,
			AadhaarMasked:      b.AadhaarMasked,
			VerificationStatus: b.VerificationStatus,
		}
	}
	return res
}
