package request

import (
	"groundio/internal/domain/user"
	"groundio/internal/usecase/commands"
)

// Empty strings clear phone and device token; omitted fields stay unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=80"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	DeviceToken *string `json:"device_token" binding:"omitempty,max=512"`
}

func (r *UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{
		DisplayName: r.DisplayName,
		Phone:       r.Phone,
		DeviceToken: r.DeviceToken,
	}
}

type MerchantProfileRequest struct {
	BusinessName    string `json:"business_name" binding:"required,max=160"`
	BusinessAddress string `json:"business_address" binding:"max=300"`
	City            string `json:"city" binding:"max=100"`
	PAN             string `json:"pan" binding:"required"`
	GSTIN           string `json:"gstin"`
	Aadhaar         string `json:"aadhaar"`
}

func (r *MerchantProfileRequest) ToInput() user.BusinessInput {
	return user.BusinessInput{
		BusinessName:    r.BusinessName,
		BusinessAddress: r.BusinessAddress,
		City:            r.City,
		PAN:             r.PAN,
		GSTIN:           r.GSTIN,
		Aadhaar:         r.Aadhaar,
	}
}
