package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPAN          = errors.New("invalid PAN format")
	ErrInvalidGSTIN        = errors.New("invalid GSTIN format")
	ErrInvalidAadhaar      = errors.New("invalid Aadhaar format")
	ErrInvalidBusinessName = errors.New("business name cannot be empty")
	ErrGSTINPANMismatch    = errors.New("GSTIN does not embed the given PAN")
)

// Government ID formats are checked by pattern only, never against an authority.
var (
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinRegex   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	aadhaarRegex = regexp.MustCompile(`^[2-9][0-9]{11}$`)
)

type PAN string

func NewPAN(s string) (PAN, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !panRegex.MatchString(s) {
		return "", ErrInvalidPAN
	}
	return PAN(s), nil
}

type GSTIN string

func NewGSTIN(s string) (GSTIN, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !gstinRegex.MatchString(s) {
		return "", ErrInvalidGSTIN
	}
	return GSTIN(s), nil
}

// PAN returns characters 3-12, which carry the holder's PAN.
func (g GSTIN) PAN() PAN {
	return PAN(g[2:12])
}

type Aadhaar string

func NewAadhaar(s string) (Aadhaar, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !aadhaarRegex.MatchString(s) {
		return "", ErrInvalidAadhaar
	}
	return Aadhaar(s), nil
}

// Masked hides all but the last four digits.
func (a Aadhaar) Masked() string {
	if len(a) < 4 {
		return ""
	}
	return "XXXX-XXXX-" + string(a[len(a)-4:])
}

type BusinessInput struct {
	BusinessName    string
	BusinessAddress string
	City            string
	PAN             string
	GSTIN           string
	Aadhaar         string
}

type BusinessProfile struct {
	businessName    string
	businessAddress string
	city            string
	pan             PAN
	gstin           *GSTIN
	aadhaar         *Aadhaar
	verification    VerificationStatus
}

// NewBusinessProfile validates the merchant fields. GSTIN and Aadhaar are optional.
// A profile carrying identifiers is submitted for verification as pending.
func NewBusinessProfile(in BusinessInput) (*BusinessProfile, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, ErrInvalidBusinessName
	}
	pan, err := NewPAN(in.PAN)
	if err != nil {
		return nil, err
	}

	p := &BusinessProfile{
		businessName:    name,
		businessAddress: strings.TrimSpace(in.BusinessAddress),
		city:            strings.TrimSpace(in.City),
		pan:             pan,
		verification:    VerificationPending,
	}

	if strings.TrimSpace(in.GSTIN) != "" {
		g, err := NewGSTIN(in.GSTIN)
		if err != nil {
			return nil, err
		}
		if g.PAN() != pan {
			return nil, ErrGSTINPANMismatch
		}
		p.gstin = &g
	}
	if strings.TrimSpace(in.Aadhaar) != "" {
		a, err := NewAadhaar(in.Aadhaar)
		if err != nil {
			return nil, err
		}
		p.aadhaar = &a
	}
	return p, nil
}

func ReconstructBusinessProfile(name, address, city string, pan PAN, gstin *GSTIN, aadhaar *Aadhaar, verification VerificationStatus) *BusinessProfile {
	return &BusinessProfile{
		businessName:    name,
		businessAddress: address,
		city:            city,
		pan:             pan,
		gstin:           gstin,
		aadhaar:         aadhaar,
		verification:    verification,
	}
}

func (p *BusinessProfile) BusinessName() string             { return p.businessName }
func (p *BusinessProfile) BusinessAddress() string          { return p.businessAddress }
func (p *BusinessProfile) City() string                     { return p.city }
func (p *BusinessProfile) PAN() PAN                         { return p.pan }
func (p *BusinessProfile) GSTIN() *GSTIN                    { return p.gstin }
func (p *BusinessProfile) Aadhaar() *Aadhaar                { return p.aadhaar }
func (p *BusinessProfile) Verification() VerificationStatus { return p.verification }
