package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Write payloads shared by the handler and service layers. The validate tags are the
// boundary checks; services re-check enumerations before touching the store.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin"`
}

type ProfilePatch struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

func (p ProfilePatch) Empty() bool {
	return p.Email == "" && p.Password == ""
}

type NewsInput struct {
	TitleEN       string `json:"title_en" validate:"required"`
	TitleSH       string `json:"title_sh"`
	ContentEN     string `json:"content_en" validate:"required"`
	ContentSH     string `json:"content_sh"`
	ExcerptEN     string `json:"excerpt_en"`
	ExcerptSH     string `json:"excerpt_sh"`
	FeaturedImage string `json:"featured_image"`
	Category      string `json:"category" validate:"max=64"`
	Status        string `json:"status" validate:"omitempty,oneof=draft published"`
}

type ProgramInput struct {
	TitleEN       string `json:"title_en" validate:"required"`
	TitleSH       string `json:"title_sh"`
	DescriptionEN string `json:"description_en" validate:"required"`
	DescriptionSH string `json:"description_sh"`
	Image         string `json:"image"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
	OrderIndex    *int   `json:"order_index" validate:"omitempty,min=0"`
}

// MaxDonationAmount is the largest value the amount column (NUMERIC(10,2)) holds.
const MaxDonationAmount = 99999999.99

// WholeCents reports whether v has at most two decimal places.
func WholeCents(v float64) bool {
	_, frac, ok := strings.Cut(strconv.FormatFloat(v, 'f', -1, 64), ".")
	return !ok || len(frac) <= 2
}

type DonationInput struct {
	DonorName     string  `json:"donor_name" validate:"required"`
	DonorEmail    string  `json:"donor_email" validate:"omitempty,email"`
	Amount        float64 `json:"amount" validate:"gt=0,lte=99999999.99,cents"`
	Currency      string  `json:"currency" validate:"omitempty,iso4217"`
	PaymentMethod string  `json:"payment_method" validate:"max=64"`
	Message       string  `json:"message"`
	IsAnonymous   bool    `json:"is_anonymous"`
}

type VolunteerInput struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
	Interests    string `json:"interests"`
	Message      string `json:"message"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type DonationStatusUpdate struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed refunded"`
}

type VolunteerStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected active inactive"`
}

type ContactStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=unread read replied archived"`
}

// FieldError is one entry of a 400 validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SettingPatch is one entry of a settings update. It decodes from a bare string,
// which sets the English value, or from {"en", "sh"?, "type"?}.
type SettingPatch struct {
	EN   string
	SH   *string
	Type *string
}

var ErrInvalidSetting = errors.New("setting must be a string or an object with an en value")

func (p *SettingPatch) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrInvalidSetting
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*p = SettingPatch{EN: text}
		return nil
	}

	var obj struct {
		EN   *string `json:"en"`
		SH   *string `json:"sh"`
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.EN == nil {
		return ErrInvalidSetting
	}

	*p = SettingPatch{EN: *obj.EN, SH: obj.SH, Type: obj.Type}
	return nil
}

type SettingsUpdate struct {
	Settings map[string]SettingPatch `json:"settings"`
}
