package models

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserSummary is the only user shape that leaves the API.
type UserSummary struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// Claims is the verified payload of an access token.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type News struct {
	ID            int64      `json:"id" db:"id"`
	TitleEN       string     `json:"title_en" db:"title_en"`
	TitleSH       string     `json:"title_sh" db:"title_sh"`
	ContentEN     string     `json:"content_en" db:"content_en"`
	ContentSH     string     `json:"content_sh" db:"content_sh"`
	ExcerptEN     string     `json:"excerpt_en" db:"excerpt_en"`
	ExcerptSH     string     `json:"excerpt_sh" db:"excerpt_sh"`
	FeaturedImage string     `json:"featured_image" db:"featured_image"`
	Category      string     `json:"category" db:"category"`
	Status        NewsStatus `json:"status" db:"status"`
	AuthorID      *int64     `json:"author_id" db:"author_id"`
	PublishedAt   *time.Time `json:"published_at" db:"published_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// NewsSummary is the public listing projection of an article.
type NewsSummary struct {
	ID            int64      `json:"id" db:"id"`
	TitleEN       string     `json:"title_en" db:"title_en"`
	TitleSH       string     `json:"title_sh" db:"title_sh"`
	ExcerptEN     string     `json:"excerpt_en" db:"excerpt_en"`
	ExcerptSH     string     `json:"excerpt_sh" db:"excerpt_sh"`
	FeaturedImage string     `json:"featured_image" db:"featured_image"`
	Category      string     `json:"category" db:"category"`
	PublishedAt   *time.Time `json:"published_at" db:"published_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

type Program struct {
	ID            int64         `json:"id" db:"id"`
	TitleEN       string        `json:"title_en" db:"title_en"`
	TitleSH       string        `json:"title_sh" db:"title_sh"`
	DescriptionEN string        `json:"description_en" db:"description_en"`
	DescriptionSH string        `json:"description_sh" db:"description_sh"`
	Image         string        `json:"image" db:"image"`
	Status        ProgramStatus `json:"status" db:"status"`
	OrderIndex    int           `json:"order_index" db:"order_index"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

type Donation struct {
	ID            int64         `json:"id" db:"id"`
	DonorName     string        `json:"donor_name" db:"donor_name"`
	DonorEmail    string        `json:"donor_email" db:"donor_email"`
	Amount        float64       `json:"amount" db:"amount"`
	Currency      string        `json:"currency" db:"currency"`
	PaymentMethod string        `json:"payment_method" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentID     string        `json:"payment_id" db:"payment_id"`
	Message       string        `json:"message" db:"message"`
	IsAnonymous   bool          `json:"is_anonymous" db:"is_anonymous"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// DonationReceipt is what a donor gets back after submitting.
type DonationReceipt struct {
	ID            int64         `json:"id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentID     string        `json:"payment_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (d *Donation) Receipt() DonationReceipt {
	return DonationReceipt{
		ID:            d.ID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		PaymentID:     d.PaymentID,
		PaymentStatus: d.PaymentStatus,
		CreatedAt:     d.CreatedAt,
	}
}

type Volunteer struct {
	ID           int64           `json:"id" db:"id"`
	FullName     string          `json:"full_name" db:"full_name"`
	Email        string          `json:"email" db:"email"`
	Phone        string          `json:"phone" db:"phone"`
	Skills       string          `json:"skills" db:"skills"`
	Availability string          `json:"availability" db:"availability"`
	Interests    string          `json:"interests" db:"interests"`
	Message      string          `json:"message" db:"message"`
	Status       VolunteerStatus `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// VolunteerReceipt is what an applicant gets back after submitting.
type VolunteerReceipt struct {
	ID        int64           `json:"id"`
	FullName  string          `json:"full_name"`
	Email     string          `json:"email"`
	Status    VolunteerStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func (v *Volunteer) Receipt() VolunteerReceipt {
	return VolunteerReceipt{
		ID:        v.ID,
		FullName:  v.FullName,
		Email:     v.Email,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
	}
}

type ContactMessage struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Subject   string        `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

type SiteSetting struct {
	ID        int64     `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	ValueEN   string    `json:"value_en" db:"value_en"`
	ValueSH   string    `json:"value_sh" db:"value_sh"`
	Type      string    `json:"type" db:"type"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SettingValue is the public, keyed representation of a site setting.
type SettingValue struct {
	EN   string `json:"en" yaml:"en"`
	SH   string `json:"sh" yaml:"sh"`
	Type string `json:"type" yaml:"type"`
}
