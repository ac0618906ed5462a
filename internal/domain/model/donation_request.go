package model

import (
	"errors"
	"strings"
	"time"
)

// DonationRequestStatus tracks a request through its lifecycle.
type DonationRequestStatus string

const (
	DonationStatusPending    DonationRequestStatus = "pending"
	DonationStatusInProgress DonationRequestStatus = "inprogress"
	DonationStatusDone       DonationRequestStatus = "done"
	DonationStatusCanceled   DonationRequestStatus = "canceled"
)

// Valid reports whether the status is a supported value.
func (s DonationRequestStatus) Valid() bool {
	switch s {
	case DonationStatusPending, DonationStatusInProgress, DonationStatusDone, DonationStatusCanceled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next.
// Done and canceled are terminal.
func (s DonationRequestStatus) CanTransitionTo(next DonationRequestStatus) bool {
	if !next.Valid() || s == next {
		return false
	}
	switch s {
	case DonationStatusPending:
		return true
	case DonationStatusInProgress:
		return next == DonationStatusDone || next == DonationStatusCanceled
	default:
		return false
	}
}

// ParseDonationRequestStatus normalizes a status string and reports whether
// it is supported.
func ParseDonationRequestStatus(value string) (DonationRequestStatus, bool) {
	s := DonationRequestStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// DonationRequest represents a blood-donation request created by a user.
type DonationRequest struct {
	ID             string                `json:"id"              db:"id"`
	RequesterEmail string                `json:"requester_email" db:"requester_email"`
	RequesterName  string                `json:"requester_name"  db:"requester_name"`
	RecipientName  string                `json:"recipient_name"  db:"recipient_name"`
	BloodGroup     string                `json:"blood_group"     db:"blood_group"`
	District       string                `json:"district"        db:"district"`
	Upazila        string                `json:"upazila"         db:"upazila"`
	Hospital       string                `json:"hospital"        db:"hospital"`
	Address        string                `json:"address"         db:"address"`
	Date           string                `json:"date"            db:"date"`
	Time           string                `json:"time"            db:"time"`
	Message        string                `json:"message"         db:"message"`
	Status         DonationRequestStatus `json:"status"          db:"status"`
	CreatedAt      time.Time             `json:"created_at"      db:"created_at"`
}

// CreateDonationRequestRequest represents parameters to create a DonationRequest.
// The requester email is taken from the authenticated principal, not the body.
type CreateDonationRequestRequest struct {
	RequesterName string `json:"requester_name"`
	RecipientName string `json:"recipient_name"`
	BloodGroup    string `json:"blood_group"`
	District      string `json:"district"`
	Upazila       string `json:"upazila,omitempty"`
	Hospital      string `json:"hospital"`
	Address       string `json:"address,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Validate checks required fields.
func (r *CreateDonationRequestRequest) Validate() error {
	if strings.TrimSpace(r.RecipientName) == "" {
		return errors.New("recipient name is required")
	}
	if strings.TrimSpace(r.BloodGroup) == "" {
		return errors.New("blood group is required")
	}
	if strings.TrimSpace(r.District) == "" {
		return errors.New("district is required")
	}
	if strings.TrimSpace(r.Hospital) == "" {
		return errors.New("hospital is required")
	}
	if strings.TrimSpace(r.Date) == "" {
		return errors.New("donation date is required")
	}
	return nil
}

// DonationRequestsListOptions controls paging and filtering when listing
// donation requests. Filters match exactly; nil means "any".
type DonationRequestsListOptions struct {
	Limit      int
	Offset     int
	BloodGroup *string
	District   *string
	Status     *DonationRequestStatus
}
