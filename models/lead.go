package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead statuses. Status is the only field an admin can change after a lead
// has been submitted.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusMeeting   = "Meeting Scheduled"
	LeadStatusClosed    = "Closed"
)

var leadStatuses = map[string]bool{
	LeadStatusNew:       true,
	LeadStatusContacted: true,
	LeadStatusMeeting:   true,
	LeadStatusClosed:    true,
}

// IsValidLeadStatus reports whether s is one of the enumerated statuses.
func IsValidLeadStatus(s string) bool {
	return leadStatuses[s]
}

// Lead is a contact-form or booking submission. Duplicate email addresses
// are allowed; the same person may inquire more than once.
type Lead struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Message            string    `json:"message"`
	IsBookingRequest   bool      `json:"isBookingRequest"`
	PreferredDate      string    `json:"preferredDate"`
	PreferredTimeRange string    `json:"preferredTimeRange"`
	MeetingTopic       string    `json:"meetingTopic"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CreateLeadRequest is the public contact/booking payload.
type CreateLeadRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Message            string `json:"message" binding:"required"`
	IsBookingRequest   bool   `json:"isBookingRequest"`
	PreferredDate      string `json:"preferredDate"`
	PreferredTimeRange string `json:"preferredTimeRange"`
	MeetingTopic       string `json:"meetingTopic"`
}

// UpdateLeadRequest carries the one mutable lead field. Any other field in
// the incoming payload is ignored.
type UpdateLeadRequest struct {
	Status string `json:"status" binding:"required"`
}

// Lead builds the full record from a submission; status always starts New.
func (r CreateLeadRequest) Lead() Lead {
	return Lead{
		Name:               r.Name,
		Email:              r.Email,
		Message:            r.Message,
		IsBookingRequest:   r.IsBookingRequest,
		PreferredDate:      r.PreferredDate,
		PreferredTimeRange: r.PreferredTimeRange,
		MeetingTopic:       r.MeetingTopic,
		Status:             LeadStatusNew,
	}
}
