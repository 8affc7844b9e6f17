package domain

import (
	"time"
)

type AppointmentScope string

const (
	AppointmentScopeAll      AppointmentScope = "all"
	AppointmentScopeUpcoming AppointmentScope = "upcoming"
	AppointmentScopePast     AppointmentScope = "past"
)

// AppointmentForm is the submission payload for creating or editing an
// appointment. The reminder fields are stored but never acted upon; they
// are kept for a future notification integration.
type AppointmentForm struct {
	Title            string `json:"title"`
	Date             Date   `json:"date"`
	Time             string `json:"time"`
	Description      string `json:"description,omitempty"`
	CourtName        string `json:"courtName,omitempty"`
	CaseNumber       string `json:"caseNumber,omitempty"`
	ClientName       string `json:"clientName,omitempty"`
	AssignedLawyerID string `json:"assignedLawyerId,omitempty"`
	RemindBeforeDays int    `json:"remindBeforeDays,omitempty"`
	RemindOnDayAt    string `json:"remindOnDayAt,omitempty"`
}

// Appointment is the stored shape. DateTime is always the merge of
// FormData.Date and FormData.Time; the two never diverge because updates
// go through a full form resubmission. FormData is retained so the edit
// flow can re-populate the form the appointment originated from.
type Appointment struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	DateTime         time.Time       `json:"dateTime"`
	Description      string          `json:"description"`
	CourtName        string          `json:"courtName,omitempty"`
	CaseNumber       string          `json:"caseNumber,omitempty"`
	ClientName       string          `json:"clientName,omitempty"`
	AssignedLawyerID string          `json:"assignedLawyerId,omitempty"`
	FormData         AppointmentForm `json:"formData"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
