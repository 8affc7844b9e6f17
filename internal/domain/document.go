package domain

import "time"

// AppointmentDocument is a court filing or other file attached to an
// appointment. The bytes live in object storage under StorageKey; the
// download URL is presigned on read and never persisted.
type AppointmentDocument struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	FileName      string    `json:"fileName"`
	StorageKey    string    `json:"-"`
	FileURL       string    `json:"fileUrl,omitempty"`
	UploadedAt    time.Time `json:"uploadedAt"`
}
