// Package scheduling holds the pure appointment rules: form validation
// and normalization, the date+time merge, and the read-only derivations
// the dashboard is built from. Every function is deterministic given its
// inputs; the current instant is always an explicit parameter.
package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"lexsched/internal/domain"
	"lexsched/pkg/validator"
)

const dayKeyLayout = "2006-01-02"

// Form field limits.
const (
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMaxLen = 500
	courtNameMaxLen   = 100
	caseNumberMaxLen  = 50
	clientNameMaxLen  = 100
)

// Precondition errors: a missing date or time at merge point is a caller
// bug, not user input to be tolerated. Silently substituting a default
// here has historically hidden scheduling mistakes.
var (
	ErrMissingDate = errors.New("appointment date is required")
	ErrMissingTime = errors.New("appointment time is required")
)

// Validate checks a submitted form against the field constraints and
// returns one message per violated field, keyed by the wire field name.
// A nil result means the form is valid.
func Validate(form domain.AppointmentForm) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	title := strings.TrimSpace(form.Title)
	if n := utf8.RuneCountInString(title); n < titleMinLen {
		errs["title"] = fmt.Sprintf("title must be at least %d characters", titleMinLen)
	} else if n > titleMaxLen {
		errs["title"] = fmt.Sprintf("title must be at most %d characters", titleMaxLen)
	}

	if form.Date.IsZero() {
		errs["date"] = "a date is required"
	}

	if !validator.ValidateTimeOfDay(form.Time) {
		errs["time"] = "invalid time format (HH:MM)"
	}

	if utf8.RuneCountInString(form.Description) > descriptionMaxLen {
		errs["description"] = fmt.Sprintf("description must be at most %d characters", descriptionMaxLen)
	}
	if utf8.RuneCountInString(form.CourtName) > courtNameMaxLen {
		errs["courtName"] = fmt.Sprintf("court name must be at most %d characters", courtNameMaxLen)
	}
	if utf8.RuneCountInString(form.CaseNumber) > caseNumberMaxLen {
		errs["caseNumber"] = fmt.Sprintf("case number must be at most %d characters", caseNumberMaxLen)
	}
	if utf8.RuneCountInString(form.ClientName) > clientNameMaxLen {
		errs["clientName"] = fmt.Sprintf("client name must be at most %d characters", clientNameMaxLen)
	}

	if form.RemindBeforeDays < 0 {
		errs["remindBeforeDays"] = "must be a positive number of days"
	}
	if form.RemindOnDayAt != "" && !validator.ValidateTimeOfDay(form.RemindOnDayAt) {
		errs["remindOnDayAt"] = "invalid time format (HH:MM)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Normalize trims free-text fields and folds empty optional values to
// their absent form. A remindBeforeDays of zero means "no reminder", not
// "remind on the day", so it is dropped rather than kept.
func Normalize(form domain.AppointmentForm) domain.AppointmentForm {
	form.Title = strings.TrimSpace(form.Title)
	form.Time = strings.TrimSpace(form.Time)
	form.Description = strings.TrimSpace(form.Description)
	form.CourtName = strings.TrimSpace(form.CourtName)
	form.CaseNumber = strings.TrimSpace(form.CaseNumber)
	form.ClientName = strings.TrimSpace(form.ClientName)
	form.AssignedLawyerID = strings.TrimSpace(form.AssignedLawyerID)
	form.RemindOnDayAt = strings.TrimSpace(form.RemindOnDayAt)
	if form.RemindBeforeDays <= 0 {
		form.RemindBeforeDays = 0
	}
	return form
}

// CombineDateAndTime merges a calendar date and an HH:MM clock reading
// into a single instant on that day, seconds and sub-seconds zeroed.
// Either argument missing fails fast with a precondition error.
func CombineDateAndTime(date domain.Date, clock string) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, ErrMissingDate
	}
	if clock == "" {
		return time.Time{}, ErrMissingTime
	}
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", clock, err)
	}
	day := date.Time
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// NewAppointment builds the canonical stored appointment from a form.
// When existingID is empty a new id is minted (create path); otherwise
// the id is reused (update path). The returned appointment always holds
// the normalized form and the dateTime regenerated from it.
func NewAppointment(form domain.AppointmentForm, existingID string) (domain.Appointment, error) {
	form = Normalize(form)

	dateTime, err := CombineDateAndTime(form.Date, form.Time)
	if err != nil {
		return domain.Appointment{}, err
	}

	id := existingID
	if id == "" {
		id = uuid.New().String()
	}

	return domain.Appointment{
		ID:               id,
		Title:            form.Title,
		DateTime:         dateTime,
		Description:      form.Description,
		CourtName:        form.CourtName,
		CaseNumber:       form.CaseNumber,
		ClientName:       form.ClientName,
		AssignedLawyerID: form.AssignedLawyerID,
		FormData:         form,
	}, nil
}

// PartitionByTime splits appointments into upcoming and past relative to
// asOf. An appointment exactly at asOf counts as upcoming. Every
// appointment lands on exactly one side.
func PartitionByTime(appointments []domain.Appointment, asOf time.Time) (upcoming, past []domain.Appointment) {
	for _, appt := range appointments {
		if appt.DateTime.Before(asOf) {
			past = append(past, appt)
		} else {
			upcoming = append(upcoming, appt)
		}
	}
	return upcoming, past
}

// DayKey formats an instant's calendar day as a sortable YYYY-MM-DD key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// GroupByDay buckets appointments by calendar day. Order within a day is
// whatever the input carried; callers needing display order use
// SortByDateTime per bucket.
func GroupByDay(appointments []domain.Appointment) map[string][]domain.Appointment {
	groups := make(map[string][]domain.Appointment)
	for _, appt := range appointments {
		key := DayKey(appt.DateTime)
		groups[key] = append(groups[key], appt)
	}
	return groups
}

// SortByDateTime orders appointments ascending by their instant, in
// place.
func SortByDateTime(appointments []domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].DateTime.Before(appointments[j].DateTime)
	})
}

// CountByLawyer tallies appointments per roster lawyer, preserving the
// roster order and keeping zero-count lawyers. Appointments whose
// assignedLawyerId is missing or references no roster lawyer are not
// counted anywhere.
func CountByLawyer(appointments []domain.Appointment, lawyers []domain.Lawyer) []domain.LawyerLoad {
	load := make([]domain.LawyerLoad, len(lawyers))
	index := make(map[string]int, len(lawyers))
	for i, lawyer := range lawyers {
		load[i] = domain.LawyerLoad{LawyerID: lawyer.ID, Name: lawyer.Name}
		index[lawyer.ID] = i
	}
	for _, appt := range appointments {
		if appt.AssignedLawyerID == "" {
			continue
		}
		if i, ok := index[appt.AssignedLawyerID]; ok {
			load[i].Count++
		}
	}
	return load
}

// StatusSummary derives the dashboard counters from PartitionByTime;
// completed is the size of the past side.
func StatusSummary(appointments []domain.Appointment, asOf time.Time) domain.StatusSummary {
	upcoming, past := PartitionByTime(appointments, asOf)
	return domain.StatusSummary{
		Total:     len(appointments),
		Upcoming:  len(upcoming),
		Completed: len(past),
	}
}
