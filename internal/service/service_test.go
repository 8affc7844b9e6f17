package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"lexsched/internal/domain"
	"lexsched/internal/repository"
	"lexsched/internal/repository/inmem"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()
	repos := inmem.NewRepositories()
	services := NewServices(Deps{
		Repos:       repos,
		Logger:      zap.NewNop(),
		FileStorage: newFakeFileStorage(),
	})
	return services, repos
}

func testForm(day, clock string) domain.AppointmentForm {
	date, _ := domain.ParseDate(day)
	return domain.AppointmentForm{
		Title: "Court hearing",
		Date:  date,
		Time:  clock,
	}
}

func TestAppointmentCreateAndGet(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	form := testForm("2024-05-01", "14:30")
	form.ClientName = "A. Petrov"

	id, err := services.Appointment.Create(ctx, form)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty id")
	}

	appt, err := services.Appointment.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if appt.Title != "Court hearing" || appt.ClientName != "A. Petrov" {
		t.Errorf("stored appointment = %+v", appt)
	}
	want := time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC)
	if !appt.DateTime.Equal(want) {
		t.Errorf("DateTime = %v, want %v", appt.DateTime, want)
	}
	if appt.FormData.Time != "14:30" {
		t.Errorf("FormData not stored: %+v", appt.FormData)
	}
	if appt.CreatedAt.IsZero() || appt.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestAppointmentCreateRejectsInvalidForm(t *testing.T) {
	services, _ := newTestServices(t)

	form := testForm("2024-05-01", "25:00")
	form.Title = "x"

	_, err := services.Appointment.Create(context.Background(), form)

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	if _, ok := verrs["title"]; !ok {
		t.Errorf("missing title violation in %v", verrs)
	}
	if _, ok := verrs["time"]; !ok {
		t.Errorf("missing time violation in %v", verrs)
	}
}

func TestAppointmentUpdate(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	id, err := services.Appointment.Create(ctx, testForm("2024-05-01", "14:30"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated := testForm("2024-05-02", "09:00")
	updated.Title = "Rescheduled hearing"
	if err := services.Appointment.Update(ctx, id, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	appt, err := services.Appointment.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if appt.ID != id {
		t.Errorf("ID changed on update: %q", appt.ID)
	}
	if appt.Title != "Rescheduled hearing" {
		t.Errorf("Title = %q", appt.Title)
	}
	want := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	if !appt.DateTime.Equal(want) {
		t.Errorf("DateTime = %v, want regenerated %v", appt.DateTime, want)
	}
}

func TestAppointmentUpdateMissing(t *testing.T) {
	services, _ := newTestServices(t)

	err := services.Appointment.Update(context.Background(), "no-such-id", testForm("2024-05-01", "14:30"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAppointmentDelete(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	id, err := services.Appointment.Create(ctx, testForm("2024-05-01", "14:30"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := services.Appointment.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := services.Appointment.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
	if err := services.Appointment.Delete(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestAppointmentListScopes(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	asOf := time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC)
	for _, f := range []domain.AppointmentForm{
		testForm("2024-05-01", "09:00"),
		testForm("2024-05-03", "14:30"),
		testForm("2024-05-04", "10:00"),
	} {
		if _, err := services.Appointment.Create(ctx, f); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := services.Appointment.List(ctx, domain.AppointmentScopeAll, asOf)
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List(all) returned %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].DateTime.Before(all[i-1].DateTime) {
			t.Errorf("List(all) not ascending: %v before %v", all[i].DateTime, all[i-1].DateTime)
		}
	}

	upcoming, err := services.Appointment.List(ctx, domain.AppointmentScopeUpcoming, asOf)
	if err != nil {
		t.Fatalf("List(upcoming): %v", err)
	}
	if len(upcoming) != 2 {
		t.Errorf("List(upcoming) returned %d, want 2", len(upcoming))
	}

	past, err := services.Appointment.List(ctx, domain.AppointmentScopePast, asOf)
	if err != nil {
		t.Fatalf("List(past): %v", err)
	}
	if len(past) != 1 {
		t.Errorf("List(past) returned %d, want 1", len(past))
	}
}

func TestAppointmentListByDay(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	for _, f := range []domain.AppointmentForm{
		testForm("2024-05-01", "16:00"),
		testForm("2024-05-01", "09:00"),
		testForm("2024-05-02", "11:00"),
	} {
		if _, err := services.Appointment.Create(ctx, f); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	day, _ := domain.ParseDate("2024-05-01")
	appointments, err := services.Appointment.ListByDay(ctx, day)
	if err != nil {
		t.Fatalf("ListByDay: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("ListByDay returned %d, want 2", len(appointments))
	}
	if appointments[0].DateTime.After(appointments[1].DateTime) {
		t.Errorf("ListByDay not ascending: %v", appointments)
	}

	empty, err := services.Appointment.ListByDay(ctx, domain.NewDate(2024, time.June, 1))
	if err != nil {
		t.Fatalf("ListByDay(empty): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListByDay(empty) returned %d entries", len(empty))
	}
}

func TestLawyerCRUD(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	id, err := services.Lawyer.Create(ctx, domain.LawyerInput{Name: "Anna Ivanova", Email: "anna@firm.example"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	lawyer, err := services.Lawyer.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if lawyer.Name != "Anna Ivanova" {
		t.Errorf("Name = %q", lawyer.Name)
	}

	if err := services.Lawyer.Update(ctx, id, domain.LawyerInput{Name: "Anna Ivanova-Smith", Email: "anna@firm.example"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	lawyer, _ = services.Lawyer.GetByID(ctx, id)
	if lawyer.Name != "Anna Ivanova-Smith" {
		t.Errorf("Name after update = %q", lawyer.Name)
	}

	if err := services.Lawyer.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := services.Lawyer.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
}

func TestLawyerCreateRejectsBadInput(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Lawyer.Create(context.Background(), domain.LawyerInput{Name: "A", Email: "not-an-email"})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("violations = %v, want name and email", verrs)
	}
}

func TestLawyerListSortedByName(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"Zoe Clark", "Anna Ivanova", "Mark Reyes"} {
		if _, err := services.Lawyer.Create(ctx, domain.LawyerInput{Name: name, Email: "x@firm.example"}); err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
	}

	lawyers, err := services.Lawyer.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Anna Ivanova", "Mark Reyes", "Zoe Clark"}
	if len(lawyers) != len(want) {
		t.Fatalf("List returned %d, want %d", len(lawyers), len(want))
	}
	for i, name := range want {
		if lawyers[i].Name != name {
			t.Fatalf("order = %v, want %v", lawyers, want)
		}
	}
}

func TestLawyerDeleteKeepsAppointments(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	lawyerID, err := services.Lawyer.Create(ctx, domain.LawyerInput{Name: "Anna Ivanova", Email: "anna@firm.example"})
	if err != nil {
		t.Fatalf("Create lawyer: %v", err)
	}

	form := testForm("2024-05-01", "14:30")
	form.AssignedLawyerID = lawyerID
	apptID, err := services.Appointment.Create(ctx, form)
	if err != nil {
		t.Fatalf("Create appointment: %v", err)
	}

	if err := services.Lawyer.Delete(ctx, lawyerID); err != nil {
		t.Fatalf("Delete lawyer: %v", err)
	}

	appt, err := services.Appointment.GetByID(ctx, apptID)
	if err != nil {
		t.Fatalf("GetByID after lawyer delete: %v", err)
	}
	if appt.AssignedLawyerID != lawyerID {
		t.Errorf("AssignedLawyerID = %q, want the stale reference kept", appt.AssignedLawyerID)
	}
}

func TestFirmDefaultProfile(t *testing.T) {
	services, _ := newTestServices(t)

	firm, err := services.Firm.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if firm.Name != domain.DefaultFirmName {
		t.Errorf("Name = %q, want the default placeholder", firm.Name)
	}
}

func TestFirmSaveAndGet(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	saved := domain.LawFirm{
		Name:    "Ivanova & Partners",
		Address: "12 Court St",
		Phone:   "+12025550123",
		Email:   "office@firm.example",
	}
	if err := services.Firm.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	firm, err := services.Firm.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if firm.Name != saved.Name || firm.Address != saved.Address {
		t.Errorf("Get = %+v, want %+v", firm, saved)
	}
}

func TestFirmSaveValidation(t *testing.T) {
	services, _ := newTestServices(t)

	err := services.Firm.Save(context.Background(), domain.LawFirm{Name: "  ", Email: "bad"})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	if _, ok := verrs["name"]; !ok {
		t.Errorf("missing name violation in %v", verrs)
	}
	if _, ok := verrs["email"]; !ok {
		t.Errorf("missing email violation in %v", verrs)
	}
}

func TestDashboardStats(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	l1, err := services.Lawyer.Create(ctx, domain.LawyerInput{Name: "Anna Ivanova", Email: "anna@firm.example"})
	if err != nil {
		t.Fatalf("Create lawyer: %v", err)
	}
	if _, err := services.Lawyer.Create(ctx, domain.LawyerInput{Name: "Zoe Clark", Email: "zoe@firm.example"}); err != nil {
		t.Fatalf("Create lawyer: %v", err)
	}

	forms := []domain.AppointmentForm{
		testForm("2024-05-01", "09:00"),
		testForm("2024-05-01", "16:00"),
		testForm("2024-05-03", "11:00"),
	}
	forms[0].AssignedLawyerID = l1
	forms[1].AssignedLawyerID = l1
	forms[2].AssignedLawyerID = "no-longer-on-roster"
	for _, f := range forms {
		if _, err := services.Appointment.Create(ctx, f); err != nil {
			t.Fatalf("Create appointment: %v", err)
		}
	}

	asOf := time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC)
	stats, err := services.Dashboard.Stats(ctx, asOf)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Summary.Total != 3 || stats.Summary.Upcoming != 1 || stats.Summary.Completed != 2 {
		t.Errorf("Summary = %+v", stats.Summary)
	}
	if len(stats.LawyerLoad) != 2 {
		t.Fatalf("LawyerLoad has %d entries, want one per roster lawyer", len(stats.LawyerLoad))
	}
	if stats.LawyerLoad[0].LawyerID != l1 || stats.LawyerLoad[0].Count != 2 {
		t.Errorf("LawyerLoad[0] = %+v, want Anna with 2", stats.LawyerLoad[0])
	}
	if stats.LawyerLoad[1].Count != 0 {
		t.Errorf("LawyerLoad[1] = %+v, want zero kept", stats.LawyerLoad[1])
	}
	if stats.AppointmentsPerDay["2024-05-01"] != 2 || stats.AppointmentsPerDay["2024-05-03"] != 1 {
		t.Errorf("AppointmentsPerDay = %v", stats.AppointmentsPerDay)
	}
}

func TestDocumentAttachListDetach(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	apptID, err := services.Appointment.Create(ctx, testForm("2024-05-01", "14:30"))
	if err != nil {
		t.Fatalf("Create appointment: %v", err)
	}

	document, err := services.Document.Attach(ctx, apptID, []byte("%PDF-1.4 motion to dismiss"), "motion.pdf")
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if document.FileName != "motion.pdf" {
		t.Errorf("FileName = %q", document.FileName)
	}
	if document.FileURL == "" {
		t.Error("expected a presigned URL on the returned document")
	}

	documents, err := services.Document.ListByAppointment(ctx, apptID)
	if err != nil {
		t.Fatalf("ListByAppointment: %v", err)
	}
	if len(documents) != 1 || documents[0].ID != document.ID {
		t.Fatalf("ListByAppointment = %v", documents)
	}

	if err := services.Document.Detach(ctx, apptID, document.ID); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	documents, err = services.Document.ListByAppointment(ctx, apptID)
	if err != nil {
		t.Fatalf("ListByAppointment after detach: %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("documents left after detach: %v", documents)
	}
}

func TestDocumentAttachUnknownAppointment(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Document.Attach(context.Background(), "no-such-id", []byte("data"), "motion.pdf")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDocumentDetachWrongAppointment(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	firstID, err := services.Appointment.Create(ctx, testForm("2024-05-01", "14:30"))
	if err != nil {
		t.Fatalf("Create appointment: %v", err)
	}
	secondID, err := services.Appointment.Create(ctx, testForm("2024-05-02", "10:00"))
	if err != nil {
		t.Fatalf("Create appointment: %v", err)
	}

	document, err := services.Document.Attach(ctx, firstID, []byte("data"), "motion.pdf")
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if err := services.Document.Detach(ctx, secondID, document.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Detach via wrong appointment: err = %v, want ErrNotFound", err)
	}
}

func TestDocumentAttachWithoutStorage(t *testing.T) {
	repos := inmem.NewRepositories()
	services := NewServices(Deps{Repos: repos, Logger: zap.NewNop()})

	_, err := services.Document.Attach(context.Background(), "any", []byte("data"), "motion.pdf")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("err = %v, want ErrStorageUnavailable", err)
	}
}

// fakeFileStorage keeps uploaded objects in a map so document flows can
// be exercised without a bucket.
type fakeFileStorage struct {
	objects map[string][]byte
	next    int
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{objects: make(map[string][]byte)}
}

func (f *fakeFileStorage) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	f.next++
	key := fmt.Sprintf("documents/%d-%s", f.next, filename)
	f.objects[key] = data
	return key, nil
}

func (f *fakeFileStorage) Delete(ctx context.Context, key string) error {
	if _, ok := f.objects[key]; !ok {
		return fmt.Errorf("object %q not found", key)
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeFileStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if _, ok := f.objects[key]; !ok {
		return "", fmt.Errorf("object %q not found", key)
	}
	return "https://storage.local/" + key, nil
}
