package domain

// LawyerLoad is the per-lawyer appointment count behind the workload
// chart. Every roster lawyer gets an entry, including zero counts.
type LawyerLoad struct {
	LawyerID string `json:"lawyerId"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

type StatusSummary struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
}

type DashboardStats struct {
	Summary            StatusSummary  `json:"summary"`
	LawyerLoad         []LawyerLoad   `json:"lawyerLoad"`
	AppointmentsPerDay map[string]int `json:"appointmentsPerDay"`
}
