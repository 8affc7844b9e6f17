package domain

type Lawyer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LawyerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
