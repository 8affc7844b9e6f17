package domain

// DefaultFirmName is shown until a profile has been saved.
const DefaultFirmName = "Your Law Firm Name"

// LawFirm is the single organizational profile used for branding. At
// most one record exists and saves replace it wholesale.
type LawFirm struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
