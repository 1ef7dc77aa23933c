package clinic_dto

// Profile covers both patients and doctors; LicenseNumber and Specialty only
// ever carry data for doctor rows.
type Profile struct {
	ID            string     `json:"id"`
	FullName      string     `json:"full_name"`
	Email         *string    `json:"email,omitempty"`
	Role          *string    `json:"role,omitempty"`
	LicenseNumber *string    `json:"license_number,omitempty"`
	Specialty     *Specialty `json:"specialty,omitempty"`
}

type Specialty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
