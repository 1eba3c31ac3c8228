package types

// SalaryBand represents an annual salary range for a career field.
type SalaryBand struct {
	Junior string `json:"junior,omitempty"`
	Mid    string `json:"mid,omitempty"`
	Senior string `json:"senior,omitempty"`
}

// FieldProfile is a catalog entry describing one career field: display
// metadata plus the ideal trait vector used for compatibility scoring.
// Ideal vectors are authored on the 0-100 scale. Entries are read-only from
// the engine's perspective within a scoring operation.
type FieldProfile struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty"`
	DemandLevel string      `json:"demand_level,omitempty" validate:"omitempty,oneof=low medium high very-high"`
	SalaryBand  *SalaryBand `json:"salary_band,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Education   []string    `json:"education,omitempty"`
	// Ideal is the trait vector of the best-fit personality for this field,
	// on a 0-100 scale per category.
	Ideal TraitVector `json:"ideal" validate:"dive,gte=0,lte=100"`
}
