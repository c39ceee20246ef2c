package animals

import "time"

// Animal representa un registro de resultado (outcome) del refugio,
// con el esquema de campos del dataset del Austin Animal Center.
type Animal struct {
	// AnimalID es la clave natural del registro (ej. "A746874").
	// Si viene vacío al crear, el servicio genera uno.
	AnimalID string

	Name       string
	AnimalType string // "Dog", "Cat", "Bird", "Other"
	Breed      string
	Color      string

	SexUponOutcome        string // "Intact Female", "Neutered Male", ...
	AgeUponOutcome        string // texto original del dataset ("2 years")
	AgeUponOutcomeInWeeks float64

	DateOfBirth *time.Time
	OutcomeAt   *time.Time // columna `datetime` del dataset
	MonthYear   string

	OutcomeType    string // "Adoption", "Transfer", "Return to Owner", ...
	OutcomeSubtype string

	LocationLat  float64
	LocationLong float64
}

// HasLocation reporta si el registro trae coordenadas utilizables.
func (a Animal) HasLocation() bool {
	return a.LocationLat != 0 || a.LocationLong != 0
}
