package animals

import (
	"encoding/json"
	"strings"
	"time"

	"zoo-ops/internal/domain/species"
)

// Category groups animals for dashboard histograms.
// @Enum mammals, reptiles, birds, amphibians, fish, insects
type Category string

const (
	CategoryMammals    Category = "mammals"
	CategoryReptiles   Category = "reptiles"
	CategoryBirds      Category = "birds"
	CategoryAmphibians Category = "amphibians"
	CategoryFish       Category = "fish"
	CategoryInsects    Category = "insects"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryMammals, CategoryReptiles, CategoryBirds, CategoryAmphibians, CategoryFish, CategoryInsects:
		return true
	}
	return false
}

// Sex of the animal.
// @Enum Male, Female, Unknown
type Sex string

const (
	SexMale    Sex = "Male"
	SexFemale  Sex = "Female"
	SexUnknown Sex = "Unknown"
)

// HealthStatus is deliberately unconstrained between values: any status can
// be set via update, there is no transition state machine.
// @Enum healthy, sick, injured, recovering, quarantine, deceased
type HealthStatus string

const (
	StatusHealthy    HealthStatus = "healthy"
	StatusSick       HealthStatus = "sick"
	StatusInjured    HealthStatus = "injured"
	StatusRecovering HealthStatus = "recovering"
	StatusQuarantine HealthStatus = "quarantine"
	StatusDeceased   HealthStatus = "deceased"
)

func ValidStatus(s HealthStatus) bool {
	switch s {
	case StatusHealthy, StatusSick, StatusInjured, StatusRecovering, StatusQuarantine, StatusDeceased:
		return true
	}
	return false
}

// SpeciesRef is a tagged union: API responses carry either a bare species id
// or a populated species object. One codec here instead of shape checks at
// every call site.
type SpeciesRef struct {
	ID        string
	Populated *species.Species
}

func RefID(id string) SpeciesRef {
	return SpeciesRef{ID: strings.TrimSpace(id)}
}

// RefID returns the species id regardless of shape.
func (r SpeciesRef) RefID() string {
	if r.Populated != nil {
		return r.Populated.ID
	}
	return r.ID
}

// Display returns something printable regardless of shape.
func (r SpeciesRef) Display() string {
	if r.Populated != nil && r.Populated.CommonName != "" {
		return r.Populated.CommonName
	}
	return r.ID
}

func (r SpeciesRef) IsZero() bool {
	return r.Populated == nil && strings.TrimSpace(r.ID) == ""
}

type populatedSpecies struct {
	ID             string `json:"id"`
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
}

func (r SpeciesRef) MarshalJSON() ([]byte, error) {
	if r.Populated != nil {
		return json.Marshal(populatedSpecies{
			ID:             r.Populated.ID,
			CommonName:     r.Populated.CommonName,
			ScientificName: r.Populated.ScientificName,
		})
	}
	return json.Marshal(r.ID)
}

func (r *SpeciesRef) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*r = SpeciesRef{}
		return nil
	}

	if strings.HasPrefix(s, "{") {
		var p populatedSpecies
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		*r = SpeciesRef{
			ID: p.ID,
			Populated: &species.Species{
				ID:             p.ID,
				CommonName:     p.CommonName,
				ScientificName: p.ScientificName,
			},
		}
		return nil
	}

	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	*r = SpeciesRef{ID: id}
	return nil
}

type Animal struct {
	ID   string
	Name string

	Species  SpeciesRef
	Category Category

	Age    int     // years
	Weight float64 // kg
	Sex    Sex
	Status HealthStatus

	EnclosureID string
	CaretakerID string
	DoctorID    string

	ArrivalDate *time.Time
	DOB         *time.Time
	LastCheckup *time.Time

	Description string
	ImageURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
