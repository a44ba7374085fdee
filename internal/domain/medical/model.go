package medical

import "time"

// RecordType classifies a medical record.
// @Enum checkup, vaccination, treatment, surgery, emergency
type RecordType string

const (
	TypeCheckup     RecordType = "checkup"
	TypeVaccination RecordType = "vaccination"
	TypeTreatment   RecordType = "treatment"
	TypeSurgery     RecordType = "surgery"
	TypeEmergency   RecordType = "emergency"
)

func ValidType(t RecordType) bool {
	switch t {
	case TypeCheckup, TypeVaccination, TypeTreatment, TypeSurgery, TypeEmergency:
		return true
	}
	return false
}

type Record struct {
	ID       string
	AnimalID string
	DoctorID string

	Date time.Time
	Type RecordType

	Diagnosis   string
	Treatment   string
	Medications []string
	Notes       string

	NextCheckup *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
