package classplan

import (
	"fmt"

	"github.com/conn-castle/mockfactory/internal/structure"
)

// Attribute constants used by the school server's class records.
const (
	vocationalOrganisationsform = 1005000
	vocationalKlassenart        = 7001
	vocationalSchulgliederung   = 1001000

	generalOrganisationsform = 3001001
	generalKlassenart        = 7002
	generalSchulgliederung   = 0
)

// Attributes is the school-form-specific organizational attribute set of
// a class record. Exactly one concrete variant applies per school form.
type Attributes interface {
	isAttributes()
}

// VocationalAttributes is the attribute set for vocational schools.
type VocationalAttributes struct {
	Organisationsform int64
	Klassenart        int64
	Schulgliederung   int64
}

func (VocationalAttributes) isAttributes() {}

// GeneralEducationAttributes is the attribute set for general-education
// schools. Schulgliederung is nil when the school form's validation
// rejects an explicit value and the server must default it.
type GeneralEducationAttributes struct {
	Organisationsform int64
	Klassenart        int64
	Schulgliederung   *int64
}

func (GeneralEducationAttributes) isAttributes() {}

// AttributesFor returns the attribute variant for a school form.
func AttributesFor(schulform string) Attributes {
	if IsVocational(schulform) {
		return VocationalAttributes{
			Organisationsform: vocationalOrganisationsform,
			Klassenart:        vocationalKlassenart,
			Schulgliederung:   vocationalSchulgliederung,
		}
	}
	attrs := GeneralEducationAttributes{
		Organisationsform: generalOrganisationsform,
		Klassenart:        generalKlassenart,
	}
	if !OmitSchulgliederung(schulform) {
		gliederung := int64(generalSchulgliederung)
		attrs.Schulgliederung = &gliederung
	}
	return attrs
}

// Record is a fully-populated class record, ready for submission.
type Record struct {
	Kuerzel       string
	Beschreibung  string
	Parallelitaet string
	// Sortierung is unique and strictly increasing across the whole run.
	Sortierung int
	// GradeKuerzel identifies the grade level the record belongs to; the
	// orchestration maps it to the server-side grade id.
	GradeKuerzel string
	// SuffixIndex is the zero-based parallel index the name was derived
	// from; -1 for capstone records, which carry no suffix.
	SuffixIndex int
	Capstone    bool
	Attributes  Attributes
}

// Factory builds class records from a plan. It owns the run-global
// sortierung counter: one factory per orchestration run.
type Factory struct {
	schulform  string
	sortierung int
}

// NewFactory returns a factory for the given school form with the
// sortierung counter at its start value.
func NewFactory(schulform string) *Factory {
	return &Factory{schulform: schulform, sortierung: 1}
}

// BuildGrade builds the records for one planned grade level, consuming
// sortierung values in order. Regular grades produce Count suffixed
// records; capstone grades produce a single record named by the grade
// code alone.
func (f *Factory) BuildGrade(grade GradePlan) ([]Record, error) {
	if grade.Capstone {
		record := Record{
			Kuerzel:       grade.Grade.Prefix + grade.Grade.Kuerzel,
			Beschreibung:  fmt.Sprintf("Jahrgang %s", grade.Grade.Kuerzel),
			Parallelitaet: Parallel(""),
			Sortierung:    f.next(),
			GradeKuerzel:  grade.Grade.Kuerzel,
			SuffixIndex:   -1,
			Capstone:      true,
			Attributes:    AttributesFor(f.schulform),
		}
		return []Record{record}, nil
	}

	records := make([]Record, 0, grade.Count)
	for index := 0; index < grade.Count; index++ {
		record, err := f.build(grade.Grade, index)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Recode renames a regular record to the given suffix index, keeping its
// sortierung. The creation phase uses it to regenerate a name the server
// rejected as a duplicate.
func (f *Factory) Recode(record Record, grade structure.GradeLevel, index int) (Record, error) {
	if record.Capstone {
		return record, nil
	}
	suffix, err := Suffix(index)
	if err != nil {
		return Record{}, err
	}
	record.Kuerzel = grade.Prefix + grade.Kuerzel + suffix
	record.Beschreibung = fmt.Sprintf("Klasse %s", record.Kuerzel)
	record.Parallelitaet = Parallel(suffix)
	record.SuffixIndex = index
	return record, nil
}

// build assembles a regular record for one suffix index.
func (f *Factory) build(grade structure.GradeLevel, index int) (Record, error) {
	suffix, err := Suffix(index)
	if err != nil {
		return Record{}, err
	}
	kuerzel := grade.Prefix + grade.Kuerzel + suffix
	return Record{
		Kuerzel:       kuerzel,
		Beschreibung:  fmt.Sprintf("Klasse %s", kuerzel),
		Parallelitaet: Parallel(suffix),
		Sortierung:    f.next(),
		GradeKuerzel:  grade.Kuerzel,
		SuffixIndex:   index,
		Capstone:      false,
		Attributes:    AttributesFor(f.schulform),
	}, nil
}

// next returns the current counter value and advances it.
func (f *Factory) next() int {
	value := f.sortierung
	f.sortierung++
	return value
}
