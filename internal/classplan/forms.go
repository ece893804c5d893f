package classplan

// School-form families drive how classes are shaped and what
// organizational attributes they carry. The code sets mirror the school
// server's validation rules.

// capstoneForms are the school forms whose final years (Oberstufe) run as
// one class per year group instead of parallel sections.
var capstoneForms = map[string]struct{}{
	"GY": {},
	"GE": {},
	"HI": {},
}

// capstoneGrades are the grade-level codes of the Oberstufe phase.
var capstoneGrades = map[string]struct{}{
	"EF": {},
	"Q1": {},
	"Q2": {},
}

// vocationalForms use the vocational organizational attribute set.
var vocationalForms = map[string]struct{}{
	"BK": {},
	"SB": {},
}

// omitSchulgliederungForms lists school forms whose server-side validation
// rejects an explicit idSchulgliederung; for these the field is omitted so
// the server picks its default.
var omitSchulgliederungForms = map[string]struct{}{
	"H":  {},
	"SK": {},
	"R":  {},
	"SR": {},
	"S":  {},
}

// HasCapstonePhase reports whether the school form recognizes the
// capstone (Oberstufe) phase at all. Without it, EF/Q1/Q2 entries in a
// template are planned like any regular grade.
func HasCapstonePhase(schulform string) bool {
	_, ok := capstoneForms[schulform]
	return ok
}

// IsCapstoneGrade reports whether the grade-level code belongs to the
// capstone phase of the given school form.
func IsCapstoneGrade(schulform, kuerzel string) bool {
	if !HasCapstonePhase(schulform) {
		return false
	}
	_, ok := capstoneGrades[kuerzel]
	return ok
}

// IsVocational reports whether the school form uses the vocational
// attribute set.
func IsVocational(schulform string) bool {
	_, ok := vocationalForms[schulform]
	return ok
}

// RequiresFachklassen reports whether class creation for the school form
// depends on the specialized-class sub-catalog this tool does not model.
// Such schools are skipped with a zero-created, zero-failed result.
func RequiresFachklassen(schulform string) bool {
	return IsVocational(schulform)
}

// OmitSchulgliederung reports whether generated classes for the school
// form must leave idSchulgliederung unset.
func OmitSchulgliederung(schulform string) bool {
	_, ok := omitSchulgliederungForms[schulform]
	return ok
}
