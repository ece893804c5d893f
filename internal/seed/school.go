package seed

import (
	"context"
	"fmt"

	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/svws"
)

// demoSchoolPatch holds the fixed demonstration values the patch-school
// command writes into the school master data.
var demoSchoolPatch = svws.SchoolPatch{
	Bezeichnung1: "Testschule aus generierten Daten",
	Bezeichnung2: "MockFactory Schule",
	Bezeichnung3: "Generierte Daten",
	Strassenname: "Hauptstraße",
	Hausnummer:   "76",
	PLZ:          "42287",
	Ort:          "Wuppertal",
	Telefon:      "012345-6876876",
	Fax:          "012345-766766",
	Email:        "mockschule@schule.example.com",
	WebAdresse:   "https://meineschule.de",
}

// PatchSchool writes the demonstration master data to the server.
func (r *Runner) PatchSchool(ctx context.Context) error {
	if err := r.client.PatchStammdaten(ctx, demoSchoolPatch); err != nil {
		return fmt.Errorf(messages.PatchSchoolFailFmt, err)
	}
	fmt.Fprintln(r.out, messages.PatchSchoolDone)
	return nil
}
