package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/conn-castle/mockfactory/internal/cache"
	"github.com/conn-castle/mockfactory/internal/classplan"
	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/svws"
)

// createRetries bounds how often a rejected class name is regenerated
// before the record counts as failed.
const createRetries = 2

// SeedClasses runs the class creation phase: plan the class distribution
// from the school's master data, create every class on the server, and
// cache the created ids for the leadership phase.
func (r *Runner) SeedClasses(ctx context.Context) (Report, error) {
	fmt.Fprintf(r.out, "%s\n\n", messages.SeedClassesHeader)
	fmt.Fprintln(r.out, messages.SeedLoadingMasterData)

	stammdaten, err := r.client.Stammdaten(ctx)
	if err != nil {
		return Report{}, err
	}
	if stammdaten.Schulform == "" {
		return Report{}, errors.New(messages.SeedNoSchulform)
	}
	if stammdaten.IDSchuljahresabschnitt == 0 {
		return Report{}, errors.New(messages.SeedNoAbschnitt)
	}
	fmt.Fprintf(r.out, messages.SeedSchulformFmt, stammdaten.Schulform)

	if classplan.RequiresFachklassen(stammdaten.Schulform) {
		fmt.Fprintf(r.out, messages.SeedFachklassenSkipFmt, stammdaten.Schulform)
		return Report{SkippedSchool: true}, nil
	}

	group, err := r.opts.Catalog.Lookup(stammdaten.Schulform)
	if err != nil {
		return Report{}, err
	}
	fmt.Fprintf(r.out, messages.SeedGroupFmt, group.Name)

	fmt.Fprintln(r.out, messages.SeedLoadingGradeLevels)
	jahrgaenge, err := r.client.Jahrgaenge(ctx)
	if err != nil {
		return Report{}, err
	}
	directory := make(map[string]int64, len(jahrgaenge))
	for _, jahrgang := range jahrgaenge {
		directory[jahrgang.Kuerzel] = jahrgang.ID
	}

	plan, err := classplan.PlanClasses(r.opts.TotalStudents, r.opts.TargetClassSize, group, stammdaten.Schulform)
	if err != nil {
		return Report{}, err
	}

	fmt.Fprintf(r.out, messages.SeedStudentsFmt, r.opts.TotalStudents, r.opts.TargetClassSize)
	fmt.Fprintf(r.out, messages.SeedGradeLevelsFmt, len(group.Jahrgaenge), int(plan.StudentsPerGrade))
	if len(plan.Regular) > 0 {
		fmt.Fprintf(r.out, messages.SeedRegularClassesFmt, plan.ClassesPerGrade)
	}
	if len(plan.Capstone) > 0 {
		fmt.Fprintf(r.out, messages.SeedCapstoneClassesFmt, len(plan.Capstone))
	}
	fmt.Fprintln(r.out)

	factory := classplan.NewFactory(stammdaten.Schulform)
	total := plan.TotalClasses()
	report := Report{}
	var entries []cache.Entry

	for _, grade := range plan.Grades() {
		gradeID, ok := directory[grade.Grade.Kuerzel]
		if !ok || gradeID == 0 {
			fmt.Fprintf(r.out, messages.SeedGradeUnresolvedFmt, grade.Grade.Kuerzel)
			report.SkippedGrades++
			continue
		}
		fmt.Fprintf(r.out, messages.SeedGradePlanFmt, grade.Grade.Kuerzel, gradeID, grade.Count)

		records, err := factory.BuildGrade(grade)
		if err != nil {
			return report, err
		}
		nextFreeIndex := grade.Count
		for _, record := range records {
			entry := r.createClass(ctx, stammdaten.IDSchuljahresabschnitt, gradeID, grade, record, &nextFreeIndex, factory, &report, total)
			if entry != nil {
				entries = append(entries, *entry)
			}
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, messages.SeedSummaryFmt, report.Created, report.Failed)
	if report.Failed == 0 {
		fmt.Fprintln(r.out, color.GreenString(messages.SeedAllCreated))
	} else {
		fmt.Fprintf(r.out, messages.SeedSomeFailedFmt, report.Failed)
	}

	if len(entries) > 0 {
		if _, err := cache.Write(r.opts.CachePath, entries); err != nil {
			return report, err
		}
		fmt.Fprintf(r.out, messages.SeedCacheSavedFmt, len(entries), r.opts.CachePath)
	}
	return report, nil
}

// createClass submits one record, regenerating its name on duplicate
// rejections up to createRetries times. It returns the cache entry of a
// created class, or nil when the record counts as failed.
func (r *Runner) createClass(ctx context.Context, abschnittID, gradeID int64, grade classplan.GradePlan, record classplan.Record, nextFreeIndex *int, factory *classplan.Factory, report *Report, total int) *cache.Entry {
	for attempt := 0; ; attempt++ {
		payload := buildPayload(record, abschnittID, gradeID)
		id, err := r.client.CreateKlasse(ctx, payload)
		if err == nil {
			report.Created++
			fmt.Fprintf(r.out, messages.SeedProgressOKFmt, report.Created+report.Failed, total, record.Kuerzel, color.GreenString("✓"), id)
			return &cache.Entry{ID: id, Kuerzel: record.Kuerzel}
		}

		if svws.IsConflict(err) && !record.Capstone && attempt < createRetries {
			recoded, recodeErr := factory.Recode(record, grade.Grade, *nextFreeIndex)
			if recodeErr == nil {
				*nextFreeIndex++
				fmt.Fprintf(r.out, messages.SeedRetryConflictFmt, report.Created+report.Failed+1, total, record.Kuerzel, recoded.Kuerzel)
				record = recoded
				continue
			}
		}

		report.Failed++
		var apiErr *svws.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(r.out, messages.SeedProgressFailFmt, report.Created+report.Failed, total, record.Kuerzel, color.RedString("✗"), apiErr.StatusCode, apiErr.Message)
		} else {
			fmt.Fprintf(r.out, messages.SeedProgressErrFmt, report.Created+report.Failed, total, record.Kuerzel, color.RedString("✗"), err)
		}
		return nil
	}
}

// buildPayload maps a planned record onto the server's creation payload,
// selecting the attribute variant fields.
func buildPayload(record classplan.Record, abschnittID, gradeID int64) svws.KlasseCreate {
	payload := svws.KlasseCreate{
		IDSchuljahresabschnitt: abschnittID,
		Kuerzel:                record.Kuerzel,
		IDJahrgang:             gradeID,
		Parallelitaet:          record.Parallelitaet,
		Sortierung:             record.Sortierung,
		Beschreibung:           record.Beschreibung,
	}
	switch attrs := record.Attributes.(type) {
	case classplan.VocationalAttributes:
		payload.IDBerufsbildendOrganisationsform = &attrs.Organisationsform
		payload.IDKlassenart = attrs.Klassenart
		payload.IDSchulgliederung = &attrs.Schulgliederung
	case classplan.GeneralEducationAttributes:
		payload.IDAllgemeinbildendOrganisationsform = &attrs.Organisationsform
		payload.IDKlassenart = attrs.Klassenart
		payload.IDSchulgliederung = attrs.Schulgliederung
	}
	return payload
}
