package messages

// Seed messages for the orchestration driver's progress output.
const (
	// SeedClassesHeader opens the class creation phase.
	SeedClassesHeader      = "=== Creating classes ==="
	SeedLoadingMasterData  = "Loading school master data..."
	SeedNoSchulform        = "school master data carries no school form"
	SeedNoAbschnitt        = "school master data carries no school year section id"
	SeedSchulformFmt       = "School form: %s\n"
	SeedGroupFmt           = "Structure group: %s\n"
	SeedLoadingGradeLevels = "Loading grade levels..."
	SeedStudentsFmt        = "Students: %d (target class size %d)\n"
	SeedGradeLevelsFmt     = "Grade levels: %d, students per grade ~%d\n"
	SeedRegularClassesFmt  = "Classes per regular grade: ~%d\n"
	SeedCapstoneClassesFmt = "Capstone grades: %d (one class each, whole year group)\n"
	SeedFachklassenSkipFmt = "School form %q requires specialized class configuration; skipping class creation\n"
	SeedGradePlanFmt       = "Grade %s (id %d): %d classes\n"
	SeedGradeUnresolvedFmt = "Warning: grade level %q not found on the server, skipping\n"
	SeedProgressOKFmt      = "  [%d/%d] %s: %s (id %d)\n"
	SeedProgressFailFmt    = "  [%d/%d] %s: %s HTTP %d - %s\n"
	SeedProgressErrFmt     = "  [%d/%d] %s: %s %v\n"
	SeedRetryConflictFmt   = "  [%d/%d] %s: name rejected, retrying as %s\n"
	SeedSummaryFmt         = "\nResult: %d created, %d failed\n"
	SeedAllCreated         = "All classes created."
	SeedSomeFailedFmt      = "Warning: %d classes could not be created\n"
	SeedCacheSavedFmt      = "Cached %d class ids at %s\n"

	// LeadersHeader opens the leadership assignment phase.
	LeadersHeader           = "=== Assigning class leaders (2 per class) ==="
	LeadersCacheFmt         = "Loaded %d classes from cache (run %s)\n"
	LeadersLoadingStaff     = "Loading staff roster..."
	LeadersRosterFmt        = "Found %d classes, %d staff members\n"
	LeadersRosterShortFmt   = "Warning: only %d staff members for %d classes\n"
	LeadersNoStaff          = "staff roster is empty"
	LeadersWidenedFmt       = "[%d/%d] %s: Warning: fairness pool exhausted, selecting from all staff\n"
	LeadersReplacementFmt   = "[%d/%d] %s: Warning: fewer than 2 distinct staff, selecting with replacement\n"
	LeadersProgressOKFmt    = "[%d/%d] %s: %s staff %v\n"
	LeadersProgressFailFmt  = "[%d/%d] %s: %s HTTP %d - %s\n"
	LeadersProgressErrFmt   = "[%d/%d] %s: %s %v\n"
	LeadersSummaryFmt       = "\nResult: %d assigned, %d failed\n"
	LeadersHistogramHeader  = "Staff load distribution:"
	LeadersHistogramLineFmt = "  %d staff with %d classes\n"
	LeadersAllAssigned      = "All class leaders assigned."
	LeadersSomeFailedFmt    = "Warning: %d assignments failed\n"
)
