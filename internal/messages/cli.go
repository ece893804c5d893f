package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "mockfactory"
	// RootShort is the short description for the root command.
	RootShort = "Seed a school server with synthetic demonstration data"
	RootLong  = "mockfactory seeds a school-information server with synthetic organizational data\n(classes, staff assignments) for demonstration and testing."

	RootFlagConfig    = "Path to the JSON configuration file"
	RootFlagStructure = "Path to a class structure catalog (overrides the embedded default)"
	RootFlagYes       = "Skip the confirmation prompt before writing to the server"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	CheckUse       = "check"
	CheckShort     = "Check whether the school server is alive"
	CheckTargetFmt = "Checking server at %s\n"
	CheckAlive     = "Server is alive."
	CheckDeadFmt   = "server is not responding: %v"

	PatchSchoolUse     = "patch-school"
	PatchSchoolShort   = "Patch the school master data with demonstration values"
	PatchSchoolDone    = "School master data updated."
	PatchSchoolFailFmt = "failed to patch school master data: %w"

	ClassesUse   = "classes"
	ClassesShort = "Generate cohorts and create them on the server"

	LeadersUse      = "leaders"
	LeadersShort    = "Assign two staff leaders to each cached cohort"
	LeadersFlagSeed = "Seed for the random staff selection (0 uses a time-based seed)"

	SeedUse   = "seed"
	SeedShort = "Run the classes and leaders phases in sequence"

	ConfirmWritePromptFmt = "Write generated data to %s?"
	ConfirmRequiresTTY    = "confirmation requires an interactive terminal; re-run with --yes to proceed without prompting"
	ConfirmAborted        = "aborted"
)
