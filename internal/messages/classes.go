package messages

// Class planning messages for the structure catalog, planner, and factory.
const (
	// StructureMissingFileFmt formats missing catalog file errors.
	StructureMissingFileFmt   = "missing structure catalog %s: %w"
	StructureInvalidFileFmt   = "invalid structure catalog %s: %w"
	StructureNoGroupsFmt      = "structure catalog %s contains no groups"
	StructureGroupNotFoundFmt = "no class structure group matches school form %q"

	PlanNoGradeLevelsFmt = "structure group %q contains no grade levels"
	PlanSuffixRangeFmt   = "suffix index %d exceeds the naming scheme ceiling %d"
	PlanStudentsInvalid  = "total student count must be greater than zero"
	PlanClassSizeInvalid = "target class size must be greater than zero"

	CacheMissingFmt = "no cohort cache at %s (run 'mockfactory classes' first)"
	CacheInvalidFmt = "invalid cohort cache %s: %w"
	CacheWriteFmt   = "write cohort cache %s: %w"
	CacheEmptyFmt   = "cohort cache %s contains no entries"
)
