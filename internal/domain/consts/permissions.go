package consts

// Recommended permissions for the files and directories subgrab might create.
const (
	// ** World Readable **
	PermsGenericDir  = 0o755
	PermsSubtitleDir = 0o755

	// ** Private **
	PermsCookieDir  = 0o750 // Private auth directory
	PermsCookieFile = 0o600 // Private cookie files
)
