package metadata

// --- SQLite Keys ---
// These keys are used for the 'key' column in the 'metadata' SQLite table.
const (
	// CatalogSeedVersionKey stores the version string of the game catalog seed file
	// that was last imported into the games table. The catalog is re-seeded on
	// startup only when the file declares a newer version.
	CatalogSeedVersionKey = "catalog_seed_version"
)
