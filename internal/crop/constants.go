package crop

// Catalog file settings
const (
	// CatalogSchemaVersion is the catalog file version this loader understands
	CatalogSchemaVersion = "1.0"

	// CatalogSchemaName identifies the embedded catalog JSON schema
	CatalogSchemaName = "crops.schema.json"
)

// Suggestion tuning
const (
	// minSuggestLength is the shortest input that gets a fuzzy suggestion
	minSuggestLength = 3
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Crop catalog loaded"
	LogMsgCatalogFallback = "No crop catalog path configured, using built-in catalog"
)
