package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryConfig,
		Message:  "Config file unreadable",
		Detail:   "The configuration file exists but could not be read.",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Config file is not valid JSON",
		Detail:   "recycler.json could not be parsed.",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range or malformed.",
	},

	// ============================================
	// Storage Errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryStorage,
		Message:  "Report store failure",
		Detail:   "The benchmark report could not be written to its store.",
	},
	"E011": {
		Category: CategoryStorage,
		Message:  "Unknown store URL",
		Detail:   "Report stores are addressed as file://<dir> or s3://<bucket>/<prefix>.",
	},

	// ============================================
	// Server Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryServer,
		Message:  "Metrics server failed",
		Detail:   "The HTTP server exposing /metrics and /stats stopped unexpectedly.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
