// File: standards.go
// Title: Error Standards for devkit Foundation
// Description: Module identifiers used by every foundation package when it
//              reports an error, and the canonical module list.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Module list of the conversion toolkit; module-specific
//                       codes folded into the shared code taxonomy

package errors

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleEncodingx   = "encodingx"
	ModuleHashx       = "hashx"
	ModuleRandx       = "randx"
	ModuleUUIDx       = "uuidx"
	ModuleLoremx      = "loremx"
	ModuleMathx       = "mathx"
	ModuleTimex       = "timex"
	ModuleValidationx = "validationx"
	ModuleToolkit     = "toolkit"
	ModuleConfig      = "config"
)

// knownModules lists the foundation module identifiers
func knownModules() []string {
	return []string{
		ModuleStringx, ModuleEncodingx, ModuleHashx, ModuleRandx, ModuleUUIDx,
		ModuleLoremx, ModuleMathx, ModuleTimex, ModuleValidationx,
		ModuleToolkit, ModuleConfig,
	}
}

// IsKnownModule reports whether module is one of the foundation modules
func IsKnownModule(module string) bool {
	for _, m := range knownModules() {
		if m == module {
			return true
		}
	}
	return false
}
