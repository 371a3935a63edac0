// Package contract declares, for every message group, the legal message keys
// and the named placeholders each key's template requires.
//
// The table is pure metadata. It does not change how messages resolve; it
// only restricts what a caller may pass. Check performs the runtime shape
// validation used by the formatter before it resolves a key:
//
//	res := contract.Check("string", "tooShort", map[string]any{"min": 5}, false)
//	if !res.OK {
//	    log.Warn("bad message params", "reason", res.Reason)
//	}
//
// Groups that are not part of the table (custom application groups) are not
// governed and always pass the check.
package contract
