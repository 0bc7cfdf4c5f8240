// Package diagnostic provides structured errors and warnings raised while
// checking a column mapping file.
//
// Each Diagnostic carries a stable code (e.g. "unknown_role"), the file
// section and key it concerns, and optional suggestions such as the closest
// known role name for a typo.
package diagnostic
