// Package diagnostic provides structured diagnostics for the header map
// builder and a reporter that streams them, one line each, to the
// diagnostic output.
//
// Key capabilities:
//   - Reference load announcements
//   - Include paths too short to resolve
//   - Internal headers with no public alias
//   - Resolved headers that disagree with the reference mapping
package diagnostic
