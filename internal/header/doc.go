// Package header resolves index records to canonical header tokens.
//
// Standard library implementations expose public headers directly but
// route many declarations through internal headers. A record's include
// header is resolved in two tiers:
//
//  1. An already bracketed value ("<vector>") is used verbatim.
//  2. A path ("ext/vector", "bits/stringfwd.h") resolves to its last
//     segment, except that files under the internal "bits" directory are
//     mapped back to their public header through the forward header
//     aliases ("bits/stringfwd.h" resolves to "<string>").
package header
