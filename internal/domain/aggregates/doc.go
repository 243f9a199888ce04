// Package aggregates defines the error vocabulary shared by every write boundary.
//
// A failure carries a coarse Code (used for transport status mapping) and, for
// business failures, a Reason naming exactly what was missing or invalid.
package aggregates
