// Package aggregates holds the transactional write boundary shared by services:
// a TxRunner unit of work, error mapping from storage failures to aggregate
// codes, and per-operation hooks and spans.
package aggregates
