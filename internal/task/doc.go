// Package task defines the vocabulary shared by every layer of burnerlist:
// ranks, task records, the four input events and identifier generation.
//
// A Record's ID is its only identity. Two records with the same ID are the
// same task even when their values differ.
//
// Ranks form a closed set with a fixed priority order:
//
//	Primary < Secondary < Other
//
// That order is load-bearing. The codec emits ranks in exactly this order and
// the persisted representation relies on it to rebuild per-rank ordering.
package task
