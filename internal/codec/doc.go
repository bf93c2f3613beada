// Package codec converts a taskdb.DB to and from its persisted form.
//
// The canonical representation is a single JSON object:
//
//	{"tasks":[{"id":"…","rank":"Primary","value":"…"}, …]}
//
// Tasks appear with ranks in priority order (Primary, Secondary, Other) and,
// within a rank, in display order. Decoding appends each task in input order,
// which rebuilds rank membership, intra-rank order and every index.
//
// Input is validated against an embedded CUE schema before it is decoded.
// Anything that fails validation is reported as ErrInvalid; Load turns that
// into the seeded default store.
package codec
