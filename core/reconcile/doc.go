// Package reconcile computes and applies positional upserts of rendered
// collections against a document store.
//
// A collection is reconciled as a whole and always in one of two modes:
//
//   - Create: no identities were materialized before. Every eligible
//     candidate becomes a new document with the default permission.
//   - Update: identities exist. Eligible candidates are paired with them by
//     position and written back under the prior identity.
//
// A plan never mixes creates and updates.
//
// # Eligibility
//
// The first element of a raw collection is a placeholder and is always
// dropped. Removed, sentinel and unnamed candidates are dropped after it.
//
// # Integrity
//
// Positional pairing is only safe when the new collection has the same
// cardinality and ordering as the prior one. Each Materialized identity
// carries the SourceID it was created from; when counts differ
// (ErrCardinalityMismatch) or the SourceIDs disagree at any position
// (ErrOrderingMismatch) the plan is blocked, emits nothing and carries a
// Warning. The operator resolves it by recreating the collection, which
// needs ReconcileOptions.Confirmed and a store that implements Dropper.
//
// # Usage
//
//	plan, err := reconcile.BuildPlan("Countries", prior, candidates, opts)
//	result, err := reconcile.ApplyPlan(ctx, store, plan, opts)
//
//	// or in one step
//	plan, result, err := reconcile.Reconcile(ctx, store, "Countries", candidates, opts)
package reconcile
