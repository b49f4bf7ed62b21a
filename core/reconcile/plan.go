package reconcile

import (
	"context"
	"fmt"
)

// ApplyPlan executes a plan against a store.
// Nothing is written when opts.DryRun is set or the plan is blocked.
// Dropping a collection requires opts.Confirmed and a store implementing Dropper.
func ApplyPlan(ctx context.Context, store Store, plan *Plan, opts ReconcileOptions) (*ApplyResult, error) {
	result := &ApplyResult{Collection: plan.Collection, Mode: plan.Mode}

	if plan.Blocked() {
		return result, nil
	}

	if opts.DryRun {
		for _, u := range plan.Updates {
			result.Identities = append(result.Identities, Materialized{Identity: u.Identity, SourceID: u.Document.SourceID})
		}
		return result, nil
	}

	if plan.Drop {
		if !opts.Confirmed {
			return result, fmt.Errorf("drop %s: %w", plan.Collection, ErrNotConfirmed)
		}
		dropper, ok := store.(Dropper)
		if !ok {
			return result, fmt.Errorf("store %T does not implement Dropper", store)
		}
		if err := dropper.Drop(ctx, plan.Collection); err != nil {
			return result, fmt.Errorf("failed to drop %s: %w", plan.Collection, err)
		}
		result.Dropped = true
	}

	switch plan.Mode {
	case ModeCreate:
		if len(plan.Creates) == 0 {
			return result, nil
		}
		ids, err := store.CreateMany(ctx, plan.Collection, plan.Creates)
		if err != nil {
			return result, fmt.Errorf("failed to create %s: %w", plan.Collection, err)
		}
		if len(ids) != len(plan.Creates) {
			return result, fmt.Errorf("store returned %d identities for %d %s documents", len(ids), len(plan.Creates), plan.Collection)
		}
		for i, id := range ids {
			result.Identities = append(result.Identities, Materialized{Identity: id, SourceID: plan.Creates[i].SourceID})
		}
		result.Created = len(ids)

	case ModeUpdate:
		if len(plan.Updates) == 0 {
			return result, nil
		}
		if err := store.UpdateMany(ctx, plan.Collection, plan.Updates); err != nil {
			return result, fmt.Errorf("failed to update %s: %w", plan.Collection, err)
		}
		for _, u := range plan.Updates {
			result.Identities = append(result.Identities, Materialized{Identity: u.Identity, SourceID: u.Document.SourceID})
		}
		result.Updated = len(plan.Updates)
	}

	return result, nil
}

// Reconcile lists the prior collection, builds a plan and applies it.
// It returns the plan, the apply result, and any error.
func Reconcile(ctx context.Context, store Store, collection string, candidates []Candidate, opts ReconcileOptions) (*Plan, *ApplyResult, error) {
	prior, err := store.List(ctx, collection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	plan, err := BuildPlan(collection, prior, candidates, opts)
	if err != nil {
		return nil, nil, err
	}

	result, err := ApplyPlan(ctx, store, plan, opts)
	return plan, result, err
}
