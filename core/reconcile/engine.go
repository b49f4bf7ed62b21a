package reconcile

import (
	"fmt"
)

// Eligible returns the candidates that may be emitted, in source order.
// The first element is always dropped, followed by removed, sentinel and unnamed entries.
func Eligible(candidates []Candidate) []Candidate {
	if len(candidates) <= 1 {
		return nil
	}

	out := make([]Candidate, 0, len(candidates)-1)
	for _, c := range candidates[1:] {
		if !c.Emittable() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// BuildPlan compares a newly resolved collection with its prior materialization.
//
// With no prior identities every eligible candidate becomes a create. With prior
// identities the eligible candidates are paired with them by position. Pairing
// only happens when counts and ordering keys agree; otherwise the plan is blocked
// and carries an integrity warning.
func BuildPlan(collection string, prior []Materialized, candidates []Candidate, opts ReconcileOptions) (*Plan, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection name is required")
	}

	eligible := Eligible(candidates)

	plan := &Plan{
		Collection: collection,
		Summary: PlanSummary{
			Candidates: len(candidates),
			Eligible:   len(eligible),
			Prior:      len(prior),
		},
	}

	if len(prior) == 0 || opts.Recreate {
		plan.Mode = ModeCreate
		plan.Drop = len(prior) > 0
		plan.Creates = make([]Document, 0, len(eligible))
		for _, c := range eligible {
			doc := c.Document
			doc.Permission = DefaultPermission
			doc.Flags = withEntryFlag(doc.Flags)
			plan.Creates = append(plan.Creates, doc)
		}
		plan.Summary.Creates = len(plan.Creates)
		return plan, nil
	}

	if len(prior) != len(eligible) {
		plan.Mode = ModeBlocked
		plan.Warnings = append(plan.Warnings, Warning{
			Collection: collection,
			Err:        ErrCardinalityMismatch,
			Message:    fmt.Sprintf("%d materialized, %d eligible; recreate the collection to continue", len(prior), len(eligible)),
		})
		return plan, nil
	}

	for i, m := range prior {
		if m.SourceID != eligible[i].SourceID {
			plan.Mode = ModeBlocked
			plan.Warnings = append(plan.Warnings, Warning{
				Collection: collection,
				Err:        ErrOrderingMismatch,
				Message:    fmt.Sprintf("position %d: materialized source %d, new source %d", i, m.SourceID, eligible[i].SourceID),
			})
			return plan, nil
		}
	}

	plan.Mode = ModeUpdate
	plan.Updates = make([]Update, 0, len(eligible))
	for i, c := range eligible {
		doc := c.Document
		doc.Permission = 0
		doc.Flags = withEntryFlag(doc.Flags)
		plan.Updates = append(plan.Updates, Update{Identity: prior[i].Identity, Document: doc})
	}
	plan.Summary.Updates = len(plan.Updates)

	return plan, nil
}

// Blocked reports whether the plan emits nothing because of an integrity warning.
func (p *Plan) Blocked() bool {
	return p.Mode == ModeBlocked
}

func withEntryFlag(flags map[string]any) map[string]any {
	out := make(map[string]any, len(flags)+1)
	for k, v := range flags {
		out[k] = v
	}
	out[EntryFlag] = true
	return out
}
