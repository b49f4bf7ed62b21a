package importer

import (
	"time"

	"rwk-afmg/core/reconcile"
	"rwk-afmg/feature/world/classify"
)

// CollectionReport is the outcome of reconciling one collection.
type CollectionReport struct {
	Collection string                `json:"collection" yaml:"collection"`
	Step       string                `json:"step" yaml:"step"`
	Mode       reconcile.Mode        `json:"mode" yaml:"mode"`
	Summary    reconcile.PlanSummary `json:"summary" yaml:"summary"`
	Created    int                   `json:"created" yaml:"created"`
	Updated    int                   `json:"updated" yaml:"updated"`
	Dropped    bool                  `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Warnings   []string              `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// RenderErrors lists entities whose document could not be rendered.
	RenderErrors []string `json:"render_errors,omitempty" yaml:"render_errors,omitempty"`
}

// Report describes a whole ingestion run.
type Report struct {
	RunID          string             `json:"run_id" yaml:"run_id"`
	DryRun         bool               `json:"dry_run" yaml:"dry_run"`
	StartedAt      time.Time          `json:"started_at" yaml:"started_at"`
	Duration       time.Duration      `json:"duration" yaml:"duration"`
	Classification *classify.Report   `json:"classification" yaml:"classification"`
	Collections    []CollectionReport `json:"collections" yaml:"collections"`
	// ResolveWarnings lists inconsistencies found while joining references.
	ResolveWarnings []string `json:"resolve_warnings,omitempty" yaml:"resolve_warnings,omitempty"`
	// BurgURLErrors lists burgs whose URL could not be derived.
	BurgURLErrors []string `json:"burg_url_errors,omitempty" yaml:"burg_url_errors,omitempty"`
}

// Warnings returns every integrity warning across collections.
func (r *Report) Warnings() []string {
	var out []string
	for _, c := range r.Collections {
		out = append(out, c.Warnings...)
	}
	return out
}

// Collection returns the last report for a collection name.
func (r *Report) Collection(name string) (CollectionReport, bool) {
	for i := len(r.Collections) - 1; i >= 0; i-- {
		if r.Collections[i].Collection == name {
			return r.Collections[i], true
		}
	}
	return CollectionReport{}, false
}
