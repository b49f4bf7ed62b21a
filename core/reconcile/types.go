package reconcile

// Mode is the kind of batch a plan emits for one collection.
type Mode string

const (
	// ModeCreate emits every eligible candidate as a new document.
	ModeCreate Mode = "create"
	// ModeUpdate pairs eligible candidates with prior identities by position.
	ModeUpdate Mode = "update"
	// ModeBlocked emits nothing because the prior collection cannot be paired safely.
	ModeBlocked Mode = "blocked"
)

// DefaultPermission is the permission level given to newly created documents (observer).
const DefaultPermission = 2

// EntryFlag marks every document written by the importer.
const EntryFlag = "compendiumEntry"

// Document is the rendered form of one entity handed to a document store.
type Document struct {
	// Name is the display name of the document.
	Name string `json:"name" yaml:"name"`

	// Content is the rendered body.
	Content string `json:"content" yaml:"content"`

	// SourceID is the positional identifier of the entity the document was rendered from.
	// It is the ordering key checked against prior materializations.
	SourceID int `json:"source_id" yaml:"source_id"`

	// Flags holds arbitrary document flags (e.g., compendiumEntry).
	Flags map[string]any `json:"flags,omitempty" yaml:"flags,omitempty"`

	// Permission is the default permission level. Only applied on create.
	Permission int `json:"permission,omitempty" yaml:"permission,omitempty"`
}

// Candidate is one element of a resolved collection, in source order.
type Candidate struct {
	Document

	// Removed is set when the source flags the entity as deleted.
	Removed bool

	// Sentinel is set for reserved placeholder entries (e.g., "Neutrals").
	Sentinel bool
}

// Emittable reports whether the candidate may become a document, ignoring its position.
func (c Candidate) Emittable() bool {
	return !c.Removed && !c.Sentinel && c.Name != ""
}

// Materialized is one identity already present in a document store.
type Materialized struct {
	// Identity is the store-assigned document identity.
	Identity string `json:"identity" yaml:"identity"`

	// SourceID is the ordering key the document was created from.
	SourceID int `json:"source_id" yaml:"source_id"`
}

// Update pairs a prior identity with its new document body.
type Update struct {
	Identity string   `json:"identity" yaml:"identity"`
	Document Document `json:"document" yaml:"document"`
}

// Stored is a document as read back from a store.
type Stored struct {
	Identity string `json:"identity" yaml:"identity"`
	Document `yaml:",inline"`
}

// Warning is an integrity warning raised while planning a collection.
type Warning struct {
	// Collection is the affected collection name.
	Collection string `json:"collection" yaml:"collection"`

	// Err is the sentinel error classifying the warning.
	Err error `json:"-" yaml:"-"`

	// Message describes the discrepancy.
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (w Warning) Error() string {
	if w.Err == nil {
		return w.Collection + ": " + w.Message
	}
	return w.Collection + ": " + w.Err.Error() + ": " + w.Message
}

// Unwrap returns the classifying sentinel error.
func (w Warning) Unwrap() error {
	return w.Err
}

// Plan is the set of operations computed for one collection.
// It does NOT execute anything; use ApplyPlan for that.
type Plan struct {
	// Collection is the target collection name.
	Collection string `json:"collection" yaml:"collection"`

	// Mode is create, update or blocked. Never a mix of create and update.
	Mode Mode `json:"mode" yaml:"mode"`

	// Drop is set when the prior collection must be dropped before creating.
	Drop bool `json:"drop,omitempty" yaml:"drop,omitempty"`

	// Creates holds the documents to create in ModeCreate.
	Creates []Document `json:"creates,omitempty" yaml:"creates,omitempty"`

	// Updates holds the positional pairs to write in ModeUpdate.
	Updates []Update `json:"updates,omitempty" yaml:"updates,omitempty"`

	// Warnings contains integrity warnings. A blocked plan has at least one.
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary" yaml:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Candidates is the raw collection length, including the leading element.
	Candidates int `json:"candidates" yaml:"candidates"`

	// Eligible counts candidates left after dropping the head, removed, sentinel and unnamed entries.
	Eligible int `json:"eligible" yaml:"eligible"`

	// Prior counts identities already materialized.
	Prior int `json:"prior" yaml:"prior"`

	// Creates counts planned creates.
	Creates int `json:"creates" yaml:"creates"`

	// Updates counts planned updates.
	Updates int `json:"updates" yaml:"updates"`
}

// ReconcileOptions controls how plans are built and applied.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Recreate drops an existing collection and creates it from scratch.
	Recreate bool

	// Confirmed indicates the user has confirmed destructive actions.
	// Dropping a collection requires it.
	Confirmed bool
}

// ApplyResult reports what ApplyPlan wrote for one collection.
type ApplyResult struct {
	Collection string `json:"collection" yaml:"collection"`
	Mode       Mode   `json:"mode" yaml:"mode"`
	Dropped    bool   `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Created    int    `json:"created" yaml:"created"`
	Updated    int    `json:"updated" yaml:"updated"`

	// Identities maps every written document to its identity, in emit order.
	// In dry-run mode only update identities are known.
	Identities []Materialized `json:"identities,omitempty" yaml:"identities,omitempty"`
}

// IdentityOf returns the identity materialized for sourceID, if any.
func (r *ApplyResult) IdentityOf(sourceID int) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, m := range r.Identities {
		if m.SourceID == sourceID {
			return m.Identity, true
		}
	}
	return "", false
}
