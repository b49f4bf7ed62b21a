package importer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rwk-afmg/core/events"
	"rwk-afmg/core/metrics"
	"rwk-afmg/core/reconcile"
	"rwk-afmg/feature/world/burgurl"
	"rwk-afmg/feature/world/classify"
	"rwk-afmg/feature/world/graph"
	"rwk-afmg/feature/world/models"
	"rwk-afmg/feature/world/render"
	"rwk-afmg/feature/world/resolve"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options controls one run.
type Options struct {
	// DryRun plans every collection without writing.
	DryRun bool
	// Recreate drops existing collections and creates them from scratch.
	Recreate bool
	// Confirmed allows the destructive part of Recreate.
	Confirmed bool
}

func (o Options) reconcileOptions() reconcile.ReconcileOptions {
	return reconcile.ReconcileOptions{DryRun: o.DryRun, Recreate: o.Recreate, Confirmed: o.Confirmed}
}

// Renderer renders one entity with collection-wide extras.
type Renderer interface {
	Render(name string, iter, extras any) (string, error)
}

// Pipeline runs ingestion against one document store.
// Runs are serialized; a second Run waits for the first to finish.
type Pipeline struct {
	mu        sync.Mutex
	store     reconcile.Store
	renderer  Renderer
	urls      *burgurl.Generator
	publisher events.Publisher
	logger    *zap.Logger
	workers   int
}

// NewPipeline wires a pipeline. A nil publisher discards events.
func NewPipeline(store reconcile.Store, renderer Renderer, urls *burgurl.Generator, publisher events.Publisher, logger *zap.Logger, cfg Config) *Pipeline {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if urls == nil {
		urls = burgurl.New(cfg.BurgURLBase)
	}
	workers := cfg.RenderWorkers
	if workers <= 0 {
		workers = 1
	}
	return &Pipeline{
		store:     store,
		renderer:  renderer,
		urls:      urls,
		publisher: publisher,
		logger:    logger,
		workers:   workers,
	}
}

// Run classifies, resolves and reconciles an export in dependency order:
// Cultures, Provinces, Countries, Burgs, then a Provinces re-sync.
// Integrity warnings are reported, not returned as errors; store failures abort the run.
func (p *Pipeline) Run(ctx context.Context, text string, opts Options) (*Report, error) {
	start := time.Now()

	store, classification, err := classify.Parse(text)
	if err != nil {
		metrics.ImportRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	for kind, n := range classification.Counts {
		metrics.RecordsClassified.WithLabelValues(kind).Add(float64(n))
	}

	// Every step reads the store before writing it.
	p.mu.Lock()
	defer p.mu.Unlock()

	s := newSession(store.Header(), opts, p.logger)
	s.Logger.Info("Import started",
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("recreate", opts.Recreate),
		zap.Any("counts", classification.Counts),
	)
	for _, dup := range classification.Duplicates {
		s.Logger.Warn("Collection appeared more than once; keeping the last", zap.String("kind", dup))
	}

	report := &Report{
		RunID:          s.RunID,
		DryRun:         opts.DryRun,
		StartedAt:      s.StartedAt,
		Classification: classification,
	}

	view := resolve.PassOne(store)
	report.ResolveWarnings = view.Warnings()

	err = p.run(ctx, s, view, report)
	report.Duration = time.Since(start)
	metrics.ImportDuration.Observe(report.Duration.Seconds())

	switch {
	case err != nil:
		metrics.ImportRunsTotal.WithLabelValues("error").Inc()
		s.Logger.Error("Import failed", zap.Error(err))
		return report, err
	case len(report.Warnings()) > 0:
		metrics.ImportRunsTotal.WithLabelValues("warning").Inc()
	default:
		metrics.ImportRunsTotal.WithLabelValues("ok").Inc()
	}

	s.Logger.Info("Import finished", zap.Duration("duration", report.Duration), zap.Int("warnings", len(report.Warnings())))
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, s *Session, view *resolve.View, report *Report) error {
	store := view.Store()

	// Cultures
	cultures := view.Cultures()
	if err := p.step(ctx, s, report, store, stepInput{
		kind: models.KindCultures,
		step: "initial",
		size: len(cultures),
		candidate: func(i int) (models.Record, bool) {
			return cultures[i], false
		},
		render: func(i int) (string, error) {
			return p.renderer.Render(render.TemplateCulture, cultures[i], nil)
		},
	}); err != nil {
		return err
	}

	// Provinces, first pass: members are still IDs.
	if store.Has(models.KindProvinces) {
		provinces := view.Provinces(s.Handles)
		if err := p.step(ctx, s, report, store, provinceStep(p, provinces, "initial")); err != nil {
			return err
		}
	}

	// Countries
	countries := view.Countries(s.Handles)
	listed := make([]resolve.Country, 0, len(countries))
	for _, c := range countries {
		if !c.IsRemoved() {
			listed = append(listed, c)
		}
	}
	extras := map[string]any{"Countries": listed}
	if err := p.step(ctx, s, report, store, stepInput{
		kind: models.KindCountries,
		step: "initial",
		size: len(countries),
		candidate: func(i int) (models.Record, bool) {
			return countries[i], countries[i].Sentinel
		},
		render: func(i int) (string, error) {
			return p.renderer.Render(render.TemplateCountry, countries[i], extras)
		},
	}); err != nil {
		return err
	}

	// Burgs
	seed := s.Header.Seed
	burgs := view.Burgs(s.Handles, func(index int, b *models.Burg) (string, error) {
		return p.urls.Generate(seed, index, b)
	})
	for _, b := range burgs {
		if b.URLError != "" && b.Name != "" {
			report.BurgURLErrors = append(report.BurgURLErrors, fmt.Sprintf("burg %d (%s): %s", b.ID, b.Name, b.URLError))
		}
	}
	if len(report.BurgURLErrors) > 0 {
		s.Logger.Warn("Some burg URLs could not be derived", zap.Int("count", len(report.BurgURLErrors)))
	}
	if err := p.step(ctx, s, report, store, stepInput{
		kind: models.KindBurgs,
		step: "initial",
		size: len(burgs),
		candidate: func(i int) (models.Record, bool) {
			return burgs[i], false
		},
		render: func(i int) (string, error) {
			return p.renderer.Render(render.TemplateBurg, burgs[i], nil)
		},
	}); err != nil {
		return err
	}

	// Provinces, second pass: members carry burg handles.
	if store.Has(models.KindProvinces) {
		provinces := resolve.PassTwo(view, s.Handles)
		resync := provinceStep(p, provinces, "resync")
		// The first pass already dropped the collection; countries hold its handles.
		resync.keep = true
		if err := p.step(ctx, s, report, store, resync); err != nil {
			return err
		}
	}

	return nil
}

func provinceStep(p *Pipeline, provinces []resolve.Province, step string) stepInput {
	return stepInput{
		kind: models.KindProvinces,
		step: step,
		size: len(provinces),
		candidate: func(i int) (models.Record, bool) {
			return provinces[i], false
		},
		render: func(i int) (string, error) {
			return p.renderer.Render(render.TemplateProvince, provinces[i], nil)
		},
	}
}

// stepInput describes one collection in source order.
type stepInput struct {
	kind      models.Kind
	step      string
	size      int
	candidate func(i int) (record models.Record, sentinel bool)
	render    func(i int) (string, error)
	// keep disables Recreate for this step.
	keep bool
}

// step renders the eligible entities of one collection, reconciles it and
// records the resulting handles on the session.
func (p *Pipeline) step(ctx context.Context, s *Session, report *Report, source *graph.Store, in stepInput) error {
	collection := in.kind.Collection()
	l := s.Logger.With(zap.String("collection", collection), zap.String("step", in.step))

	if !source.Has(in.kind) {
		l.Debug("Collection absent from export; skipping")
		return nil
	}

	candidates := make([]reconcile.Candidate, in.size)
	for i := 0; i < in.size; i++ {
		rec, sentinel := in.candidate(i)
		candidates[i] = reconcile.Candidate{
			Document: reconcile.Document{Name: rec.RecordName(), SourceID: rec.RecordID()},
			Removed:  rec.IsRemoved(),
			Sentinel: sentinel || rec.IsEmpty(),
		}
	}

	renderErrs := make([]string, in.size)
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i := 1; i < in.size; i++ {
		if !candidates[i].Emittable() {
			continue
		}
		g.Go(func() error {
			content, err := in.render(i)
			if err != nil {
				renderErrs[i] = fmt.Sprintf("%s %d: %v", in.kind, candidates[i].SourceID, err)
				return nil
			}
			candidates[i].Content = content
			return nil
		})
	}
	_ = g.Wait()

	cr := CollectionReport{Collection: collection, Step: in.step}
	for i, msg := range renderErrs {
		if msg == "" {
			continue
		}
		// A record that fails to render is skipped on its own.
		candidates[i].Sentinel = true
		cr.RenderErrors = append(cr.RenderErrors, msg)
		l.Warn("Failed to render document", zap.String("error", msg))
	}

	opts := s.Options.reconcileOptions()
	if in.keep {
		opts.Recreate = false
	}
	plan, result, err := reconcile.Reconcile(ctx, p.store, collection, candidates, opts)
	if err != nil {
		return err
	}

	cr.Mode = plan.Mode
	cr.Summary = plan.Summary
	cr.Created = result.Created
	cr.Updated = result.Updated
	cr.Dropped = result.Dropped
	for _, w := range plan.Warnings {
		cr.Warnings = append(cr.Warnings, w.Error())
		metrics.IntegrityWarnings.WithLabelValues(collection).Inc()
		l.Warn("Integrity warning; collection left untouched", zap.Error(w))
	}
	report.Collections = append(report.Collections, cr)

	for _, m := range result.Identities {
		s.Handles.Set(in.kind, m.SourceID, m.Identity)
	}

	if result.Created > 0 {
		metrics.DocumentsWritten.WithLabelValues(collection, string(reconcile.ModeCreate)).Add(float64(result.Created))
	}
	if result.Updated > 0 {
		metrics.DocumentsWritten.WithLabelValues(collection, string(reconcile.ModeUpdate)).Add(float64(result.Updated))
	}

	l.Info("Collection reconciled",
		zap.String("mode", string(plan.Mode)),
		zap.Int("eligible", plan.Summary.Eligible),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("warnings", len(plan.Warnings)),
	)

	p.publish(ctx, s, cr)
	return nil
}

func (p *Pipeline) publish(ctx context.Context, s *Session, cr CollectionReport) {
	eventType := events.EventCollectionUpdated
	switch cr.Mode {
	case reconcile.ModeCreate:
		eventType = events.EventCollectionCreated
	case reconcile.ModeBlocked:
		eventType = events.EventCollectionBlocked
	}

	err := p.publisher.Publish(ctx, &events.CollectionEvent{
		EventType:  eventType,
		RunID:      s.RunID,
		Seed:       s.Header.Seed,
		Collection: cr.Collection,
		Mode:       string(cr.Mode),
		Created:    cr.Created,
		Updated:    cr.Updated,
		Warnings:   cr.Warnings,
		DryRun:     s.Options.DryRun,
	})
	if err != nil {
		s.Logger.Warn("Failed to publish reconcile event", zap.String("collection", cr.Collection), zap.Error(err))
	}
}
