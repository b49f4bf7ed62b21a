package world

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"

	"rwk-afmg/core/docstore"
	"rwk-afmg/core/reconcile"
	"rwk-afmg/core/storage"
	"rwk-afmg/feature/world/burgurl"
	"rwk-afmg/feature/world/classify"
	"rwk-afmg/feature/world/importer"
	"rwk-afmg/feature/world/models"
	"rwk-afmg/feature/world/resolve"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// Inspection is the resolved view of an export, without touching the store.
type Inspection struct {
	Classification *classify.Report   `json:"classification" yaml:"classification"`
	Warnings       []string           `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Cultures       []*models.Culture  `json:"cultures,omitempty" yaml:"cultures,omitempty"`
	Religions      []*models.Religion `json:"religions,omitempty" yaml:"religions,omitempty"`
	Countries      []resolve.Country  `json:"countries,omitempty" yaml:"countries,omitempty"`
	Provinces      []resolve.Province `json:"provinces,omitempty" yaml:"provinces,omitempty"`
	Burgs          []resolve.Burg     `json:"burgs,omitempty" yaml:"burgs,omitempty"`
	Rivers         []*models.River    `json:"rivers,omitempty" yaml:"rivers,omitempty"`
}

// MarshalYAML encodes the inspection with the same shape as its JSON form.
// Embedded records are flattened and raw fields shadowed by resolved ones stay hidden.
func (i *Inspection) MarshalYAML() (any, error) {
	data, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	blockStyle(doc.Content[0])
	return doc.Content[0], nil
}

// blockStyle drops the flow and quoting styles carried over from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Service exposes ingestion over a document store and an object bucket.
type Service struct {
	client   storage.Client
	storage  storage.Config
	docs     docstore.Store
	pipeline *importer.Pipeline
	urls     *burgurl.Generator
	logger   *zap.Logger
	group    singleflight.Group
}

// NewService creates a new world service. client may be nil when no bucket is configured.
func NewService(client storage.Client, storageCfg storage.Config, docs docstore.Store, pipeline *importer.Pipeline, urls *burgurl.Generator, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		storage:  storageCfg,
		docs:     docs,
		pipeline: pipeline,
		urls:     urls,
		logger:   logger,
	}
}

// Import runs one ingestion over export text.
func (s *Service) Import(ctx context.Context, text string, opts importer.Options) (*importer.Report, error) {
	return s.pipeline.Run(ctx, text, opts)
}

// ImportObject runs one ingestion over an export stored in the bucket.
// Concurrent imports of the same object with the same options share one run.
func (s *Service) ImportObject(ctx context.Context, object string, opts importer.Options) (*importer.Report, error) {
	if s.client == nil {
		return nil, ErrNoBucket
	}

	key := fmt.Sprintf("%s|%t|%t|%t", object, opts.DryRun, opts.Recreate, opts.Confirmed)
	// The run outlives whichever caller started it.
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (any, error) {
		data, err := storage.ReadObject(runCtx, s.client, s.storage.Bucket, object)
		if err != nil {
			return nil, err
		}
		return s.pipeline.Run(runCtx, string(data), opts)
	})
	if shared {
		s.logger.Debug("Joined in-flight import", zap.String("object", object))
	}
	report, _ := v.(*importer.Report)
	return report, err
}

// ReadExport downloads an export from the bucket.
func (s *Service) ReadExport(ctx context.Context, object string) (string, error) {
	if s.client == nil {
		return "", ErrNoBucket
	}
	data, err := storage.ReadObject(ctx, s.client, s.storage.Bucket, object)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Inspect classifies and resolves an export without writing anything.
func (s *Service) Inspect(text string) (*Inspection, error) {
	store, report, err := classify.Parse(text)
	if err != nil {
		return nil, err
	}

	view := resolve.PassOne(store)
	seed := store.Header().Seed
	return &Inspection{
		Classification: report,
		Warnings:       view.Warnings(),
		Cultures:       store.Cultures(),
		Religions:      store.Religions(),
		Countries:      view.Countries(nil),
		Provinces:      resolve.PassTwo(view, nil),
		Burgs: view.Burgs(nil, func(index int, b *models.Burg) (string, error) {
			return s.urls.Generate(seed, index, b)
		}),
		Rivers: store.Rivers(),
	}, nil
}

// Classify parses an export and reports what each line was recognized as.
func (s *Service) Classify(text string) (*classify.Report, error) {
	_, report, err := classify.Parse(text)
	return report, err
}

// BurgURL derives the city generator URL of one burg in an export.
func (s *Service) BurgURL(text string, id int) (string, error) {
	store, _, err := classify.Parse(text)
	if err != nil {
		return "", err
	}

	burgs := store.Burgs()
	for index, b := range burgs {
		if index == 0 || b.IsEmpty() || b.ID != id {
			continue
		}
		return s.urls.Generate(store.Header().Seed, index, b)
	}
	return "", fmt.Errorf("burg %d: %w", id, ErrNotFound)
}

// Documents lists the materialized documents of one collection.
func (s *Service) Documents(ctx context.Context, collection string) ([]reconcile.Stored, error) {
	if models.ParseKind(collection) == models.KindUnrecognized {
		return nil, fmt.Errorf("collection %q: %w", collection, ErrNotFound)
	}
	return s.docs.Documents(ctx, models.ParseKind(collection).Collection())
}

// Reset drops every materialized collection.
func (s *Service) Reset(ctx context.Context) ([]string, error) {
	names, err := s.docs.Collections(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := s.docs.Drop(ctx, name); err != nil {
			return nil, fmt.Errorf("failed to drop %s: %w", name, err)
		}
		s.logger.Info("Dropped collection", zap.String("collection", name))
	}
	return names, nil
}

// SaveReport uploads a JSON document under the report prefix and returns its object name.
func (s *Service) SaveReport(ctx context.Context, name string, v any) (string, error) {
	if s.client == nil {
		return "", ErrNoBucket
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	object := path.Join(s.storage.ReportPrefix, name+".json")
	if err := storage.WriteObject(ctx, s.client, s.storage.Bucket, object, "application/json", data); err != nil {
		return "", err
	}
	return object, nil
}

// ParseBurgID parses a burg id path parameter.
func ParseBurgID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid burg id %q", raw)
	}
	return id, nil
}
