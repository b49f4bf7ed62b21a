package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"rwk-afmg/core/config"
	"rwk-afmg/core/docstore"
	"rwk-afmg/core/events"
	"rwk-afmg/core/logger"
	"rwk-afmg/core/storage"
	"rwk-afmg/feature/world"
	"rwk-afmg/feature/world/burgurl"
	"rwk-afmg/feature/world/importer"
	"rwk-afmg/feature/world/render"

	"go.uber.org/zap"
)

// app bundles everything a command needs to run the world service.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	docs      docstore.Store
	client    storage.Client
	publisher events.Publisher
	feature   *world.Feature
	closeDocs func() error
}

func newApp(ctx context.Context) (*app, error) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	// 3. Open the document store
	docs, closeDocs, err := docstore.Open(ctx, cfg.Store, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s document store: %w", cfg.Store.Backend, err)
	}
	logg = logg.With(zap.String("store", cfg.Store.Backend))

	// 4. Object storage (Optional)
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Object storage unavailable; bucket operations are disabled", zap.Error(err))
		client = nil
	}

	// 5. Rendering and the pipeline
	renderer, err := newRenderer(cfg.Import)
	if err != nil {
		_ = closeDocs()
		return nil, err
	}
	publisher := events.New(cfg.Kafka, logg)
	urls := burgurl.New(cfg.Import.BurgURLBase)
	pipeline := importer.NewPipeline(docs, renderer, urls, publisher, logg, cfg.Import)

	return &app{
		cfg:       cfg,
		logger:    logg,
		docs:      docs,
		client:    client,
		publisher: publisher,
		feature:   world.NewFeature(client, cfg.Storage, docs, pipeline, urls, logg),
		closeDocs: closeDocs,
	}, nil
}

func newRenderer(cfg importer.Config) (*render.Renderer, error) {
	if cfg.TemplateDir == "" {
		return render.New()
	}
	r, err := render.NewFromDir(cfg.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates from %s: %w", cfg.TemplateDir, err)
	}
	return r, nil
}

func (a *app) service() *world.Service {
	return a.feature.Service()
}

func (a *app) Close() error {
	err := errors.Join(a.publisher.Close(), a.closeDocs())
	_ = a.logger.Sync()
	return err
}

// readExport loads an export from a local file or, when object is set, from the bucket.
func (a *app) readExport(ctx context.Context, args []string, object string) (string, string, error) {
	if object != "" {
		text, err := a.service().ReadExport(ctx, object)
		return text, object, err
	}
	if len(args) == 0 {
		return "", "", errors.New("an export file or --object is required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read export: %w", err)
	}
	return string(data), args[0], nil
}
