package world

import (
	"rwk-afmg/core/docstore"
	"rwk-afmg/core/storage"
	"rwk-afmg/feature/world/burgurl"
	"rwk-afmg/feature/world/importer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new World feature.
func NewFeature(client storage.Client, storageCfg storage.Config, docs docstore.Store, pipeline *importer.Pipeline, urls *burgurl.Generator, logger *zap.Logger) *Feature {
	svc := NewService(client, storageCfg, docs, pipeline, urls, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "world"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
