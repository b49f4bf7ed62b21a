package importer

// Config holds ingestion pipeline settings.
type Config struct {
	// BurgURLBase is the city generator the burg URLs point at.
	BurgURLBase string `mapstructure:"burg_url_base" default:"http://fantasycities.watabou.ru/" validate:"required,url"`
	// RenderWorkers bounds concurrent template rendering within one collection.
	RenderWorkers int `mapstructure:"render_workers" default:"4" validate:"gte=1,lte=64"`
	// TemplateDir replaces the embedded templates when set.
	TemplateDir string `mapstructure:"template_dir" default:""`
}
