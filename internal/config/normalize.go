package config

// Defaults applied by Normalize for fields left empty.
const (
	DefaultTitle          = "Car Quiz"
	DefaultSubtitle       = "Guess the make, model, and year from the photo"
	DefaultDataDir        = "data/cars"
	DefaultIndexDir       = "index"
	DefaultAssetsDir      = "assets"
	DefaultResultsDir     = "results"
	DefaultNumChoices     = 4
	DefaultHistoryLimit   = 25
	DefaultThumbnailWidth = 640
)

func Normalize(cfg *Config) {
	if cfg.UI.Title == "" {
		cfg.UI.Title = DefaultTitle
	}
	if cfg.UI.Subtitle == "" {
		cfg.UI.Subtitle = DefaultSubtitle
	}
	if cfg.Paths.DataDir == "" {
		cfg.Paths.DataDir = DefaultDataDir
	}
	if cfg.Paths.IndexDir == "" {
		cfg.Paths.IndexDir = DefaultIndexDir
	}
	if cfg.Paths.AssetsDir == "" {
		cfg.Paths.AssetsDir = DefaultAssetsDir
	}
	if cfg.Paths.ResultsDir == "" {
		cfg.Paths.ResultsDir = DefaultResultsDir
	}
	if cfg.Quiz.NumChoices == 0 {
		cfg.Quiz.NumChoices = DefaultNumChoices
	}
	if cfg.Quiz.HistoryLimit == 0 {
		cfg.Quiz.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Images.ThumbnailWidth == 0 {
		cfg.Images.ThumbnailWidth = DefaultThumbnailWidth
	}
}
