package config

// Config is the parsed config.yaml. Environment variables override file
// values field by field.
type Config struct {
	Version int          `yaml:"version" env:"CARQUIZ_VERSION"`
	UI      UIConfig     `yaml:"ui"`
	Paths   PathsConfig  `yaml:"paths"`
	Quiz    QuizConfig   `yaml:"quiz"`
	Images  ImagesConfig `yaml:"images"`
}

type UIConfig struct {
	Title    string `yaml:"title" env:"CARQUIZ_UI_TITLE"`
	Subtitle string `yaml:"subtitle" env:"CARQUIZ_UI_SUBTITLE"`
}

type PathsConfig struct {
	DataDir    string `yaml:"data_dir" env:"CARQUIZ_DATA_DIR"`
	IndexDir   string `yaml:"index_dir" env:"CARQUIZ_INDEX_DIR"`
	AssetsDir  string `yaml:"assets_dir" env:"CARQUIZ_ASSETS_DIR"`
	ResultsDir string `yaml:"results_dir" env:"CARQUIZ_RESULTS_DIR"`
}

type QuizConfig struct {
	NumChoices   int `yaml:"num_choices" env:"CARQUIZ_NUM_CHOICES"`
	HistoryLimit int `yaml:"history_limit" env:"CARQUIZ_HISTORY_LIMIT"`
}

type ImagesConfig struct {
	ThumbnailWidth int `yaml:"thumbnail_width" env:"CARQUIZ_THUMBNAIL_WIDTH"`
}
