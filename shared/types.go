package shared

// Config is the application configuration loaded from .satchel.yaml.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// StorageConfig holds the locations of the JSON documents the books
// are persisted in. Relative paths are resolved against the config
// file's directory.
type StorageConfig struct {
	Contacts string `mapstructure:"contacts" validate:"required"`
	Notes    string `mapstructure:"notes" validate:"required"`
}
