package pbnconfig

import (
	"os"

	"github.com/spf13/viper"
)

const (
	configFileName = ".pbnfmtrc"
	configFileType = "yaml"

	// KeyStrict, when true, tells pbnfmt render to treat a document that
	// needed any change to reach canonical form as an error, rather than
	// silently emitting the canonical bytes.
	KeyStrict = "strict"
)

// Config holds the CLI's user-tunable knobs.
type Config struct {
	Strict bool
}

// Load reads ~/.pbnfmtrc.yaml if present, falling back to defaults
// otherwise. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault(KeyStrict, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{Strict: v.GetBool(KeyStrict)}, nil
}
