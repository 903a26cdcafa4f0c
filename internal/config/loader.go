package config

import (
	"errors"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Loader reads config.yaml from the search paths and overlays environment
// variables prefixed with the given prefix (dots become underscores, so
// PREFIX_APP_HTTP_PORT overrides app.http_port).
type Loader struct {
	envPrefix   string
	fileName    string
	searchPaths []string
}

type LoaderOption func(*Loader)

func WithConfigFileName(name string) LoaderOption {
	return func(l *Loader) { l.fileName = name }
}

func WithConfigFileSearchPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.searchPaths = append(l.searchPaths, paths...) }
}

func NewLoader(envPrefix string, opts ...LoaderOption) *Loader {
	l := &Loader{
		envPrefix: envPrefix,
		fileName:  "config",
	}
	for _, opt := range opts {
		opt(l)
	}
	if len(l.searchPaths) == 0 {
		l.searchPaths = []string{"/config", "."}
	}
	return l
}

func (l *Loader) Load(target interface{}) error {
	v := viper.New()
	v.SetConfigName(l.fileName)
	v.SetConfigType("yaml")
	for _, path := range l.searchPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(l.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when everything comes from the environment.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return v.Unmarshal(target, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
}
