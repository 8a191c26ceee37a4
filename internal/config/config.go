package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/imdario/mergo"
	app_info "github.com/robgonnella/deckhand/internal/app-info"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ActingAs represents the identity this process announces on the network
type ActingAs struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Source  string `yaml:"source" mapstructure:"source"`
	Token   string `yaml:"token" mapstructure:"token"`
}

// Ignore represents announcements that should never be connected to
type Ignore struct {
	Sources          []string `yaml:"sources" mapstructure:"sources"`
	SoftwareNames    []string `yaml:"softwareNames" mapstructure:"softwareNames"`
	SoftwarePrefixes []string `yaml:"softwarePrefixes" mapstructure:"softwarePrefixes"`
}

// MQTT represents the optional event bridge configuration
type MQTT struct {
	Enabled     bool   `yaml:"enabled" mapstructure:"enabled"`
	Broker      string `yaml:"broker" mapstructure:"broker"`
	ClientID    string `yaml:"clientId" mapstructure:"clientId"`
	TopicPrefix string `yaml:"topicPrefix" mapstructure:"topicPrefix"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	MaxRetries        int           `yaml:"maxRetries" mapstructure:"maxRetries"`
	DownloadDbSources *bool         `yaml:"downloadDbSources" mapstructure:"downloadDbSources"`
	ActingAs          ActingAs      `yaml:"actingAs" mapstructure:"actingAs"`
	Ignore            Ignore        `yaml:"ignore" mapstructure:"ignore"`
	RetryInterval     time.Duration `yaml:"retryInterval" mapstructure:"retryInterval"`
	BarrierInterval   time.Duration `yaml:"barrierInterval" mapstructure:"barrierInterval"`
	CacheDir          string        `yaml:"cacheDir" mapstructure:"cacheDir"`
	DatabaseFile      string        `yaml:"databaseFile" mapstructure:"databaseFile"`
	MQTT              MQTT          `yaml:"mqtt" mapstructure:"mqtt"`
}

// ShouldDownloadDbSources reports whether database sources are downloaded
// from each connected device. Unset means yes.
func (c Config) ShouldDownloadDbSources() bool {
	return c.DownloadDbSources == nil || *c.DownloadDbSources
}

// Validate checks the config for values the orchestrator cannot run with
func (c Config) Validate() error {
	if c.MaxRetries < 1 {
		return fmt.Errorf("maxRetries must be at least 1: got %d", c.MaxRetries)
	}

	if c.ActingAs.Source == "" {
		return errors.New("actingAs.source cannot be empty")
	}

	if c.RetryInterval < 0 || c.BarrierInterval <= 0 {
		return errors.New("retryInterval and barrierInterval must be positive")
	}

	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return errors.New("mqtt.broker is required when mqtt is enabled")
	}

	return nil
}

// Default returns the default configuration
func Default() *Config {
	download := true

	cacheDir, _ := viper.Get("cache-dir").(string)
	dbFile, _ := viper.Get("database-file").(string)

	return &Config{
		MaxRetries:        3,
		DownloadDbSources: &download,
		ActingAs: ActingAs{
			Name:    app_info.NAME,
			Version: app_info.VERSION,
			Source:  app_info.NAME,
		},
		Ignore: Ignore{
			Sources: []string{},
			SoftwareNames: []string{
				"OfflineAnalyzer",
				"SoundSwitch",
				"Resolume",
				"JM08",
				"SSS0",
			},
			SoftwarePrefixes: []string{
				"SoundSwitch",
				"Resolume",
			},
		},
		RetryInterval:   time.Millisecond * 500,
		BarrierInterval: time.Second * 3,
		CacheDir:        cacheDir,
		DatabaseFile:    dbFile,
		MQTT: MQTT{
			ClientID:    app_info.NAME,
			TopicPrefix: app_info.NAME,
		},
	}
}

// Load returns unmarshaled data structure of user provided config with any
// unset values filled in from Default
func Load(confPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(confPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var conf Config

	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}

	// mergo dereferences pointers and treats an explicit false as unset
	var download *bool

	if conf.DownloadDbSources != nil {
		explicit := *conf.DownloadDbSources
		download = &explicit
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	if download != nil {
		conf.DownloadDbSources = download
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Write writes the config as yaml to the provided path
func Write(conf Config, confPath string) error {
	file, err := os.Create(confPath)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
