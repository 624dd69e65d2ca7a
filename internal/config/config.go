// Package config loads codec settings from defaults, an optional YAML file
// and SEGY_* environment variables.
package config

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/errs"
	"github.com/robert-malhotra/go-segy/segy"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "SEGY"

// Keys.
const (
	KeyBlockSize      = "block_size"
	KeyByteOrder      = "byte_order"
	KeyStrictLength   = "strict_length"
	KeySampleInterval = "sample_interval"
	KeyDebug          = "debug"
)

// Config holds codec and CLI settings.
type Config struct {
	BlockSize      int    `mapstructure:"block_size"`
	ByteOrder      string `mapstructure:"byte_order"`
	StrictLength   bool   `mapstructure:"strict_length"`
	SampleInterval int    `mapstructure:"sample_interval"`
	Debug          bool   `mapstructure:"debug"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBlockSize, binpkg.DefaultBlockSize)
	v.SetDefault(KeyByteOrder, "big")
	v.SetDefault(KeyStrictLength, false)
	v.SetDefault(KeySampleInterval, segy.DefaultSampleInterval)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. An empty path skips the config file.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if _, err := cfg.Order(); err != nil {
		return nil, err
	}
	if cfg.BlockSize <= 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "%s must be positive, got %d", KeyBlockSize, cfg.BlockSize)
	}
	return cfg, nil
}

// Order returns the configured byte order.
func (c *Config) Order() (binary.ByteOrder, error) {
	switch strings.ToLower(c.ByteOrder) {
	case "", "big", "bigendian", "big-endian":
		return binary.BigEndian, nil
	case "little", "littleendian", "little-endian":
		return binary.LittleEndian, nil
	default:
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "%s %q", KeyByteOrder, c.ByteOrder)
	}
}

// ReadOptions returns the read options the configuration selects.
func (c *Config) ReadOptions(logger *zap.Logger) ([]segy.Option, error) {
	order, err := c.Order()
	if err != nil {
		return nil, err
	}
	opts := []segy.Option{
		segy.WithLogger(logger),
		segy.WithByteOrder(order),
		segy.WithBlockSize(c.BlockSize),
	}
	if c.StrictLength {
		opts = append(opts, segy.WithStrictLength())
	}
	return opts, nil
}

// WriteOptions returns the write options the configuration selects.
func (c *Config) WriteOptions(logger *zap.Logger) ([]segy.Option, error) {
	order, err := c.Order()
	if err != nil {
		return nil, err
	}
	return []segy.Option{
		segy.WithLogger(logger),
		segy.WithByteOrder(order),
		segy.WithSampleInterval(c.SampleInterval),
	}, nil
}
