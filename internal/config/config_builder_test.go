package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom merges the given sources in order through the builder, skipping
// the env and flag stages so tests stay hermetic.
func buildFrom(t *testing.T, sources ...*StructuredConfig) (*StructuredConfig, error) {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, sources...)
	return b.build()
}

func validBase() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{Address: "0.0.0.0:5000", RequestTimeout: 30 * time.Second},
		Storage: Storage{DB: DB{
			Host: "localhost", Port: 5432, User: "postgres", Name: "veridict", SSLMode: "disable",
		}},
		Classifier: Classifier{
			Address: "http://127.0.0.1:8601", RealLabelID: 1, RequestTimeout: 15 * time.Second,
		},
	}
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	override := &StructuredConfig{Server: Server{Address: "10.0.0.1:9000"}}

	cfg, err := buildFrom(t, override, validBase())
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1:9000", cfg.Server.Address)
	// untouched fields fall through to the later source
	assert.Equal(t, "localhost", cfg.Storage.DB.Host)
}

func TestBuild_LaterSourceFillsGaps(t *testing.T) {
	cfg, err := buildFrom(t, &StructuredConfig{}, validBase())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Address)
	assert.Equal(t, 1, cfg.Classifier.RealLabelID)
}

func TestBuild_ValidationFailure(t *testing.T) {
	broken := validBase()
	broken.Storage.DB.Name = ""

	_, err := buildFrom(t, broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStorageConfigs))
}

func TestBuild_BuilderErrorPropagates(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source exploded")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source exploded")
}

func TestValidate_ClassifierChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
	}{
		{"empty address", func(cfg *StructuredConfig) { cfg.Classifier.Address = "  " }},
		{"negative real label id", func(cfg *StructuredConfig) { cfg.Classifier.RealLabelID = -1 }},
		{"zero timeout", func(cfg *StructuredConfig) { cfg.Classifier.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			err := cfg.validate()
			assert.True(t, errors.Is(err, ErrInvalidClassifierConfigs))
		})
	}
}
