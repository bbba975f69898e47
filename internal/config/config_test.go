package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "flat", cfg.Style)
	assert.True(t, cfg.Cache.Enabled)
	assert.Zero(t, cfg.Cache.TTL)
	assert.Zero(t, cfg.Render.Workers)
	assert.Equal(t, badge.Flat, cfg.BadgeStyle())
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "stackbadge.toml", "style = \"social\"\n[cache]\nttl = \"1h\"\n[render]\nworkers = 3\n"},
		{"yaml", "stackbadge.yaml", "style: social\ncache:\n  ttl: 1h\nrender:\n  workers: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			cfg, err := Load(v, writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, badge.Social, cfg.BadgeStyle())
			assert.Equal(t, time.Hour, cfg.Cache.TTL)
			assert.Equal(t, 3, cfg.Render.Workers)
			assert.True(t, cfg.Cache.Enabled)
			assert.NotEmpty(t, File(v))
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("STACKBADGE_STYLE", "plastic")
	t.Setenv("STACKBADGE_CACHE_ENABLED", "false")
	t.Setenv("STACKBADGE_FONTS_DIR", "/opt/fonts")

	path := writeFile(t, "stackbadge.toml", "style = \"social\"\n")
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "plastic", cfg.Style)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "/opt/fonts", cfg.Fonts.Dir)
}

func TestLoadOverride(t *testing.T) {
	v := viper.New()
	v.Set("render.workers", 8)
	cfg, err := Load(v, writeFile(t, "stackbadge.yaml", "render:\n  workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Render.Workers)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Load(viper.New(), writeFile(t, "stackbadge.toml", "style = \"rounded\"\n"))
	var ve *errors.ValidationError
	require.True(t, stderrors.As(err, &ve))
	assert.Equal(t, "style", ve.Field)

	_, err = Load(viper.New(), writeFile(t, "stackbadge.yaml", "render:\n  workers: -1\n"))
	require.True(t, stderrors.As(err, &ve))
	assert.Equal(t, "render.workers", ve.Field)
}

func TestExampleConfig(t *testing.T) {
	cfg, err := Load(viper.New(), filepath.Join("..", "..", "examples", "stackbadge.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
