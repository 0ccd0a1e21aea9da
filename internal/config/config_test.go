package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat(".verbex.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("conf.YML"))
	assert.Equal(t, FormatTOML, DetectFormat("verbex.toml"))
	assert.Equal(t, FormatYAML, DetectFormat("noext"))
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: Email
package: patterns
engine: regexp2
test_file: true
inputs:
  - a@b.com
  - nope
`)
	cfg, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Email", cfg.Name)
	assert.Equal(t, "patterns", cfg.Package)
	assert.Equal(t, "regexp2", cfg.Engine)
	assert.True(t, cfg.TestFile)
	assert.Equal(t, []string{"a@b.com", "nope"}, cfg.Inputs)
	assert.False(t, cfg.Verbose)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
name = "Date"
verbose = true
no_color = true
`)
	cfg, err := Parse(data, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "Date", cfg.Name)
	assert.Equal(t, "main", cfg.Package, "unset keys keep defaults")
	assert.Equal(t, "auto", cfg.Engine)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"bad yaml", "name: [", FormatYAML, "YAML parse error"},
		{"bad toml", "name = ", FormatTOML, "TOML parse error"},
		{"bad engine", "engine: pcre", FormatYAML, `unknown engine "pcre"`},
		{"empty name", "name: ''", FormatYAML, "name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"verbex.yaml", "verbex.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := Default()
			want.Name = "Lower"
			want.Inputs = []string{"abc"}

			require.NoError(t, Write(path, want))
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("name: Local\n"), 0644))
	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "Local", cfg.Name)

	_, err = Resolve("missing.yaml")
	assert.ErrorContains(t, err, "read config")
}
