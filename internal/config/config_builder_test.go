package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Log: Log{Level: "warn", File: "/tmp/a.log"}},
		&StructuredConfig{Log: Log{Level: "debug"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/a.log", cfg.Log.File)
}

// TestBuild_InvalidLogLevel verifies that validation runs on the merged result.
func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "loud"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_SetsLogLevel(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.CopyEnabled())
	assert.Empty(t, cfg.Request)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("B64U16_LOG_LEVEL", "info")
	t.Setenv("B64U16_COPY", "true")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "info", b.configs[0].Log.Level)
	assert.True(t, b.configs[0].CopyEnabled())
}

// TestWithEnv_SetsErrorOnBadBool verifies that conversion failures are kept.
func TestWithEnv_SetsErrorOnBadBool(t *testing.T) {
	t.Setenv("B64U16_TUI", "sometimes")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(&StructuredConfig{}))
}

// TestWithFlags_NilIsIgnored verifies that a nil flag config adds nothing.
func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FlagsOverrideEnv verifies the documented priority.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("B64U16_LOG_LEVEL", "info")
	t.Setenv("B64U16_LOG_FILE", "/var/log/b64u16.log")

	flags, err := parseFlags([]string{"--log-level", "error", "-e", "hi"})
	require.NoError(t, err)

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/var/log/b64u16.log", cfg.Log.File)
	assert.Equal(t, "hi", cfg.Request.Encode)
}

// TestGetStructuredConfig_FalseFlagOverridesEnv verifies that an explicit
// --copy=false / --tui=false switches off values enabled in the environment.
func TestGetStructuredConfig_FalseFlagOverridesEnv(t *testing.T) {
	t.Setenv("B64U16_COPY", "true")
	t.Setenv("B64U16_TUI", "true")

	flags, err := parseFlags([]string{"--copy=false", "--tui=false"})
	require.NoError(t, err)

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.False(t, cfg.CopyEnabled())
	assert.False(t, cfg.TUIEnabled())
}

// TestGetStructuredConfig_UnsetFlagKeepsEnv verifies that booleans not given
// on the command line keep the environment value.
func TestGetStructuredConfig_UnsetFlagKeepsEnv(t *testing.T) {
	t.Setenv("B64U16_COPY", "true")
	t.Setenv("B64U16_TUI", "false")

	flags, err := parseFlags([]string{"--tui"})
	require.NoError(t, err)

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.True(t, cfg.CopyEnabled())
	assert.True(t, cfg.TUIEnabled())
}

// TestGetStructuredConfig_RequestNotReadFromEnv verifies that the payload
// string cannot leak in through the environment.
func TestGetStructuredConfig_RequestNotReadFromEnv(t *testing.T) {
	t.Setenv("B64U16_ENCODE", "from-env")
	t.Setenv("B64U16_REQUEST_ENCODE", "from-env")

	cfg, err := GetStructuredConfig(&StructuredConfig{})
	require.NoError(t, err)

	assert.Empty(t, cfg.Request.Encode)
}
