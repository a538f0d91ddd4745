package config_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomberos-cl/runkit/pkg/config"
)

type defaultsConfig struct {
	Lang   string `env:"RUNKIT_TEST_DEFAULT_LANG" envDefault:"es"`
	Strict bool   `env:"RUNKIT_TEST_DEFAULT_STRICT" envDefault:"true"`
	Limit  int    `env:"RUNKIT_TEST_DEFAULT_LIMIT" envDefault:"64"`
}

type successConfig struct {
	Lang   string `env:"RUNKIT_TEST_SUCCESS_LANG" envDefault:"es"`
	Strict bool   `env:"RUNKIT_TEST_SUCCESS_STRICT" envDefault:"true"`
	Limit  int    `env:"RUNKIT_TEST_SUCCESS_LIMIT" envDefault:"64"`
}

type singletonConfig struct {
	Value string `env:"RUNKIT_TEST_SINGLETON" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"RUNKIT_TEST_REQUIRED,required"`
}

type invalidConfig struct {
	Limit int `env:"RUNKIT_TEST_INVALID_LIMIT"`
}

type fileConfig struct {
	Lang         string `env:"RUNKIT_TEST_LANG"`
	Strict       bool   `env:"RUNKIT_TEST_STRICT" envDefault:"true"`
	Shared       string `env:"RUNKIT_TEST_SHARED"`
	Quoted       string `env:"RUNKIT_TEST_QUOTED"`
	OnlyOverride string `env:"RUNKIT_TEST_ONLY_OVERRIDE"`
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Unsetenv(k)
	}
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("RUNKIT_TEST_SUCCESS_LANG", "en")
	t.Setenv("RUNKIT_TEST_SUCCESS_STRICT", "false")
	t.Setenv("RUNKIT_TEST_SUCCESS_LIMIT", "10")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 10, cfg.Limit)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, "RUNKIT_TEST_DEFAULT_LANG", "RUNKIT_TEST_DEFAULT_STRICT", "RUNKIT_TEST_DEFAULT_LIMIT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "es", cfg.Lang)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 64, cfg.Limit)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, "RUNKIT_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	t.Setenv("RUNKIT_TEST_REQUIRED", "now set")
	require.NoError(t, config.Load(&cfg), "failed parse is not cached")
	assert.Equal(t, "now set", cfg.Value)
}

func TestLoad_InvalidValue(t *testing.T) {
	config.ResetCache()
	t.Setenv("RUNKIT_TEST_INVALID_LIMIT", "many")

	var cfg invalidConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("RUNKIT_TEST_SINGLETON", "first")

	var a singletonConfig
	require.NoError(t, config.Load(&a))

	t.Setenv("RUNKIT_TEST_SINGLETON", "second")

	var b singletonConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)

	var c singletonConfig
	require.NoError(t, config.ForceReload(&c))
	assert.Equal(t, "second", c.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("RUNKIT_TEST_SINGLETON", "shared")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg singletonConfig
			if err := config.Load(&cfg); err == nil {
				results[i] = cfg.Value
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, "RUNKIT_TEST_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("RUNKIT_TEST_REQUIRED", "x")
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

var fileKeys = []string{
	"RUNKIT_TEST_LANG",
	"RUNKIT_TEST_STRICT",
	"RUNKIT_TEST_SHARED",
	"RUNKIT_TEST_QUOTED",
	"RUNKIT_TEST_ONLY_OVERRIDE",
}

func TestLoadEnv_SingleFile(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, fileKeys...)

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "base", cfg.Shared)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Empty(t, cfg.OnlyOverride)
}

func TestLoadEnv_LaterFileWins(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, fileKeys...)

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "override", cfg.Shared)
	assert.Equal(t, "yes", cfg.OnlyOverride)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, fileKeys...)
	t.Setenv("RUNKIT_TEST_SHARED", "from process")

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))
	assert.Equal(t, "from process", os.Getenv("RUNKIT_TEST_SHARED"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	unsetEnv(t, fileKeys...)

	err := config.LoadEnv("testdata/missing.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.override") })
}
