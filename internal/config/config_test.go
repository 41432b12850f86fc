package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/dungeonforge/internal/world"
)

func validConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Seed:      []int{1, 2, 3, 8},
			RoomCount: 19,
			MaxTries:  10,
		},
		Tuning: world.DefaultTuning(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "dungeonforge",
		},
		Render: RenderConfig{
			Mode:  "ascii",
			Color: "auto",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []int{1, 2, 3, 8}, cfg.Generation.Seed)
	assert.Equal(t, 19, cfg.Generation.RoomCount)
	assert.Equal(t, 10, cfg.Generation.MaxTries)
	assert.Equal(t, world.DefaultTuning(), cfg.Tuning)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "ascii", cfg.Render.Mode)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
generation:
  seed: [4, 5]
  room_count: 30
  max_tries: 25
tuning:
  lock_divisor: 3
logging:
  level: debug
  format: console
render:
  mode: tui
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5}, cfg.Generation.Seed)
	assert.Equal(t, 30, cfg.Generation.RoomCount)
	assert.Equal(t, 25, cfg.Generation.MaxTries)
	assert.Equal(t, 3, cfg.Tuning.LockDivisor)
	assert.Equal(t, 2, cfg.Tuning.DoorRatio, "unset tuning keeps its default")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "tui", cfg.Render.Mode)
	assert.Equal(t, "auto", cfg.Render.Color)
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "dungeonforge.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Tuning, cfg.Tuning)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 19, cfg.Generation.RoomCount)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DUNGEONFORGE_GENERATION_ROOM_COUNT", "42")
	t.Setenv("DUNGEONFORGE_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Generation.RoomCount)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViperRejectsInvalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("render.mode", "canvas")
	_, err := LoadFromViper(v)
	assert.ErrorContains(t, err, "render.mode")
}

func TestValidateGeneration(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.RoomCount = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Generation.MaxTries = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Generation.Seed = nil
	assert.NoError(t, cfg.Validate(), "an empty seed is valid")
}

func TestValidateTuning(t *testing.T) {
	cfg := validConfig()
	cfg.Tuning.LockDivisor = 0
	assert.ErrorContains(t, cfg.Validate(), "tuning")

	cfg = validConfig()
	cfg.Tuning.AbortVariance = 300
	assert.Error(t, cfg.Validate())
}

func TestValidateLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateTelemetry(t *testing.T) {
	cfg := validConfig()
	cfg.Telemetry.Enabled = true
	assert.NoError(t, cfg.Validate())

	cfg.Telemetry.ServiceName = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRender(t *testing.T) {
	for _, color := range []string{"auto", "always", "never"} {
		cfg := validConfig()
		cfg.Render.Color = color
		assert.NoError(t, cfg.Validate(), "color %q should be valid", color)
	}
	cfg := validConfig()
	cfg.Render.Color = "sometimes"
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyRoomCountPositive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rooms := rapid.IntRange(-1000, 1000).Draw(t, "room_count")
		cfg := validConfig()
		cfg.Generation.RoomCount = rooms
		err := cfg.Validate()
		if rooms >= 1 && err != nil {
			t.Fatalf("valid room count %d rejected: %v", rooms, err)
		}
		if rooms < 1 && err == nil {
			t.Fatalf("invalid room count %d accepted", rooms)
		}
	})
}

func TestPropertyVarianceRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		variance := rapid.IntRange(-512, 512).Draw(t, "variance")
		cfg := validConfig()
		cfg.Tuning.TurnVariance = variance
		valid := variance >= 0 && variance <= 256
		if err := cfg.Validate(); (err == nil) != valid {
			t.Fatalf("turn variance %d: valid=%v, err=%v", variance, valid, err)
		}
	})
}
