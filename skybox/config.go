package skybox

import (
	"errors"
	"fmt"

	"github.com/gogpu/orrery/paint"
)

// MaxStreaks bounds Config.StreakCount.
const MaxStreaks = 16

// ErrInvalidConfig is returned by NewGenerator for out of range settings.
var ErrInvalidConfig = errors.New("skybox: invalid config")

// Config holds the tunable parameters of the sky.
type Config struct {
	Seed uint32 `yaml:"seed"`

	// NebulaScale is the base frequency of the large nebula layer.
	NebulaScale float32 `yaml:"nebula_scale"`
	// NebulaDrift is the speed of the fine nebula layer along +Y.
	NebulaDrift  float32    `yaml:"nebula_drift"`
	NebulaDark   paint.RGBA `yaml:"-"`
	NebulaBright paint.RGBA `yaml:"-"`

	// StarDensity is the number of star cells per unit of direction.
	StarDensity float32 `yaml:"star_density"`
	// A cell holds a dim star when its hash exceeds DimThreshold and a
	// bright one above BrightThreshold.
	DimThreshold    float32 `yaml:"dim_threshold"`
	BrightThreshold float32 `yaml:"bright_threshold"`

	StreakCount int `yaml:"streak_count"`
	// CycleLength is the streak period in seconds. Each streak is visible
	// for the first VisibleFraction of its cycle.
	CycleLength     float32 `yaml:"cycle_length"`
	VisibleFraction float32 `yaml:"visible_fraction"`
	// StreakLength, StreakTravel and StreakWidth are angles in radians.
	StreakLength float32 `yaml:"streak_length"`
	StreakTravel float32 `yaml:"streak_travel"`
	StreakWidth  float32 `yaml:"streak_width"`
}

// DefaultConfig returns the sky used by the sample system.
func DefaultConfig() Config {
	return Config{
		Seed:            0x5eed,
		NebulaScale:     2.5,
		NebulaDrift:     0.03,
		NebulaDark:      paint.RGB8(5, 8, 20),
		NebulaBright:    paint.RGB8(45, 68, 160),
		StarDensity:     300,
		DimThreshold:    0.995,
		BrightThreshold: 0.9985,
		StreakCount:     3,
		CycleLength:     7.5,
		VisibleFraction: 0.8,
		StreakLength:    0.12,
		StreakTravel:    0.9,
		StreakWidth:     0.003,
	}
}

// Validate reports the first out of range setting.
func (c *Config) Validate() error {
	switch {
	case !(c.NebulaScale > 0):
		return fmt.Errorf("%w: nebula scale %v", ErrInvalidConfig, c.NebulaScale)
	case !(c.StarDensity > 0):
		return fmt.Errorf("%w: star density %v", ErrInvalidConfig, c.StarDensity)
	case !(c.DimThreshold > 0 && c.DimThreshold <= c.BrightThreshold && c.BrightThreshold < 1):
		return fmt.Errorf("%w: star thresholds %v, %v", ErrInvalidConfig, c.DimThreshold, c.BrightThreshold)
	case c.StreakCount < 0 || c.StreakCount > MaxStreaks:
		return fmt.Errorf("%w: %d streaks, max %d", ErrInvalidConfig, c.StreakCount, MaxStreaks)
	case c.StreakCount > 0 && !(c.CycleLength > 0):
		return fmt.Errorf("%w: cycle length %v", ErrInvalidConfig, c.CycleLength)
	case c.StreakCount > 0 && !(c.VisibleFraction > 0 && c.VisibleFraction <= 1):
		return fmt.Errorf("%w: visible fraction %v", ErrInvalidConfig, c.VisibleFraction)
	case c.StreakCount > 0 && !(c.StreakLength > 0 && c.StreakWidth > 0 && c.StreakTravel >= 0):
		return fmt.Errorf("%w: streak shape", ErrInvalidConfig)
	}
	return nil
}
