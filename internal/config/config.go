// Package config handles simulation configuration loading and management.
package config

// Config holds all simulation settings.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Vegetation VegetationConfig `yaml:"vegetation"`
	Road       RoadConfig       `yaml:"road"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WorldConfig holds planet geometry settings.
type WorldConfig struct {
	Radius           float32 `yaml:"radius"`
	SubdivisionLevel int     `yaml:"subdivision_level"`
	GravityStrength  float32 `yaml:"gravity_strength"`
}

// VegetationConfig holds procedural vegetation settings.
type VegetationConfig struct {
	GrassDensity       float32 `yaml:"grass_density"` // Instances per unit surface area
	GrassSeed          int64   `yaml:"grass_seed"`
	TreeCount          int     `yaml:"tree_count"`
	TreeSeed           int64   `yaml:"tree_seed"`
	DensityMapWidth    int     `yaml:"density_map_width"`
	DensityMapHeight   int     `yaml:"density_map_height"`
	EquatorialClearing float32 `yaml:"equatorial_clearing"` // Half-height of tree-free band around the road
}

// RoadConfig holds the equatorial road settings.
type RoadConfig struct {
	StartAngle float32 `yaml:"start_angle"` // Radians
	EndAngle   float32 `yaml:"end_angle"`   // Radians
	Width      float32 `yaml:"width"`
}

// PlayerConfig holds character controller tuning.
type PlayerConfig struct {
	MoveSpeed     float32 `yaml:"move_speed"`
	RunMultiplier float32 `yaml:"run_multiplier"`
	RotationSpeed float32 `yaml:"rotation_speed"`
	Acceleration  float32 `yaml:"acceleration"`
	Deceleration  float32 `yaml:"deceleration"`
	Height        float32 `yaml:"height"`
}

// CameraConfig holds third-person camera tuning.
type CameraConfig struct {
	ArmLength      float32 `yaml:"arm_length"`
	ElevationAngle float32 `yaml:"elevation_angle"` // Radians
	PositionLag    float32 `yaml:"position_lag"`
	RotationLag    float32 `yaml:"rotation_lag"`
	FOV            float32 `yaml:"fov"` // Radians
}

// ViewerConfig holds the websocket viewer settings.
type ViewerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Radius:           50.0,
			SubdivisionLevel: 4,
			GravityStrength:  9.8,
		},
		Vegetation: VegetationConfig{
			GrassDensity:       0.5,
			GrassSeed:          42,
			TreeCount:          200,
			TreeSeed:           123,
			DensityMapWidth:    256,
			DensityMapHeight:   128,
			EquatorialClearing: 2.5,
		},
		Road: RoadConfig{
			StartAngle: 0.0,
			EndAngle:   1.5707964, // Quarter of the equator
			Width:      3.0,
		},
		Player: PlayerConfig{
			MoveSpeed:     5.0,
			RunMultiplier: 2.0,
			RotationSpeed: 2.0,
			Acceleration:  10.0,
			Deceleration:  15.0,
			Height:        1.0,
		},
		Camera: CameraConfig{
			ArmLength:      8.0,
			ElevationAngle: 0.523, // 30 degrees
			PositionLag:    0.1,
			RotationLag:    0.15,
			FOV:            1.5707964, // 90 degrees
		},
		Viewer: ViewerConfig{
			Enabled: false,
			Listen:  "127.0.0.1:8080",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
