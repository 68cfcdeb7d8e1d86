package config

import (
	"errors"
	"fmt"
)

// Settings are the runtime options shared by the executables.
type Settings struct {
	WorldWidth  int
	WorldHeight int
	Lives       int
	Seed        int64 // 0 picks a time-based seed
	Sound       bool
	LogLevel    string
	LogFile     string

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		WorldWidth:  1024,
		WorldHeight: 768,
		Lives:       3,
		Sound:       true,
		LogLevel:    "info",
		SSHHost:     "::",
		SSHPort:     "2222",
		SSHHostKey:  "/app/keys/host_key",
	}
}

// FromEnv reads Settings from the environment, starting from Defaults.
// Every malformed variable is reported; fields that fail keep their
// default.
func FromEnv() (Settings, error) {
	s := Defaults()
	var errs []error

	intVar := func(dst *int, key string) {
		v, err := GetEnvInt(key, *dst)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}

	intVar(&s.WorldWidth, "WORLD_WIDTH")
	intVar(&s.WorldHeight, "WORLD_HEIGHT")
	intVar(&s.Lives, "LIVES")

	seed := int(s.Seed)
	intVar(&seed, "SEED")
	s.Seed = int64(seed)

	sound, err := GetEnvBool("SOUND", s.Sound)
	if err != nil {
		errs = append(errs, err)
	}
	s.Sound = sound

	s.LogLevel = GetEnv("LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv("LOG_FILE", s.LogFile)
	s.SSHHost = GetEnv("SSH_HOST", s.SSHHost)
	s.SSHPort = GetEnv("SSH_PORT", s.SSHPort)
	s.SSHHostKey = GetEnv("SSH_HOST_KEY", s.SSHHostKey)

	if s.WorldWidth <= 0 || s.WorldHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: world size %dx%d", ErrInvalidSetting, s.WorldWidth, s.WorldHeight))
		s.WorldWidth, s.WorldHeight = Defaults().WorldWidth, Defaults().WorldHeight
	}
	if s.Lives <= 0 {
		errs = append(errs, fmt.Errorf("%w: LIVES=%d", ErrInvalidSetting, s.Lives))
		s.Lives = Defaults().Lives
	}

	return s, errors.Join(errs...)
}
