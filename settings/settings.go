package settings

import (
	"errors"
	"io/fs"
	"os"

	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player/movement"
	"gopkg.in/yaml.v3"
)

// MaxSensitivity is the highest mouse sensitivity a player may pick.
const MaxSensitivity = 3

// Settings are the player facing options. They are polled by the character every tick.
type Settings struct {
	// Sensitivity scales the look deltas applied to the camera.
	Sensitivity float32 `yaml:"sensitivity"`
	// HoldWallclimb requires the wall action to be held for a wallclimb to continue.
	HoldWallclimb bool `yaml:"hold_wallclimb"`
	// HoldWallrun requires the wallrun action to be held for a wallrun to continue.
	HoldWallrun bool `yaml:"hold_wallrun"`
}

// Default returns the default player settings.
func Default() Settings {
	return Settings{
		Sensitivity:   1,
		HoldWallclimb: true,
	}
}

// Preferences returns the toggles of the settings the moveset reads.
func (s Settings) Preferences() movement.Preferences {
	return movement.Preferences{HoldWallclimb: s.HoldWallclimb, HoldWallrun: s.HoldWallrun}
}

// Validate ...
func (s Settings) Validate() error {
	if s.Sensitivity < 0 || s.Sensitivity > MaxSensitivity {
		return oerror.New("sensitivity must be between 0 and %v (got %v)", MaxSensitivity, s.Sensitivity)
	}
	return nil
}

// File is the content of a settings file: the player settings and the movement tuning table.
type File struct {
	Settings Settings        `yaml:"settings"`
	Movement movement.Config `yaml:"movement"`
}

// DefaultFile returns a File holding the default settings and tuning table.
func DefaultFile() File {
	return File{Settings: Default(), Movement: movement.DefaultConfig()}
}

// Validate validates both the settings and the tuning table.
func (f File) Validate() error {
	if err := f.Settings.Validate(); err != nil {
		return oerror.New(game.ErrorSettingsInvalid, err)
	}
	if err := f.Movement.Validate(); err != nil {
		return oerror.New(game.ErrorSettingsInvalid, err)
	}
	return nil
}

// Decode decodes a settings file. Fields missing from data keep their default value.
func Decode(data []byte) (File, error) {
	f := DefaultFile()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads the settings file at path. If no file exists, the defaults are returned.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultFile(), nil
	} else if err != nil {
		return File{}, oerror.New(game.ErrorSettingsDecode, path, err)
	}

	f, err := Decode(data)
	if err != nil {
		return File{}, oerror.New(game.ErrorSettingsDecode, path, err)
	}
	return f, nil
}

// Save writes the file to path as YAML.
func Save(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
