package adventure

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRosterYAML []byte

// Roster lists the enemies and weapons the adventure draws from.
type Roster struct {
	Enemies []string      `yaml:"enemies"`
	Weapons []string      `yaml:"weapons"`
	Pause   time.Duration `yaml:"pause"`
}

// ParseRoster decodes and validates a roster document.
func ParseRoster(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("adventure: failed to parse roster: %w", err)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// Validate checks that the roster can drive a game.
func (r Roster) Validate() error {
	var errs []error
	if len(r.Enemies) == 0 {
		errs = append(errs, errors.New("no enemies"))
	}
	if len(r.Weapons) == 0 {
		errs = append(errs, errors.New("no weapons"))
	}
	if r.Pause < 0 {
		errs = append(errs, fmt.Errorf("negative pause %s", r.Pause))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("adventure: invalid roster: %w", err)
	}
	return nil
}

// DefaultRoster returns the embedded roster.
func DefaultRoster() Roster {
	r, err := ParseRoster(defaultRosterYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded document is broken
		return Roster{
			Enemies: []string{"Shade", "Brute", "Crawler", "Mage", "Mech", "Mind"},
			Weapons: []string{Dagger, Longbow, Healstaff, Kyeblade},
			Pause:   2 * time.Second,
		}
	}
	return r
}
