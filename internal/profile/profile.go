// Package profile carries the founder answers that personalize a report:
// a small key/value bag with generic filler for anything left blank.
package profile

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Profile is the intake summary supplied by the caller. Every field is
// optional; accessors substitute filler text for empty values so template
// synthesis never renders a hole.
type Profile struct {
	GoalType       string `yaml:"goalType" json:"goalType"`
	TimeCommitment string `yaml:"timeCommitment" json:"timeCommitment"`
	BudgetRange    string `yaml:"budgetRange" json:"budgetRange"`
	SkillStrength  string `yaml:"skillStrength" json:"skillStrength"`
	WorkStyle      string `yaml:"workStyle" json:"workStyle"`
	FocusArea      string `yaml:"focusArea" json:"focusArea"`
}

// Load reads a YAML profile file.
func Load(path string) (Profile, error) {
	var p Profile
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// Goal returns the founder's goal, or generic filler.
func (p Profile) Goal() string { return orFiller(p.GoalType, "your goal") }

// Time returns the weekly time commitment, or generic filler.
func (p Profile) Time() string { return orFiller(p.TimeCommitment, "the time you have available") }

// Budget returns the budget range, or generic filler.
func (p Profile) Budget() string { return orFiller(p.BudgetRange, "your budget") }

// Skill returns the strongest skill, or generic filler.
func (p Profile) Skill() string { return orFiller(p.SkillStrength, "your strongest skills") }

// Style returns the preferred work style, or generic filler.
func (p Profile) Style() string { return orFiller(p.WorkStyle, "the way you like to work") }

// Audience returns the focus area as an audience description, or generic
// filler.
func (p Profile) Audience() string { return orFiller(p.FocusArea, "your target customers") }

func orFiller(v, filler string) string {
	if strings.TrimSpace(v) == "" {
		return filler
	}
	return v
}
