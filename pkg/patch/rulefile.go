package patch

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for rule file validation.
var (
	// ErrRuleFileEmpty indicates the rule file defines no rules.
	ErrRuleFileEmpty = errors.New("rule file defines no rules")
	// ErrRuleName indicates a rule entry is missing its name.
	ErrRuleName = errors.New("rule name must not be empty")
	// ErrRulePattern indicates a rule entry is missing its pattern.
	ErrRulePattern = errors.New("rule pattern must not be empty")
)

// ruleFile is the on-disk shape of a custom rule set.
type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

// ruleSpec is one YAML rule entry. Label is optional and defaults to Name.
type ruleSpec struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// LoadRuleFile parses a YAML rule file and compiles its patterns.
// Loaded rules are applied after the builtin rules, in file order.
func LoadRuleFile(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}

	var file ruleFile

	err = yaml.Unmarshal(raw, &file)
	if err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", path, err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRuleFileEmpty, path)
	}

	rules := make([]Rule, 0, len(file.Rules))

	for i, spec := range file.Rules {
		rule, compileErr := spec.compile()
		if compileErr != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, spec.Name, compileErr)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

func (s ruleSpec) compile() (Rule, error) {
	if s.Name == "" {
		return Rule{}, ErrRuleName
	}

	if s.Pattern == "" {
		return Rule{}, ErrRulePattern
	}

	pattern, err := regexp.Compile(s.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compile pattern: %w", err)
	}

	label := s.Label
	if label == "" {
		label = s.Name
	}

	return Rule{Name: s.Name, Label: label, Pattern: pattern, Replacement: s.Replacement}, nil
}
