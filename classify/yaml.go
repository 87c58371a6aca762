// yaml.go loads rule sets from YAML so keyword vocabularies can be tuned
// without a rebuild.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ParseRules decodes rule sets from YAML bytes.
//
// Expected shape:
//
//	- category: marketing
//	  rules:
//	    - name: promotional-language
//	      field: subject
//	      weight: 2
//	      patterns: ["*sale*", "*discount*"]
func ParseRules(data []byte) ([]RuleSet, error) {
	var sets []RuleSet
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	return sets, nil
}

// LoadRules reads rule sets from a YAML file.
func LoadRules(path string) ([]RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(data)
}
