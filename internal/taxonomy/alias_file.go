package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type aliasFile struct {
	Aliases []Alias `yaml:"aliases"`
}

// LoadAliasFile reads merchandiser-maintained aliases from a YAML document of
// the form:
//
//	aliases:
//	  - alias: "kitchenware"
//	    category: home_kitchen
func LoadAliasFile(path string) ([]Alias, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var doc aliasFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", path, err)
	}

	aliases := make([]Alias, 0, len(doc.Aliases))
	for _, a := range doc.Aliases {
		if a.Alias == "" || a.Category == "" {
			continue
		}
		aliases = append(aliases, a)
	}
	return aliases, nil
}
