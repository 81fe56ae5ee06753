package content

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mockmate/assistant/internal/textutil"
)

// overrideFile is the YAML shape of a content override file. Scalar fields
// replace the defaults when set; map and list fields merge over them.
type overrideFile struct {
	Help      string            `yaml:"help"`
	Topics    string            `yaml:"topics"`
	Knowledge map[string]string `yaml:"knowledge"`
	Jokes     []string          `yaml:"jokes"`
	Facts     []string          `yaml:"facts"`
	Unknown   []string          `yaml:"unknown"`
	Wellbeing []string          `yaml:"wellbeing"`
}

func defaultData() libraryData {
	knowledge := make(map[string]string, len(defaultKnowledge))
	for k, v := range defaultKnowledge {
		knowledge[k] = v
	}
	// Slices are cloned so overrides never append into the default arrays.
	return libraryData{
		help:      defaultHelpText,
		topics:    defaultTopicsText,
		knowledge: knowledge,
		keys:      sortedKeys(knowledge),
		jokes:     append([]string(nil), defaultJokes...),
		facts:     append([]string(nil), defaultFacts...),
		unknown:   append([]string(nil), defaultUnknownReplies...),
		wellbeing: append([]string(nil), defaultWellbeingPhrases...),
	}
}

// Reload re-reads the override file at path and swaps it in over the
// defaults. An empty path resets the Library to defaults only.
func (l *Library) Reload(path string) error {
	data := defaultData()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		var ov overrideFile
		if err := yaml.Unmarshal(raw, &ov); err != nil {
			return fmt.Errorf("failed to parse content file: %w", err)
		}
		applyOverride(&data, ov)
	}

	l.mu.Lock()
	l.data = data
	l.mu.Unlock()
	return nil
}

func applyOverride(data *libraryData, ov overrideFile) {
	if ov.Help != "" {
		data.help = ov.Help
	}
	if ov.Topics != "" {
		data.topics = ov.Topics
	}
	// Override keys are normalized the same way queries are, so a file
	// author may write "What is Docker?" and still get hits.
	for k, v := range ov.Knowledge {
		data.knowledge[textutil.NormalizeKnowledgeQuery(k)] = v
	}
	data.keys = sortedKeys(data.knowledge)
	if len(ov.Jokes) > 0 {
		data.jokes = append(data.jokes, ov.Jokes...)
	}
	if len(ov.Facts) > 0 {
		data.facts = append(data.facts, ov.Facts...)
	}
	if len(ov.Unknown) > 0 {
		data.unknown = append(data.unknown, ov.Unknown...)
	}
	if len(ov.Wellbeing) > 0 {
		data.wellbeing = append(data.wellbeing, ov.Wellbeing...)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
