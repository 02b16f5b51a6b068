package session

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/phonebook/internal/config"
)

// render writes v in the session's output format. text is used as-is for
// the text format.
func (s *Session) render(v any, text string) error {
	switch s.format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(s.out, string(data))
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(s.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(s.out, text)
		return err
	}
}
