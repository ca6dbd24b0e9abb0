package tags

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultStorePath is where the tag store is looked up when neither the
// --tags-file flag nor NOTEKIT_TAGS is set.
const DefaultStorePath = "all_tags.json"

// Node is one entry in the tag store: either a bare tag name or a named
// group carrying an ordered list of subtag names.
type Node struct {
	Name    string
	Subtags []string
}

// UnmarshalJSON accepts both store shapes: "name" and
// {"name": ..., "subtags": [...]}.
func (n *Node) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		n.Name = name
		n.Subtags = nil
		return nil
	}
	var obj struct {
		Name    string   `json:"name"`
		Subtags []string `json:"subtags"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if strings.TrimSpace(obj.Name) == "" {
		return fmt.Errorf("%w: tag entry has no name", ErrInvalid)
	}
	n.Name = obj.Name
	n.Subtags = obj.Subtags
	return nil
}

// ResolveStorePath applies the flag value, the NOTEKIT_TAGS environment
// variable, and the default path, in that order.
func ResolveStorePath(flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if env := os.Getenv("NOTEKIT_TAGS"); env != "" {
		return env
	}
	return DefaultStorePath
}

// LoadStore reads and decodes the tag store at path. The store is loaded
// once per invocation and never written back.
func LoadStore(path string) ([]Node, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tag store: %w", err)
	}
	var nodes []Node
	if err := json.Unmarshal(b, &nodes); err != nil {
		return nil, fmt.Errorf("tag store %s: %w", path, err)
	}
	return nodes, nil
}
