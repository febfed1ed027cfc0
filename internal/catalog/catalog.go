package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Catalog is the registry of known capabilities. Builtins are loaded
// at construction; learned capabilities may be registered later.
type Catalog struct {
	mu      sync.RWMutex
	byName  map[string]Capability
	ordered []string
	learned int
}

// New loads the builtin capability table.
func New() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(builtinYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse builtin capabilities: %w", err)
	}

	c := &Catalog{byName: make(map[string]Capability, len(file.Capabilities))}
	for _, cap := range file.Capabilities {
		if cap.Name == "" {
			return nil, fmt.Errorf("builtin capability with empty name")
		}
		if _, exists := c.byName[cap.Name]; exists {
			return nil, fmt.Errorf("duplicate builtin capability: %s", cap.Name)
		}
		c.byName[cap.Name] = cap
		c.ordered = append(c.ordered, cap.Name)
	}
	return c, nil
}

// Get looks up a capability by name.
func (c *Catalog) Get(name string) (Capability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cap, ok := c.byName[name]
	return cap, ok
}

// Has reports whether a capability is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// All returns the capabilities in registration order.
func (c *Catalog) All() []Capability {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Capability, 0, len(c.ordered))
	for _, name := range c.ordered {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of registered capabilities.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

// LearnedCount returns how many capabilities were registered at runtime.
func (c *Catalog) LearnedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.learned
}

// Register adds a learned capability. The name must be unique.
func (c *Catalog) Register(cap Capability) error {
	if cap.Name == "" {
		return fmt.Errorf("capability name is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byName[cap.Name]; exists {
		return fmt.Errorf("capability already registered: %s", cap.Name)
	}
	c.byName[cap.Name] = cap
	c.ordered = append(c.ordered, cap.Name)
	c.learned++
	return nil
}

// PromptList renders the capabilities as one line each for inclusion
// in a classifier prompt.
func (c *Catalog) PromptList() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sb strings.Builder
	for i, name := range c.ordered {
		cap := c.byName[name]
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(cap.Name)
		sb.WriteString(": ")
		sb.WriteString(cap.Description)
		sb.WriteString(" | params: ")
		sb.WriteString(formatParams(cap.Params))
	}
	return sb.String()
}

func formatParams(params map[string]string) string {
	if len(params) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+params[k])
	}
	return strings.Join(parts, ", ")
}
