package catalog

// Capability is a named, invocable unit the classifier may choose
// from. Immutable once registered.
type Capability struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Params      map[string]string `yaml:"params"`
}

// catalogFile is the shape of the embedded builtin capability table.
type catalogFile struct {
	Capabilities []Capability `yaml:"capabilities"`
}
