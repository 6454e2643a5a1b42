// Package config reads and edits the gopager settings file,
// ~/.gopager/config.yaml.
package config

// ABOUTME: Settings file handling. Loading decodes into File; edits go
// ABOUTME: through yaml.Node so comments and key order survive.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kstenerud/gopager/internal/pager"
	"gopkg.in/yaml.v3"
)

// File holds the settings understood by gopager.
type File struct {
	// Pager is the preferred pager; $PAGER and --pager still win over it.
	Pager string `yaml:"pager,omitempty"`
	// EnvVar replaces PAGER as the environment variable consulted.
	EnvVar string `yaml:"env_var,omitempty"`
	// Force pages even when stdout is not a terminal.
	Force bool `yaml:"force,omitempty"`
	// Env is passed to the pager process only.
	Env map[string]string `yaml:"env,omitempty"`
}

// Path returns the location of config.yaml.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gopager", "config.yaml"), nil
}

// Load reads config.yaml. A missing file yields an empty File.
func Load() (*File, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the settings file at path. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func LoadFrom(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's own settings file
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config.yaml: %w", err)
	}

	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, pager.NewConfigError("parse %s: %w", path, err)
	}
	return f, nil
}

// Apply copies the settings into cfg. Fields already set in cfg are kept,
// so command-line flags applied earlier take precedence. Env entries are
// merged with cfg.Env winning.
func (f *File) Apply(cfg *pager.Config) {
	if cfg.Default == "" {
		cfg.Default = f.Pager
	}
	if cfg.EnvVar == "" {
		cfg.EnvVar = f.EnvVar
	}
	if f.Force {
		cfg.NoSkip = true
	}
	if len(f.Env) > 0 {
		merged := maps.Clone(f.Env)
		maps.Copy(merged, cfg.Env)
		cfg.Env = merged
	}
}

// ReadRaw returns the contents of config.yaml, or nil if it does not exist.
func ReadRaw() ([]byte, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is ~/.gopager/config.yaml
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config.yaml: %w", err)
	}
	return data, nil
}

// GetValue looks up a dotted key such as "env.LESS". Mapping values are
// returned as YAML.
func GetValue(key string) (string, bool, error) {
	data, err := ReadRaw()
	if err != nil || data == nil {
		return "", false, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", false, pager.NewConfigError("parse config.yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return "", false, nil
	}

	node := doc.Content[0]
	for _, part := range strings.Split(key, ".") {
		node = lookupKey(node, part)
		if node == nil {
			return "", false, nil
		}
	}

	if node.Kind == yaml.ScalarNode {
		return node.Value, true, nil
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", false, fmt.Errorf("marshal %s: %w", key, err)
	}
	return strings.TrimRight(string(out), "\n"), true, nil
}

// UpdateFields sets dotted keys in config.yaml, creating the file if needed.
// Comments and formatting are preserved.
func UpdateFields(fields map[string]string) error {
	for key := range fields {
		if err := validateKey(key); err != nil {
			return err
		}
	}

	path, err := Path()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is ~/.gopager/config.yaml
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read config.yaml: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		data = nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return pager.NewConfigError("parse config.yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return pager.NewConfigError("config.yaml root is not a mapping")
	}

	for _, key := range sortedKeys(fields) {
		setYAMLField(root, key, fields[key])
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshal config.yaml: %w", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("write config.yaml: %w", err)
	}
	return nil
}

// validateKey accepts the keys File understands.
func validateKey(key string) error {
	switch key {
	case "pager", "env_var", "force":
		return nil
	}
	if name, ok := strings.CutPrefix(key, "env."); ok && name != "" && !strings.Contains(name, ".") {
		return nil
	}
	return pager.NewConfigError("unknown config key %q (valid: pager, env_var, force, env.<NAME>)", key)
}

// lookupKey returns the value stored under key in a mapping node.
func lookupKey(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// setYAMLField sets a dotted path (e.g., "env.LESS") to a value in a
// yaml.Node mapping tree. Creates intermediate mappings as needed.
func setYAMLField(root *yaml.Node, path string, value string) {
	parts := strings.Split(path, ".")
	node := root

	for _, part := range parts[:len(parts)-1] {
		node = getOrCreateMapping(node, part)
	}

	tag := "!!str"
	if value == "true" || value == "false" {
		tag = "!!bool"
	}

	leafKey := parts[len(parts)-1]
	if existing := lookupKey(node, leafKey); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Style = 0
		existing.Tag = tag
		existing.Value = value
		existing.Content = nil
		return
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: leafKey}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: tag}
	node.Content = append(node.Content, keyNode, valNode)
}

// getOrCreateMapping finds or creates a mapping node under the given key.
func getOrCreateMapping(parent *yaml.Node, key string) *yaml.Node {
	if existing := lookupKey(parent, key); existing != nil {
		if existing.Kind != yaml.MappingNode {
			*existing = yaml.Node{Kind: yaml.MappingNode}
		}
		return existing
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
	mapNode := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, keyNode, mapNode)
	return mapNode
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
