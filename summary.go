package goidl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/goidl/idl"
)

// SummaryFile is the name WriteSummary gives its output.
const SummaryFile = "definitions.yaml"

// Summary is a flat, serializable view of finished definitions.
type Summary struct {
	Definitions []DefinitionSummary `yaml:"definitions"`
	Cycles      [][]string          `yaml:"cycles,omitempty"`
}

// DefinitionSummary describes one definition.
type DefinitionSummary struct {
	Name               string          `yaml:"name"`
	Kind               string          `yaml:"kind"`
	Location           string          `yaml:"location"`
	Parent             string          `yaml:"parent,omitempty"`
	Implements         []string        `yaml:"implements,omitempty"`
	Type               string          `yaml:"type,omitempty"`
	Values             []string        `yaml:"values,omitempty"`
	ExtendedAttributes []string        `yaml:"extended-attributes,omitempty"`
	Members            []MemberSummary `yaml:"members,omitempty"`
}

// MemberSummary describes an interface member or dictionary member.
type MemberSummary struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Type       string   `yaml:"type,omitempty"`
	Value      string   `yaml:"value,omitempty"`
	Signatures []string `yaml:"signatures,omitempty"`
}

// Summarize lists defs in dependency order, leaving out the typedefs
// the global scope installs for engine types.
func Summarize(defs []idl.Definition) Summary {
	var kept []idl.Definition
	for _, def := range defs {
		if !idl.IsEngineTypedef(def) {
			kept = append(kept, def)
		}
	}
	ordered, cycles := idl.DependencyOrder(kept)
	s := Summary{Cycles: cycles}
	for _, def := range ordered {
		s.Definitions = append(s.Definitions, summarizeDefinition(def))
	}
	return s
}

func summarizeDefinition(def idl.Definition) DefinitionSummary {
	d := DefinitionSummary{
		Name:     def.Name(),
		Kind:     definitionKind(def),
		Location: def.Location().Position(),
	}
	for _, attr := range def.ExtendedAttributes() {
		d.ExtendedAttributes = append(d.ExtendedAttributes, attr.String())
	}
	switch def := def.(type) {
	case *idl.Interface:
		d.Parent = def.ParentName()
		for _, iface := range def.ImplementedInterfaces() {
			d.Implements = append(d.Implements, iface.Name())
		}
		for _, m := range def.Members() {
			d.Members = append(d.Members, summarizeMember(m))
		}
	case *idl.Dictionary:
		d.Parent = def.ParentName()
		for _, m := range def.Members() {
			ms := MemberSummary{Name: m.Name(), Kind: "field", Type: m.Type().String()}
			if v := m.DefaultValue(); v != nil {
				ms.Value = v.String()
			}
			d.Members = append(d.Members, ms)
		}
	case *idl.Enum:
		d.Values = def.Values()
	case *idl.Typedef:
		d.Type = def.Inner().String()
	case *idl.CallbackType:
		d.Type = callbackSignature(def)
	}
	return d
}

func callbackSignature(cb *idl.CallbackType) string {
	args := make([]string, len(cb.Arguments()))
	for i, a := range cb.Arguments() {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s (%s)", cb.ReturnType(), strings.Join(args, ", "))
}

func summarizeMember(m idl.Member) MemberSummary {
	ms := MemberSummary{Name: m.Name(), Kind: m.Tag().String()}
	switch m := m.(type) {
	case *idl.Const:
		ms.Type = m.Type().String()
		ms.Value = m.Value().String()
	case *idl.Attribute:
		ms.Type = m.Type().String()
	case *idl.Method:
		for _, o := range m.Overloads() {
			ms.Signatures = append(ms.Signatures, o.String())
		}
	}
	return ms
}

func definitionKind(def idl.Definition) string {
	switch def := def.(type) {
	case *idl.Interface:
		if def.IsCallback() {
			return "callback interface"
		}
		return "interface"
	case *idl.ExternalInterface:
		return "external interface"
	case *idl.Dictionary:
		return "dictionary"
	case *idl.Enum:
		return "enum"
	case *idl.Typedef:
		return "typedef"
	case *idl.CallbackType:
		return "callback"
	}
	return "unknown"
}

// WriteSummary writes the summary of defs to dir/definitions.yaml,
// creating dir if needed, and returns the file path.
func WriteSummary(dir string, defs []idl.Definition) (string, error) {
	data, err := yaml.Marshal(Summarize(defs))
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
