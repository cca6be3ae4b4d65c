// Package parser loads blueprint YAML documents into native Go values.
//
// Home Assistant blueprints use custom YAML tags (!input, !include, !secret,
// !include_dir_merge_list) that a plain safe load would reject. The loader
// walks the goccy/go-yaml AST and replaces each recognized tagged scalar with
// the inert marker string "<tag> <value>", so partial/templated configuration
// files parse without a templating engine. Unrecognized local tags remain a
// hard parse failure.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml/ast"
	yamlparser "github.com/goccy/go-yaml/parser"

	"github.com/home-assistant-community/blueprint-ci/pkg/constants"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
)

var loaderLog = logger.New("parser:loader")

// SyntaxError reports malformed YAML, carrying the parser-reported detail
// (including source location when available). Callers catch it per file and
// count the file as failed; it never aborts a run.
type SyntaxError struct {
	Path string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("YAML syntax error in %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("YAML syntax error: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// UnknownTagError reports a local YAML tag outside the recognized set.
type UnknownTagError struct {
	Tag  string
	Line int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown YAML tag '%s' at line %d", e.Tag, e.Line)
}

// Loader converts YAML text into native documents. A Loader is configured
// once at startup and reused; it holds no per-document state.
type Loader struct {
	tags map[string]bool
}

// NewTagged returns the tag-tolerant loader: the four Home Assistant custom
// tags become "<tag> <value>" marker strings, any other local tag fails.
func NewTagged() *Loader {
	tags := make(map[string]bool, len(constants.RecognizedTags))
	for _, t := range constants.RecognizedTags {
		tags[t] = true
	}
	return &Loader{tags: tags}
}

// NewStrict returns the strict loader: every local tag is a parse failure.
// Used where custom tags are never legitimate.
func NewStrict() *Loader {
	return &Loader{tags: map[string]bool{}}
}

// LoadFile reads and parses a single YAML file. Read failures are returned
// as-is; parse failures as *SyntaxError.
func (l *Loader) LoadFile(path string) (any, error) {
	loaderLog.Printf("Loading YAML file: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := l.Load(data)
	if err != nil {
		if syntaxErr, ok := err.(*SyntaxError); ok {
			syntaxErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Load parses a single YAML document from raw text. An empty document
// yields nil.
func (l *Loader) Load(data []byte) (any, error) {
	file, err := yamlparser.ParseBytes(data, 0)
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		loaderLog.Print("Empty YAML document")
		return nil, nil
	}

	w := &walker{tags: l.tags, anchors: make(map[string]any)}
	return w.value(file.Docs[0].Body)
}

// walker converts AST nodes into native values, resolving anchors within
// one document.
type walker struct {
	tags    map[string]bool
	anchors map[string]any
}

func (w *walker) value(node ast.Node) (any, error) {
	switch n := node.(type) {
	case *ast.MappingNode:
		return w.mapping(n.Values)
	case *ast.MappingValueNode:
		// Single-pair mapping is parsed as a bare MappingValueNode.
		return w.mapping([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		items := make([]any, 0, len(n.Values))
		for _, item := range n.Values {
			v, err := w.value(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.IntegerNode:
		return n.Value, nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.NullNode:
		return nil, nil
	case *ast.InfinityNode:
		return n.Value, nil
	case *ast.NanNode:
		return n.GetValue(), nil
	case *ast.TagNode:
		return w.tagged(n)
	case *ast.AnchorNode:
		name := n.Name.GetToken().Value
		v, err := w.value(n.Value)
		if err != nil {
			return nil, err
		}
		w.anchors[name] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := w.anchors[name]
		if !ok {
			return nil, fmt.Errorf("undefined anchor '%s' at line %d", name, n.GetToken().Position.Line)
		}
		return v, nil
	case *ast.MappingKeyNode:
		return w.value(n.Value)
	default:
		return nil, fmt.Errorf("unsupported YAML node %T at line %d", node, node.GetToken().Position.Line)
	}
}

func (w *walker) mapping(pairs []*ast.MappingValueNode) (any, error) {
	result := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		// "<<: *anchor" merges the aliased mapping into this one.
		if _, isMerge := pair.Key.(*ast.MergeKeyNode); isMerge {
			merged, err := w.value(pair.Value)
			if err != nil {
				return nil, err
			}
			if m, ok := merged.(map[string]any); ok {
				for k, v := range m {
					if _, exists := result[k]; !exists {
						result[k] = v
					}
				}
			}
			continue
		}

		key, err := w.key(pair.Key)
		if err != nil {
			return nil, err
		}
		v, err := w.value(pair.Value)
		if err != nil {
			return nil, err
		}
		result[key] = v
	}
	return result, nil
}

func (w *walker) key(node ast.MapKeyNode) (string, error) {
	if s, ok := node.(*ast.StringNode); ok {
		return s.Value, nil
	}
	v, err := w.value(node)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// tagged resolves a tagged node. Recognized local tags on scalars become
// "<tag> <value>" marker strings; standard "!!" tags resolve to their value;
// anything else is an unknown-tag failure.
func (w *walker) tagged(n *ast.TagNode) (any, error) {
	tag := n.Start.Value

	if strings.HasPrefix(tag, "!!") {
		return w.value(n.Value)
	}

	if !w.tags[tag] {
		loaderLog.Printf("Rejecting unknown tag: %s", tag)
		return nil, &UnknownTagError{Tag: tag, Line: n.GetToken().Position.Line}
	}

	scalar, err := w.scalarText(n.Value)
	if err != nil {
		return nil, fmt.Errorf("tag '%s' at line %d: %w", tag, n.GetToken().Position.Line, err)
	}
	return tag + " " + scalar, nil
}

func (w *walker) scalarText(node ast.Node) (string, error) {
	switch s := node.(type) {
	case *ast.StringNode:
		return s.Value, nil
	case *ast.IntegerNode:
		return fmt.Sprint(s.Value), nil
	case *ast.FloatNode:
		return fmt.Sprint(s.Value), nil
	case *ast.BoolNode:
		return fmt.Sprint(s.Value), nil
	case *ast.NullNode:
		return "", nil
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", node)
	}
}
