package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brunoga/deepcmp"
)

// decodeOptions selects the shape of decoded mappings.
type decodeOptions struct {
	// ordered decodes every mapping into a *deepcmp.Map in document order.
	ordered bool
}

// readDocument loads and decodes name, or stdin when name is "-".
func readDocument(stdin io.Reader, name string, opts decodeOptions) (any, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if strings.EqualFold(filepath.Ext(name), ".json") {
		v, err := decodeJSON(data, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s as JSON: %w", name, err)
		}
		return v, nil
	}

	v, err := decodeYAML(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as YAML: %w", name, err)
	}
	return v, nil
}

func decodeJSON(data []byte, opts decodeOptions) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := jsonValue(dec, opts)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the top-level value")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder, opts decodeOptions) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch tok {
	case json.Delim('{'):
		obj := newObject(opts)
		for dec.More() {
			key, err := dec.Token()
			if err != nil {
				return nil, err
			}
			val, err := jsonValue(dec, opts)
			if err != nil {
				return nil, err
			}
			if err := obj.set(key, val); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj.value(), nil
	case json.Delim('['):
		list := []any{}
		for dec.More() {
			val, err := jsonValue(dec, opts)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return tok, nil
}

func decodeYAML(data []byte, opts decodeOptions) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return yamlValue(&doc, opts)
}

// yamlValue converts a node to the shape encoding/json produces: mappings
// become map[string]any (or *deepcmp.Map for non-string keys or ordered
// decoding), !!set mappings become *deepcmp.Set and integers become float64.
func yamlValue(n *yaml.Node, opts decodeOptions) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0], opts)
	case yaml.AliasNode:
		return yamlValue(n.Alias, opts)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c, opts)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		if n.ShortTag() == "!!set" {
			return yamlSet(n, opts)
		}
		obj := newObject(opts)
		if err := yamlPairs(n, opts, obj); err != nil {
			return nil, err
		}
		return obj.value(), nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeScalar(v), nil
}

// yamlPairs adds the pairs of mapping n to obj, resolving merge keys first
// so explicit keys override merged ones.
func yamlPairs(n *yaml.Node, opts decodeOptions, obj *object) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].ShortTag() != "!!merge" {
			continue
		}
		src := n.Content[i+1]
		if src.Kind == yaml.AliasNode {
			src = src.Alias
		}
		sources := []*yaml.Node{src}
		if src.Kind == yaml.SequenceNode {
			sources = src.Content
		}
		for _, s := range sources {
			if s.Kind == yaml.AliasNode {
				s = s.Alias
			}
			if s.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: merge value is not a mapping", s.Line)
			}
			merged := newObject(opts)
			if err := yamlPairs(s, opts, merged); err != nil {
				return err
			}
			merged.each(func(k, v any) { obj.replace(k, v) })
		}
	}

	explicit := newObject(opts)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].ShortTag() == "!!merge" {
			continue
		}
		key, err := yamlValue(n.Content[i], opts)
		if err != nil {
			return err
		}
		val, err := yamlValue(n.Content[i+1], opts)
		if err != nil {
			return err
		}
		if err := explicit.set(key, val); err != nil {
			return fmt.Errorf("line %d: %w", n.Content[i].Line, err)
		}
	}
	explicit.each(func(k, v any) { obj.replace(k, v) })
	return nil
}

func yamlSet(n *yaml.Node, opts decodeOptions) (any, error) {
	set := deepcmp.NewSet()
	for i := 0; i < len(n.Content); i += 2 {
		v, err := yamlValue(n.Content[i], opts)
		if err != nil {
			return nil, err
		}
		if set.Has(v) {
			return nil, fmt.Errorf("line %d: duplicate set element %v", n.Content[i].Line, v)
		}
		set.Add(v)
	}
	return set, nil
}

func normalizeScalar(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	}
	return v
}

// object accumulates the pairs of one mapping. It becomes a map[string]any
// unless decoding is ordered or a key is not a string, in which case it
// becomes a *deepcmp.Map.
type object struct {
	ordered *deepcmp.Map
	strings map[string]any
	order   []string
}

func newObject(opts decodeOptions) *object {
	if opts.ordered {
		return &object{ordered: deepcmp.NewMap()}
	}
	return &object{strings: map[string]any{}}
}

// set adds a new pair and fails on a duplicate key.
func (o *object) set(key, val any) error {
	if o.has(key) {
		return fmt.Errorf("duplicate key %v", key)
	}
	o.replace(key, val)
	return nil
}

func (o *object) has(key any) bool {
	if o.ordered != nil {
		_, ok := o.ordered.Get(key)
		return ok
	}
	s, ok := key.(string)
	if !ok {
		return false
	}
	_, ok = o.strings[s]
	return ok
}

// replace adds or overwrites a pair.
func (o *object) replace(key, val any) {
	if o.ordered == nil {
		if s, ok := key.(string); ok {
			if _, seen := o.strings[s]; !seen {
				o.order = append(o.order, s)
			}
			o.strings[s] = val
			return
		}
		o.toOrdered()
	}
	o.ordered.Set(key, val)
}

// toOrdered moves the string pairs seen so far into a *deepcmp.Map.
func (o *object) toOrdered() {
	o.ordered = deepcmp.NewMap()
	for _, k := range o.order {
		o.ordered.Set(k, o.strings[k])
	}
	o.strings, o.order = nil, nil
}

func (o *object) each(fn func(key, val any)) {
	if o.ordered != nil {
		o.ordered.Range(func(k, v any) bool {
			fn(k, v)
			return true
		})
		return
	}
	for _, k := range o.order {
		fn(k, o.strings[k])
	}
}

func (o *object) value() any {
	if o.ordered != nil {
		return o.ordered
	}
	return o.strings
}
