package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"

	"github.com/tr069-model/tr069-go/pkg/log"
	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// Format is a serialization format for records.
type Format uint8

const (
	FormatXML Format = iota
	FormatYAML
	FormatJSON
	FormatCBOR
	FormatBSON
)

var formatNames = []string{"xml", "yaml", "json", "cbor", "bson"}

// String returns the format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Binary reports whether documents in f are not text.
func (f Format) Binary() bool {
	return f == FormatCBOR || f == FormatBSON
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatXML, FormatYAML, FormatJSON, FormatCBOR, FormatBSON}
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		return FormatYAML, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromExt returns the format implied by a file name extension.
func FormatFromExt(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, name)
	}
	return ParseFormat(ext)
}

// encMode is the CBOR encoder mode for record trees.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for record trees.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Maps decode with string keys so trees look the same in every format.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    reflect.TypeOf(map[string]any(nil)),
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Encode serializes o in format f. Tree formats hold a single key, the
// record's element name, mapping to ToTree's result.
func Encode(o *model.Object, f Format, opts EncodeOptions) ([]byte, error) {
	if f == FormatXML {
		return MarshalWith(o, opts)
	}
	if int(f) >= len(formatNames) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	l := newDocLog(opts.Logger, log.DirectionEncode, f.String(), o, opts.Version, opts.Source)
	tree, err := toTree(o, opts.Version, l)
	if err != nil {
		return nil, err
	}
	data, err := marshalTree(map[string]any{o.Def().Name: tree}, f, opts.Indent)
	if err != nil {
		return nil, l.fail(err, "writing document")
	}
	l.done(o.Path(), len(data))
	return data, nil
}

// Decode reads a document in format f into o.
func Decode(data []byte, f Format, o *model.Object, opts DecodeOptions) error {
	if f == FormatXML {
		return UnmarshalWith(data, o, opts)
	}
	if int(f) >= len(formatNames) {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	l := newDocLog(opts.Logger, log.DirectionDecode, f.String(), o, version.SpecVersion{}, opts.Source)
	doc, err := unmarshalTree(data, f)
	if err != nil {
		return l.fail(err, "reading document")
	}
	name, body, err := treeRoot(doc)
	if err != nil {
		return l.fail(err, "reading document")
	}
	if name != o.Def().Name {
		err := &DecodeError{Element: name, Err: fmt.Errorf("%w: %s, want %s", ErrUnexpectedElement, name, o.Def().Name)}
		return l.fail(err, "reading document")
	}
	if o.Def().Table && o.Parent() == nil {
		if raw, ok := body[InstanceKey]; ok {
			n, err := instanceValue(raw)
			if err == nil {
				err = o.SetInstance(n)
			}
			if err != nil {
				return l.fail(&DecodeError{Path: o.Path(), Element: InstanceKey, Err: err}, "reading document")
			}
		}
	}
	if err := fromTree(body, o, l); err != nil {
		return err
	}
	l.done(o.Path(), len(data))
	return nil
}

// DetectRootFormat returns the root element name of a document in format f.
func DetectRootFormat(data []byte, f Format) (string, error) {
	if f == FormatXML {
		return DetectRoot(data)
	}
	doc, err := unmarshalTree(data, f)
	if err != nil {
		return "", err
	}
	name, _, err := treeRoot(doc)
	return name, err
}

func treeRoot(doc map[string]any) (string, map[string]any, error) {
	if len(doc) != 1 {
		return "", nil, &DecodeError{Err: fmt.Errorf("%w: document has %d top-level keys, want 1", model.ErrMalformedValue, len(doc))}
	}
	for name, raw := range doc {
		body, ok := raw.(map[string]any)
		if !ok {
			return "", nil, &DecodeError{Element: name, Err: fmt.Errorf("%w: %s is not a map", model.ErrMalformedValue, name)}
		}
		return name, body, nil
	}
	panic("unreachable")
}

func marshalTree(doc map[string]any, f Format, indent string) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		if indent != "" {
			enc.SetIndent(len(indent))
		}
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatJSON:
		if indent == "" {
			return json.Marshal(doc)
		}
		data, err := json.MarshalIndent(doc, "", indent)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	case FormatCBOR:
		return encMode.Marshal(doc)

	case FormatBSON:
		return bson.Marshal(bsonSafe(doc))
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

func unmarshalTree(data []byte, f Format) (map[string]any, error) {
	var doc map[string]any
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&doc)
		if err == nil && dec.More() {
			err = errors.New("trailing data after document")
		}

	case FormatCBOR:
		err = decMode.Unmarshal(data, &doc)

	case FormatBSON:
		var m bson.M
		if err = bson.Unmarshal(data, &m); err == nil {
			doc, _ = normalizeBSON(m).(map[string]any)
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if errors.Is(err, io.EOF) || (err == nil && doc == nil) {
		return nil, &DecodeError{Err: fmt.Errorf("%w: empty document", model.ErrMalformedValue)}
	}
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%w: %v", model.ErrMalformedValue, err)}
	}
	return doc, nil
}

// bsonSafe converts unsigned integers, which BSON lacks, to int64 or, when
// too large, to their decimal string.
func bsonSafe(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = bsonSafe(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = bsonSafe(e)
		}
		return out
	case uint32:
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return fmt.Sprint(x)
		}
		return int64(x)
	}
	return v
}

// normalizeBSON turns the driver's document types into plain maps and slices.
func normalizeBSON(v any) any {
	switch x := v.(type) {
	case bson.M:
		return normalizeBSON(map[string]any(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeBSON(e)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(x))
		for _, e := range x {
			out[e.Key] = normalizeBSON(e.Value)
		}
		return out
	case bson.A:
		return normalizeBSON([]any(x))
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeBSON(e)
		}
		return out
	case primitive.Binary:
		return x.Data
	case primitive.DateTime:
		return x.Time().UTC()
	}
	return v
}
