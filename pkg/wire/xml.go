package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/log"
	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/path"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// InstanceAttr is the attribute carrying the instance number of a table row.
const InstanceAttr = "instance"

// Marshal returns the compact XML document of a record.
func Marshal(o *model.Object) ([]byte, error) {
	return MarshalWith(o, EncodeOptions{})
}

// MarshalIndent is like Marshal but indents nested elements.
func MarshalIndent(o *model.Object, indent string) ([]byte, error) {
	return MarshalWith(o, EncodeOptions{Indent: indent})
}

// MarshalWith returns the XML document of a record encoded with opts.
func MarshalWith(o *model.Object, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes an XML document into o. The root element must be the
// record's element.
func Unmarshal(data []byte, o *model.Object) error {
	return UnmarshalWith(data, o, DecodeOptions{})
}

// UnmarshalWith is like Unmarshal with decoding options.
func UnmarshalWith(data []byte, o *model.Object, opts DecodeOptions) error {
	return NewDecoder(bytes.NewReader(data), opts).Decode(o)
}

// An Encoder writes records as XML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts EncodeOptions
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer, opts EncodeOptions) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode validates o and writes it as one XML document. Absent parameters,
// empty lists and empty children are left out.
func (e *Encoder) Encode(o *model.Object) error {
	l := newDocLog(e.opts.Logger, log.DirectionEncode, FormatXML.String(), o, e.opts.Version, e.opts.Source)
	if err := o.Validate(); err != nil {
		return l.fail(fmt.Errorf("%w: %w", ErrInvalidRecord, err), "validating record")
	}

	cw := &countingWriter{w: e.w}
	if e.opts.Header {
		if _, err := io.WriteString(cw, xml.Header); err != nil {
			return l.fail(err, "writing header")
		}
	}
	enc := xml.NewEncoder(cw)
	if e.opts.Indent != "" {
		enc.Indent("", e.opts.Indent)
	}
	x := &xmlWriter{enc: enc, version: e.opts.Version, log: l}
	if err := x.object(o); err != nil {
		return l.fail(err, "writing document")
	}
	if err := enc.Close(); err != nil {
		return l.fail(err, "writing document")
	}
	if e.opts.Indent != "" {
		if _, err := io.WriteString(cw, "\n"); err != nil {
			return l.fail(err, "writing document")
		}
	}
	l.done(o.Path(), cw.n)
	return nil
}

type xmlWriter struct {
	enc     *xml.Encoder
	version version.SpecVersion
	log     *docLog
}

func (x *xmlWriter) object(o *model.Object) error {
	def := o.Def()
	start := xml.StartElement{Name: xml.Name{Local: def.Name}}
	if def.Table && o.Instance() != 0 {
		start.Attr = []xml.Attr{{
			Name:  xml.Name{Local: InstanceAttr},
			Value: strconv.FormatUint(uint64(o.Instance()), 10),
		}}
	}
	if err := x.enc.EncodeToken(start); err != nil {
		return err
	}
	x.log.objects++

	for _, p := range def.Parameters {
		if !o.IsSet(p.Name) {
			continue
		}
		if !included(p.Since, x.version) {
			x.log.skipped(o.Path(), p.Name, 0, log.SkipNewerVersion)
			continue
		}
		if err := x.parameter(o, p); err != nil {
			return err
		}
	}

	for _, c := range def.Children {
		if c.IsTable() {
			t, ok := o.LookupTable(c.Name)
			if !ok || t.Len() == 0 {
				continue
			}
			if !included(c.Object.Since, x.version) {
				x.log.skipped(o.Path(), c.Name, 0, log.SkipNewerVersion)
				continue
			}
			if err := x.rows(t, c.Wrapper); err != nil {
				return err
			}
			continue
		}
		child, ok := o.LookupChild(c.Name)
		if !ok || child.IsEmpty() {
			continue
		}
		if !included(c.Object.Since, x.version) {
			x.log.skipped(o.Path(), c.Name, 0, log.SkipNewerVersion)
			continue
		}
		if err := x.object(child); err != nil {
			return err
		}
	}

	return x.enc.EncodeToken(start.End())
}

func (x *xmlWriter) parameter(o *model.Object, p *model.ParameterDef) error {
	if !p.List {
		v, _ := o.Lookup(p.Name)
		x.log.parameters++
		return x.text(p.Name, model.FormatValue(p.Type, v))
	}

	items := o.List(p.Name).Strings()
	x.log.parameters += len(items)
	if p.Wrapper == "" {
		for _, s := range items {
			if err := x.text(p.Name, s); err != nil {
				return err
			}
		}
		return nil
	}
	return x.wrapped(p.Wrapper, func() error {
		for _, s := range items {
			if err := x.text(p.ItemName(), s); err != nil {
				return err
			}
		}
		return nil
	})
}

func (x *xmlWriter) rows(t *model.Table, wrapper string) error {
	write := func() error {
		for _, row := range t.Rows() {
			if err := x.object(row); err != nil {
				return err
			}
		}
		return nil
	}
	if wrapper == "" {
		return write()
	}
	return x.wrapped(wrapper, write)
}

func (x *xmlWriter) wrapped(name string, inner func() error) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := x.enc.EncodeToken(start); err != nil {
		return err
	}
	if err := inner(); err != nil {
		return err
	}
	return x.enc.EncodeToken(start.End())
}

func (x *xmlWriter) text(name, s string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := x.enc.EncodeToken(start); err != nil {
		return err
	}
	if s != "" {
		if err := x.enc.EncodeToken(xml.CharData(s)); err != nil {
			return err
		}
	}
	return x.enc.EncodeToken(start.End())
}

// A Decoder reads XML documents into records.
type Decoder struct {
	r    io.Reader
	opts DecodeOptions
}

// NewDecoder returns a decoder that reads from r.
func NewDecoder(r io.Reader, opts DecodeOptions) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads one document into o. Values are set through the record's
// validating setters, table rows are appended with their instance numbers
// and unknown elements are skipped. Decode stops at the first error.
func (d *Decoder) Decode(o *model.Object) error {
	l := newDocLog(d.opts.Logger, log.DirectionDecode, FormatXML.String(), o, version.SpecVersion{}, d.opts.Source)
	cr := &countingReader{r: d.r}
	x := &xmlReader{dec: xml.NewDecoder(cr), log: l}

	start, err := x.root()
	if err != nil {
		return l.fail(err, "reading root element")
	}
	if name := start.Name.Local; name != o.Def().Name {
		err := &DecodeError{
			Element: name,
			Line:    x.line(),
			Err:     fmt.Errorf("%w: <%s>, want <%s>", ErrUnexpectedElement, name, o.Def().Name),
		}
		return l.fail(err, "reading root element")
	}

	where := o.Path()
	if o.Def().Table && o.Parent() == nil {
		n, err := x.instance(where, start)
		if err != nil {
			return l.fail(err, "reading root element")
		}
		if n != 0 {
			if err := o.SetInstance(n); err != nil {
				return l.fail(&DecodeError{Path: where, Element: start.Name.Local, Err: err}, "reading root element")
			}
			where = o.Path()
		}
	}

	if err := x.object(o, where); err != nil {
		return l.fail(err, "reading document")
	}
	l.done(o.Path(), cr.n)
	return nil
}

// DetectRoot returns the name of the root element of an XML document,
// e.g. "Device" or "InternetGatewayDevice".
func DetectRoot(data []byte) (string, error) {
	x := &xmlReader{dec: xml.NewDecoder(bytes.NewReader(data))}
	start, err := x.root()
	if err != nil {
		return "", err
	}
	return start.Name.Local, nil
}

type xmlReader struct {
	dec *xml.Decoder
	log *docLog
}

func (x *xmlReader) line() int {
	line, _ := x.dec.InputPos()
	return line
}

// malformed wraps a tokenizer failure.
func (x *xmlReader) malformed(where string, err error) error {
	line := x.line()
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		line = se.Line
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &DecodeError{Path: where, Line: line, Err: fmt.Errorf("%w: %v", model.ErrMalformedValue, err)}
}

func (x *xmlReader) root() (xml.StartElement, error) {
	for {
		tok, err := x.dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, &DecodeError{Err: fmt.Errorf("%w: empty document", model.ErrMalformedValue)}
		}
		if err != nil {
			return xml.StartElement{}, x.malformed("", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return xml.StartElement{}, &DecodeError{Line: x.line(), Err: fmt.Errorf("%w: text before root element", model.ErrMalformedValue)}
			}
		}
	}
}

// object reads the content of o up to its end element. where is the
// concrete path used in errors; it differs from o.Path() for rows that are
// not attached yet.
func (x *xmlReader) object(o *model.Object, where string) error {
	x.log.objects++
	for {
		tok, err := x.dec.Token()
		if err != nil {
			return x.malformed(where, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := x.element(o, where, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (x *xmlReader) element(o *model.Object, where string, start xml.StartElement) error {
	def := o.Def()
	name := start.Name.Local
	line := x.line()

	// A wrapper may share its name with the list parameter.
	if p := listWrapper(def, name); p != nil {
		return x.wrappedList(o, where, p)
	}
	if p := def.Parameter(name); p != nil {
		return x.parameter(o, where, p, name, line)
	}
	if c := def.Child(name); c != nil {
		if c.IsTable() {
			return x.row(o, where, c, start)
		}
		return x.object(o.Child(name), where+name+".")
	}
	if c := tableWrapper(def, name); c != nil {
		return x.wrappedRows(o, where, c)
	}

	x.log.skipped(where, name, line, log.SkipUnknownElement)
	if err := x.dec.Skip(); err != nil {
		return x.malformed(where, err)
	}
	return nil
}

func (x *xmlReader) parameter(o *model.Object, where string, p *model.ParameterDef, element string, line int) error {
	s, err := x.text(where, element)
	if err != nil {
		return err
	}
	v, err := parseText(p, s)
	if err == nil {
		if p.List {
			err = o.List(p.Name).Append(v)
		} else {
			err = o.Set(p.Name, v)
		}
	}
	if err != nil {
		return &DecodeError{Path: where, Element: element, Line: line, Err: err}
	}
	x.log.parameters++
	return nil
}

func (x *xmlReader) wrappedList(o *model.Object, where string, p *model.ParameterDef) error {
	for {
		tok, err := x.dec.Token()
		if err != nil {
			return x.malformed(where, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != p.ItemName() {
				x.log.skipped(where+p.Wrapper+".", t.Name.Local, x.line(), log.SkipUnknownElement)
				if err := x.dec.Skip(); err != nil {
					return x.malformed(where, err)
				}
				continue
			}
			if err := x.parameter(o, where, p, p.Name, x.line()); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (x *xmlReader) row(o *model.Object, where string, c *model.ChildDef, start xml.StartElement) error {
	line := x.line()
	prefix := where + c.Name + "."
	n, err := x.instance(prefix, start)
	if err != nil {
		return err
	}

	row := model.NewObject(c.Object)
	rowPath := prefix + path.Placeholder + "."
	if n != 0 {
		if err := row.SetInstance(n); err != nil {
			return &DecodeError{Path: prefix, Element: InstanceAttr, Line: line, Err: err}
		}
		rowPath = prefix + strconv.FormatUint(uint64(n), 10) + "."
	}
	if err := x.object(row, rowPath); err != nil {
		return err
	}
	if err := o.Table(c.Name).Append(row); err != nil {
		return &DecodeError{Path: where, Element: c.Name, Line: line, Err: err}
	}
	return nil
}

func (x *xmlReader) wrappedRows(o *model.Object, where string, c *model.ChildDef) error {
	for {
		tok, err := x.dec.Token()
		if err != nil {
			return x.malformed(where, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != c.Name {
				x.log.skipped(where+c.Wrapper+".", t.Name.Local, x.line(), log.SkipUnknownElement)
				if err := x.dec.Skip(); err != nil {
					return x.malformed(where, err)
				}
				continue
			}
			if err := x.row(o, where, c, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// instance reads the instance attribute of a row. Zero means absent.
func (x *xmlReader) instance(where string, start xml.StartElement) (uint32, error) {
	for _, a := range start.Attr {
		if a.Name.Local != InstanceAttr {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(a.Value), 10, 32)
		if err != nil || n == 0 {
			return 0, &DecodeError{
				Path:    where,
				Element: start.Name.Local,
				Line:    x.line(),
				Err:     fmt.Errorf("%w: instance %q", model.ErrMalformedValue, a.Value),
			}
		}
		return uint32(n), nil
	}
	return 0, nil
}

// text reads the character content of a parameter element.
func (x *xmlReader) text(where, element string) (string, error) {
	var sb strings.Builder
	for {
		tok, err := x.dec.Token()
		if err != nil {
			return "", x.malformed(where, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			return "", &DecodeError{
				Path:    where,
				Element: element,
				Line:    x.line(),
				Err:     fmt.Errorf("%w: element <%s> inside a parameter", model.ErrMalformedValue, t.Name.Local),
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// parseText parses a lexical value. Surrounding whitespace is insignificant
// for every type but string.
func parseText(p *model.ParameterDef, s string) (any, error) {
	if p.Type != model.DataTypeString {
		s = strings.TrimSpace(s)
	}
	return model.ParseValue(p.Type, s)
}

func listWrapper(def *model.ObjectDef, name string) *model.ParameterDef {
	for _, p := range def.Parameters {
		if p.List && p.Wrapper == name {
			return p
		}
	}
	return nil
}

func tableWrapper(def *model.ObjectDef, name string) *model.ChildDef {
	for _, c := range def.Children {
		if c.IsTable() && c.Wrapper == name {
			return c
		}
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
