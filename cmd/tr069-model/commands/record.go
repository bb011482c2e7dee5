// Package commands implements the tr069-model CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tr069-model/tr069-go/internal/config"
	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/log"
	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/persistence"
	"github.com/tr069-model/tr069-go/pkg/specparse"
	"github.com/tr069-model/tr069-go/pkg/version"
	"github.com/tr069-model/tr069-go/pkg/wire"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitInvalid = 2
)

// Env is the state shared by the record commands.
type Env struct {
	Config *config.Config
	Logger *zap.Logger
	Events log.Logger
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewEnv returns an Env writing to the process streams with a no-op logger.
func NewEnv(cfg *config.Config) *Env {
	return &Env{
		Config: cfg,
		Logger: zap.NewNop(),
		Events: log.NoopLogger{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

// Document is a record read from a file together with how it was stored.
type Document struct {
	Path   string
	Format wire.Format
	Schema *model.Schema
	Root   *model.Object
}

// Fail reports err and returns the exit code for it: ExitInvalid for
// constraint violations, ExitError otherwise.
func (e *Env) Fail(err error) int {
	fmt.Fprintf(e.Stderr, "Error: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	var verr *model.ValidationError
	if errors.As(err, &verr) || errors.Is(err, wire.ErrInvalidRecord) {
		return ExitInvalid
	}
	return ExitError
}

// Format resolves the document format: the explicit name if given, else the
// file extension, else the configured default.
func (e *Env) Format(name, file string) (wire.Format, error) {
	if name != "" {
		return wire.ParseFormat(name)
	}
	if file != "" && file != "-" {
		if f, err := wire.FormatFromExt(file); err == nil {
			return f, nil
		}
	}
	return wire.ParseFormat(e.Config.Format)
}

// Schema returns the schema for the root element name. A configured schema
// file takes precedence over the generated models.
func (e *Env) Schema(root string) (*model.Schema, error) {
	if e.Config.Schema == "" {
		return datamodel.Lookup(root)
	}
	raw, err := specparse.LoadModel(e.Config.Schema)
	if err != nil {
		return nil, err
	}
	s, err := specparse.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Config.Schema, err)
	}
	if s.Model() != root {
		return nil, fmt.Errorf("%w: %s defines %s, document is %s", datamodel.ErrUnknownModel, e.Config.Schema, s.Model(), root)
	}
	return s, nil
}

// Load reads and decodes a document. The data model is taken from the
// document's root element. A path of "-" reads stdin.
func (e *Env) Load(path, format string) (*Document, error) {
	doc, err := e.open(path, format)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return doc, nil
}

// Open is like Load but returns an empty document of the configured model
// when the file does not exist yet.
func (e *Env) Open(path, format string) (*Document, error) {
	doc, err := e.open(path, format)
	if err != nil || doc != nil {
		return doc, err
	}
	return e.New(path)
}

func (e *Env) open(path, format string) (*Document, error) {
	f, err := e.Format(format, path)
	if err != nil {
		return nil, err
	}
	e.Logger.Debug("decoding document",
		zap.String("path", path),
		zap.String("format", f.String()))

	opts := wire.DecodeOptions{Logger: e.Events, Source: path}
	var (
		obj    *model.Object
		schema *model.Schema
	)
	if path == "-" {
		data, rerr := io.ReadAll(e.Stdin)
		if rerr != nil {
			return nil, rerr
		}
		obj, schema, err = persistence.Decode(data, f, e.Schema, opts)
	} else {
		obj, schema, err = persistence.NewStore(path, f).Load(e.Schema, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if obj == nil {
		return nil, nil
	}
	return &Document{Path: path, Format: f, Schema: schema, Root: obj}, nil
}

// New returns an empty document for the configured model.
func (e *Env) New(path string) (*Document, error) {
	f, err := e.Format("", path)
	if err != nil {
		return nil, err
	}
	schema, err := e.Schema(e.Config.Model)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Format: f, Schema: schema, Root: schema.New()}, nil
}

func (e *Env) encodeOptions(doc *Document, f wire.Format, target, source string) (wire.EncodeOptions, error) {
	opts := wire.EncodeOptions{
		Indent: e.Config.Indent,
		Header: f == wire.FormatXML,
		Logger: e.Events,
		Source: source,
	}
	if target != "" {
		v, err := version.Parse(strings.TrimPrefix(target, doc.Schema.Model()+":"))
		if err != nil {
			return opts, err
		}
		opts.Version = v
	}
	return opts, nil
}

// Encode serializes the document's record in format f. A non-empty target
// version leaves out definitions introduced after it.
func (e *Env) Encode(doc *Document, f wire.Format, target, source string) ([]byte, error) {
	opts, err := e.encodeOptions(doc, f, target, source)
	if err != nil {
		return nil, err
	}
	return persistence.Encode(doc.Root, f, opts)
}

// Write encodes the document and writes it to path, or to stdout for "" and
// "-". Files are replaced atomically.
func (e *Env) Write(doc *Document, path string, f wire.Format, target string) error {
	if path == "" || path == "-" {
		data, err := e.Encode(doc, f, target, path)
		if err != nil {
			return err
		}
		_, err = e.Stdout.Write(data)
		return err
	}
	opts, err := e.encodeOptions(doc, f, target, path)
	if err != nil {
		return err
	}
	return persistence.NewStore(path, f).Save(doc.Root, opts)
}
