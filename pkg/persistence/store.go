package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/wire"
)

// SchemaFunc returns the schema for a document root element name, e.g.
// "Device".
type SchemaFunc func(root string) (*model.Schema, error)

// Store manages persistence of one record to a file.
type Store struct {
	mu     sync.Mutex
	path   string
	format wire.Format
}

// NewStore creates a store for path in format f.
func NewStore(path string, f wire.Format) *Store {
	return &Store{path: path, format: f}
}

// Path returns the file the store writes to.
func (s *Store) Path() string { return s.path }

// Format returns the wire format of the file.
func (s *Store) Format() wire.Format { return s.format }

// Save encodes obj and replaces the file with the result. Text formats end
// with a newline.
func (s *Store) Save(obj *model.Object, opts wire.EncodeOptions) error {
	data, err := Encode(obj, s.format, opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reads and decodes the file into a new record of the schema chosen
// by resolve. Returns nil, nil if the file doesn't exist.
func (s *Store) Load(resolve SchemaFunc, opts wire.DecodeOptions) (*model.Object, *model.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if opts.Source == "" {
		opts.Source = s.path
	}
	return Decode(data, s.format, resolve, opts)
}

// Clear removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Encode serializes obj in format f the way Save writes it.
func Encode(obj *model.Object, f wire.Format, opts wire.EncodeOptions) ([]byte, error) {
	data, err := wire.Encode(obj, f, opts)
	if err != nil {
		return nil, err
	}
	if !f.Binary() && (len(data) == 0 || data[len(data)-1] != '\n') {
		data = append(data, '\n')
	}
	return data, nil
}

// Decode decodes a document of any known data model. The root element
// selects the schema through resolve.
func Decode(data []byte, f wire.Format, resolve SchemaFunc, opts wire.DecodeOptions) (*model.Object, *model.Schema, error) {
	root, err := wire.DetectRootFormat(data, f)
	if err != nil {
		return nil, nil, err
	}
	schema, err := resolve(root)
	if err != nil {
		return nil, nil, err
	}
	obj := schema.New()
	if err := wire.Decode(data, f, obj, opts); err != nil {
		return nil, nil, err
	}
	return obj, schema, nil
}

// SchemaOf returns a SchemaFunc accepting only the given schema.
func SchemaOf(schema *model.Schema) SchemaFunc {
	return func(root string) (*model.Schema, error) {
		if root != schema.Model() {
			return nil, fmt.Errorf("%w: document is %s, want %s", wire.ErrUnexpectedElement, root, schema.Model())
		}
		return schema, nil
	}
}
