package datamodel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// ErrUnknownModel is returned by Lookup for a model without generated code.
var ErrUnknownModel = errors.New("unknown data model")

// Lookup returns the generated schema for a root object name ("Device") or
// a model version ("Device:2.12"). A model version matches when the major
// versions agree and the generated schema is at least as new.
func Lookup(name string) (*model.Schema, error) {
	root, want := name, version.SpecVersion{}
	if strings.Contains(name, ":") {
		mv, err := version.ParseModel(name)
		if err != nil {
			return nil, err
		}
		root, want = mv.Root, mv.Version
	}
	for _, s := range Schemas() {
		if s.Model() != root {
			continue
		}
		if !want.IsZero() && (!s.Version().Compatible(want) || !s.Version().AtLeast(want)) {
			return nil, fmt.Errorf("%w: %s is generated at %s", ErrUnknownModel, name, s.Version())
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModel, root)
}

// Models returns the model versions of every generated schema.
func Models() []string {
	var out []string
	for _, s := range Schemas() {
		out = append(out, s.ModelVersion().String())
	}
	return out
}
