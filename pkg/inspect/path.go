// Package inspect browses and edits data-model records by path.
//
// The inspect package offers a unified interface for:
//   - Resolving shell-style paths against a current object
//   - Reading and writing parameters
//   - Adding and deleting table rows
//   - Formatting records for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/path"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
	ErrAboveRoot   = errors.New("path leaves the root object")
)

// Join resolves input against the object path cwd the way a shell resolves
// a file name against its working directory.
//
// Supported forms:
//   - "Device.DHCPv4." - absolute, starts with the root name
//   - "DHCPv4.Client.1." - relative to cwd
//   - "UpTime" - a parameter of cwd
//   - ".." - the enclosing object; a row's parent is the object holding its table
//   - "../Name" - relative to the enclosing object, repeatable
//   - "/" - the root object
//
// The result is a concrete path; object paths end in ".".
func Join(root, cwd, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyPath
	}
	if input == "/" {
		return root + ".", nil
	}
	if input == root || strings.HasPrefix(input, root+".") {
		if input == root {
			input += "."
		}
		return check(input)
	}

	base, err := path.Parse(cwd)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	for input == ".." || strings.HasPrefix(input, "../") {
		base = base.Parent()
		if base == nil {
			return "", fmt.Errorf("%w: %s", ErrAboveRoot, cwd)
		}
		input = strings.TrimPrefix(strings.TrimPrefix(input, ".."), "/")
	}
	if input == "" {
		return base.String(), nil
	}
	return check(base.String() + input)
}

func check(p string) (string, error) {
	parsed, err := path.Parse(p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if parsed.IsTemplate() {
		return "", fmt.Errorf("%w: %s is a template", ErrInvalidPath, p)
	}
	return parsed.String(), nil
}
