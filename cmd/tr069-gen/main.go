// Command tr069-gen generates typed Go records from YAML data-model schemas.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/tools/imports"

	"github.com/tr069-model/tr069-go/pkg/specparse"
)

func main() {
	schemaDir := flag.String("schema", "schema", "Directory holding the *.yaml data-model schemas")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkg := flag.String("package", "datamodel", "Package name of the generated files")
	watch := flag.Bool("watch", false, "Regenerate whenever a schema file changes")
	flag.Parse()

	if *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: tr069-gen -output <dir> [-schema <dir>] [-package <name>] [-watch]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaDir, *outputDir, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *watch {
		if err := watchSchemas(*schemaDir, *outputDir, *pkg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(schemaDir, outputDir, pkg string) error {
	raws, err := specparse.LoadModels(os.DirFS(schemaDir))
	if err != nil {
		return fmt.Errorf("loading schemas: %w", err)
	}
	if len(raws) == 0 {
		return fmt.Errorf("no schemas in %s", schemaDir)
	}
	srcs, err := compileSources(raws)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, s := range srcs {
		prefix := s.prefix()

		code, err := GenerateRoot(s, pkg)
		if err != nil {
			return fmt.Errorf("generating %s: %w", s.Raw.Model, err)
		}
		if err := emit(outputDir, prefix+"_gen.go", code); err != nil {
			return err
		}

		for _, group := range s.Schema.Root().Children {
			code, err := GenerateGroup(s, group, pkg)
			if err != nil {
				return fmt.Errorf("generating %s: %w", group.Object.Path, err)
			}
			name := prefix + "_" + specparse.FileBase(group.Name) + "_gen.go"
			if err := emit(outputDir, name, code); err != nil {
				return err
			}
		}
	}

	return emit(outputDir, "schemas_gen.go", GenerateRegistry(srcs, pkg))
}

func emit(dir, name, code string) error {
	outPath := filepath.Join(dir, name)
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	fmt.Printf("  generated %s\n", outPath)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

// watchSchemas regenerates the output on every schema write until the
// watcher fails.
func watchSchemas(schemaDir, outputDir, pkg string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(schemaDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", schemaDir, err)
	}
	fmt.Printf("watching %s\n", schemaDir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSchemaChange(event) {
				continue
			}
			fmt.Printf("schema changed: %s\n", event.Name)
			if err := run(schemaDir, outputDir, pkg); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", schemaDir, err)
		}
	}
}

func isSchemaChange(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".yaml") {
		return false
	}
	return event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create
}
