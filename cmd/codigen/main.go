package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// This binary is a code-generation tool.
//
// It reads a JSON specification describing checked factory methods and
// generates the corresponding di.MustFactory descriptors plus a single
// RegisterFactories entry point.
//
// Key behaviors:
// - Reads spec JSON: package, extra imports, factories with result type,
//   qualifier, constructor, params, declared failures, scope, exposure and
//   an optional narrowed contract failure type
// - Validates the spec up front with actionable messages
// - Output is deterministic for a given spec (factories emit in spec order)
// - Writes output atomically (temp file + rename) to avoid partial writes,
//   or to stdout with -stdout

// Param describes one positional constructor parameter. Its value is
// resolved from the container at call time under the given key.
type Param struct {
	// Type is the Go type of the parameter, e.g. "*config.Config".
	Type string `json:"type"`

	// Qualifier optionally disambiguates the binding key.
	Qualifier string `json:"qualifier"`
}

// Failure declares one failure type the constructor may produce.
type Failure struct {
	// Type is the Go error type, e.g. "*store.StoreError".
	Type string `json:"type"`

	// Kind is "checked" or "unchecked".
	Kind string `json:"kind"`
}

// FactorySpec describes one generated factory descriptor.
type FactorySpec struct {
	// Name is used for function naming (new<Name>Factory).
	Name string `json:"name"`

	// Result is the produced Go type, e.g. "*store.UserStore".
	Result string `json:"result"`

	// Qualifier optionally disambiguates the binding key.
	Qualifier string `json:"qualifier"`

	// Constructor is the callable, shape func(params...) (Result, error).
	Constructor string `json:"constructor"`

	Params   []Param   `json:"params"`
	Failures []Failure `json:"failures"`

	// Scope is "" (container default) or "singleton".
	Scope string `json:"scope"`

	// Exposed marks the binding for promotion out of a privacy-scoped
	// container.
	Exposed bool `json:"exposed"`

	// ContractFailure optionally narrows the checked-provider contract to a
	// declared failure type, e.g. "*store.StoreError".
	ContractFailure string `json:"contractFailure"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package string `json:"package"`

	// Imports are the extra import paths the referenced types live in. The
	// di and container packages are always imported.
	Imports []string `json:"imports"`

	Factories []FactorySpec `json:"factories"`
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec Spec
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("codigen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to *.factories.json")
	outPath := flags.String("out", "", "output .gen.go file path")
	toStdout := flags.Bool("stdout", false, "write generated source to stdout instead of -out")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || (!*toStdout && strings.TrimSpace(*outPath) == "") {
		_, _ = fmt.Fprintln(stderr, "usage: codigen -spec <file.factories.json> [-out <file.gen.go> | -stdout]")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	validateSpec(&spec)

	source := generate(spec)

	if *toStdout {
		_, _ = io.WriteString(stdout, source)
		return 0
	}

	must(writeFileAtomic(filepath.Clean(*outPath), []byte(source), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// generate renders the spec through the template. Factories emit in spec
// order, so the output is deterministic for a given spec.
func generate(spec Spec) string {
	var out strings.Builder
	must(genTemplate.Execute(&out, templateData{Spec: spec}))
	return out.String()
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	if strings.TrimSpace(spec.Package) == "" {
		missingFields = append(missingFields, "package")
	}
	if len(spec.Factories) == 0 {
		missingFields = append(missingFields, "factories (must have at least 1)")
	}
	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	seenNames := make(map[string]struct{}, len(spec.Factories))
	for _, f := range spec.Factories {
		if f.Name == "" || f.Result == "" || f.Constructor == "" {
			panic(fmt.Errorf("each factory must have name/result/constructor; got: %+v", f))
		}
		if _, ok := seenNames[f.Name]; ok {
			panic(fmt.Errorf("duplicate factory name: %s", f.Name))
		}
		seenNames[f.Name] = struct{}{}

		for _, p := range f.Params {
			if p.Type == "" {
				panic(fmt.Errorf("factory %s: each param must have a type", f.Name))
			}
		}
		for _, fl := range f.Failures {
			if fl.Type == "" {
				panic(fmt.Errorf("factory %s: each failure must have a type", f.Name))
			}
			if fl.Kind != "checked" && fl.Kind != "unchecked" {
				panic(fmt.Errorf("factory %s: failure kind must be \"checked\" or \"unchecked\"; got %q", f.Name, fl.Kind))
			}
		}
		if f.Scope != "" && f.Scope != "singleton" {
			panic(fmt.Errorf("factory %s: scope must be empty or \"singleton\"; got %q", f.Name, f.Scope))
		}
	}
}

// genTemplate is the Go source template used to generate the wiring code.
var genTemplate = template.Must(
	template.New("codigen").Parse(`// Code generated by codigen; DO NOT EDIT.

package {{.Spec.Package}}

import (
{{- range .Spec.Imports}}
	"{{.}}"
{{- end}}

	"github.com/sghaida/codi/container"
	"github.com/sghaida/codi/di"
)
{{range .Spec.Factories}}
// new{{.Name}}Factory builds the descriptor for {{.Result}}{{if .Qualifier}}("{{.Qualifier}}"){{end}}.
func new{{.Name}}Factory({{if .Params}}src{{else}}_{{end}} container.SlotSource) di.Configurable {
	return di.MustFactory[{{.Result}}](
		di.KeyOf[{{.Result}}]({{if .Qualifier}}"{{.Qualifier}}"{{end}}),
		func(args []any) ({{.Result}}, error) {
			return {{.Constructor}}({{range $i, $p := .Params}}{{if $i}}, {{end}}args[{{$i}}].({{$p.Type}}){{end}})
		},
{{- if .Params}}
		di.WithResolvers(
{{- range .Params}}
			container.ResolverFor[{{.Type}}](src, di.KeyOf[{{.Type}}]({{if .Qualifier}}"{{.Qualifier}}"{{end}})),
{{- end}}
		),
		di.WithDependencies(
{{- range .Params}}
			di.KeyOf[{{.Type}}]({{if .Qualifier}}"{{.Qualifier}}"{{end}}),
{{- end}}
		),
{{- end}}
{{- if .Failures}}
		di.WithFailures(
{{- range .Failures}}
{{- if eq .Kind "checked"}}
			di.Checked[{{.Type}}](),
{{- else}}
			di.Unchecked[{{.Type}}](),
{{- end}}
{{- end}}
		),
{{- end}}
{{- if .ContractFailure}}
		di.WithContract(di.ContractOf[di.CheckedProvider[{{.Result}}]]().
			WithDeclaredFailure(di.ErrType[{{.ContractFailure}}]())),
{{- end}}
{{- if eq .Scope "singleton"}}
		di.WithScope(di.ScopeSingleton),
{{- end}}
{{- if .Exposed}}
		di.Exposed(),
{{- end}}
	)
}
{{end}}
// RegisterFactories configures every generated factory against binder. src
// supplies call-time parameter resolution for factories with dependencies;
// it is usually the container being configured.
func RegisterFactories(src container.SlotSource, binder di.SlotBinder) {
	for _, f := range []di.Configurable{
{{- range .Spec.Factories}}
		new{{.Name}}Factory(src),
{{- end}}
	} {
		f.Configure(binder)
	}
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
