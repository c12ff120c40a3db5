package specgen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"go.uber.org/zap"
)

const numImport = "github.com/shabbyrobe/go-num"

// Options control the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string

	// Source names the table in the generated header.
	Source string
}

type spec struct {
	Row

	IntoExpr string
	FromExpr string
}

type file struct {
	Package    string
	Source     string
	Std        []string
	Third      []string
	Specifiers []spec
}

var tmpl = template.Must(template.New("specifiers").Parse(`// Code generated by specgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{if or .Std .Third}}
import (
{{- range .Std}}
	"{{.}}"
{{- end}}
{{- if and .Std .Third}}
{{end}}
{{- range .Third}}
	"{{.}}"
{{- end}}
)
{{end}}
{{- range .Specifiers}}

// {{.Name}}Bits is the number of bits in a packed {{.Name}} field.
const {{.Name}}Bits = {{.Bits}}

// {{.Name}} specifies a field of type {{.Type}} carried in a {{.Carrier}}.
type {{.Name}} struct{}

var _ Specifier[{{.Type}}, {{.Carrier}}] = {{.Name}}{}

// Bits returns {{.Name}}Bits.
func ({{.Name}}) Bits() int { return {{.Name}}Bits }

// IntoBytes converts value into its carrier. It never fails.
func ({{.Name}}) IntoBytes(value {{.Type}}) ({{.Carrier}}, error) {
	return {{.IntoExpr}}, nil
}

// FromBytes converts bytes into a value of type {{.Type}}. It never fails.
func ({{.Name}}) FromBytes(bytes {{.Carrier}}) ({{.Type}}, error) {
	return {{.FromExpr}}, nil
}
{{- end}}

var generated = []Info{
{{- range .Specifiers}}
	{Name: "{{.Name}}", Type: "{{.Type}}", Carrier: "{{.Carrier}}", Bits: {{.Name}}Bits, CarrierBits: {{.CarrierBits}}},
{{- end}}
}
`))

// conversions returns the IntoBytes and FromBytes expressions for a row.
func conversions(r Row) (into, from string, err error) {
	switch r.Kind {
	case Unsigned, WideUnsigned:
		return "value", "bytes", nil
	case Signed:
		return r.Carrier + "(value)", r.Type + "(bytes)", nil
	case Float:
		return fmt.Sprintf("math.Float%dbits(value)", r.Bits),
			fmt.Sprintf("math.Float%dfrombits(bytes)", r.Bits),
			nil
	case WideSigned:
		return "value.AsU128()", "bytes.AsI128()", nil
	}

	return "", "", Error.New("%s: unknown kind: %q", r.Name, r.Kind)
}

// Generate renders the Go source implementing every row of the table.
func Generate(t *Table, opts Options) (src []byte, err error) {
	defer Error.WrapP(&err)

	err = t.Validate()
	if err != nil {
		return nil, err
	}

	if opts.Package == "" {
		opts.Package = "specifier"
	}

	f := file{
		Package: opts.Package,
		Source:  opts.Source,
	}

	var std, third bool

	for _, r := range t.Specifiers {
		into, from, err := conversions(r)
		if err != nil {
			return nil, err
		}

		switch {
		case r.Kind == Float:
			std = true
		case r.Kind.Wide():
			third = true
		}

		f.Specifiers = append(f.Specifiers, spec{
			Row:      r,
			IntoExpr: into,
			FromExpr: from,
		})

		Logger().Debug("specifier",
			zap.String("name", r.Name),
			zap.String("kind", string(r.Kind)),
			zap.Int("bits", r.Bits),
		)
	}

	if std {
		f.Std = []string{"math"}
	}
	if third {
		f.Third = []string{numImport}
	}

	buf := &bytes.Buffer{}

	err = tmpl.Execute(buf, f)
	if err != nil {
		return nil, err
	}

	src, err = format.Source(buf.Bytes())
	if err != nil {
		return nil, Error.New("formatting generated source: %v\n%s", err, buf.Bytes())
	}

	return src, nil
}
