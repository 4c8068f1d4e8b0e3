// Package codegen renders Go source for derived schema collections. Each
// record type yields one file declaring a struct per variant, so consumers
// get typed shapes that mirror exactly what the variant schemas accept.
package codegen

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/recordkit/recordkit/internal/schema"
	ustrings "github.com/recordkit/recordkit/internal/util/strings"
	"github.com/recordkit/recordkit/internal/valid"
	"github.com/recordkit/recordkit/internal/variant"
)

// Generator renders variant struct definitions for record types
type Generator struct {
	registry *schema.Registry
	log      *zap.Logger
}

// NewGenerator creates a new Generator. A nil logger disables logging.
func NewGenerator(registry *schema.Registry, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{registry: registry, log: log}
}

// Generate builds t's schema collection and renders one Go source file
// declaring the five variant structs in the given package
func (g *Generator) Generate(t *schema.Type, opts variant.Options, pkgName string) (string, error) {
	collection, err := variant.Build(g.registry, t, opts)
	if err != nil {
		return "", err
	}

	var code strings.Builder
	imports := make(map[string]bool)

	for _, v := range schema.Variants() {
		obj := collection.Variant(v)
		code.WriteString(g.renderStruct(t, v, obj, imports))
		code.WriteString("\n")
	}

	g.log.Debug("generated variant structs",
		zap.String("record", t.Name),
		zap.String("package", pkgName),
	)

	return renderFile(pkgName, imports, code.String()), nil
}

// renderStruct renders one variant's struct definition
func (g *Generator) renderStruct(t *schema.Type, v schema.Variant, obj *valid.ObjectSchema, imports map[string]bool) string {
	var b strings.Builder

	structName := t.Name + ustrings.ToPascalCase(v.String())
	fmt.Fprintf(&b, "// %s is the %s variant of %s\n", structName, v, t.Name)
	fmt.Fprintf(&b, "type %s struct {\n", structName)

	for _, f := range obj.Fields() {
		goName := ustrings.ToPascalCase(f.Name)
		goType := renderGoType(f.Schema, imports)
		tag := f.Name
		if f.Schema.IsOptional() || f.Schema.IsNullable() {
			tag += ",omitempty"
		}
		fmt.Fprintf(&b, "\t%s %s `json:%q`\n", goName, goType, tag)
	}

	b.WriteString("}\n")
	return b.String()
}

// renderFile assembles the final source file with header and imports
func renderFile(pkgName string, imports map[string]bool, body string) string {
	var b strings.Builder

	b.WriteString("// Code generated by recordkit. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)

	if len(imports) > 0 {
		b.WriteString("import (\n")
		for _, path := range sortedKeys(imports) {
			fmt.Fprintf(&b, "\t%q\n", path)
		}
		b.WriteString(")\n\n")
	}

	b.WriteString(body)
	return b.String()
}
