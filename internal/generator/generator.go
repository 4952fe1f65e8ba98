package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dartgen/json2dart/internal/config"
	"github.com/dartgen/json2dart/internal/models"
	"github.com/dartgen/json2dart/internal/naming"
)

// Generator renders a class registry into Dart source text
type Generator struct{}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders every class in registry order, preceded by a header that
// imports the freezed annotations and declares the two part files derived
// from the root class name. Output is byte-identical for identical input.
func (g *Generator) Generate(result models.AnalysisResult, cfg *config.Config) (string, error) {
	root := result.RootClass()
	if root == nil {
		return "", fmt.Errorf("no classes to generate")
	}

	var buf bytes.Buffer
	base := naming.ToFileName(root.Name)
	buf.WriteString("import 'package:freezed_annotation/freezed_annotation.dart';\n\n")
	fmt.Fprintf(&buf, "part '%s.freezed.dart';\n", base)
	fmt.Fprintf(&buf, "part '%s.g.dart';\n", base)

	for _, class := range result.Classes {
		buf.WriteString("\n")
		g.writeClass(&buf, class, cfg)
	}

	return buf.String(), nil
}

// FileName returns the output file name derived from the root class name.
func (g *Generator) FileName(result models.AnalysisResult) string {
	root := result.RootClass()
	if root == nil {
		return "model.dart"
	}
	return naming.ToFileName(root.Name) + ".dart"
}

// writeClass emits one freezed class declaration: a constructor-style
// parameter list with one @JsonKey-annotated parameter per field and, when
// serialization hooks are enabled, the fromJson/toJson bindings.
func (g *Generator) writeClass(buf *bytes.Buffer, class *models.ClassDef, cfg *config.Config) {
	name := class.Name
	fmt.Fprintf(buf, "@freezed\nclass %s with _$%s {\n", name, name)

	if len(class.Fields) == 0 {
		fmt.Fprintf(buf, "  const factory %s() = _%s;\n", name, name)
	} else {
		fmt.Fprintf(buf, "  const factory %s({\n", name)
		for _, field := range class.Fields {
			fmt.Fprintf(buf, "    @JsonKey(name: '%s') %s,\n",
				escapeDartString(field.JSONKey), paramDecl(field))
		}
		fmt.Fprintf(buf, "  }) = _%s;\n", name)
	}

	if cfg.SerializationHooks {
		fmt.Fprintf(buf, "\n  factory %s.fromJson(Map<String, dynamic> json) => _$%sFromJson(json);\n", name, name)
		fmt.Fprintf(buf, "\n  Map<String, dynamic> toJson() => _$%sToJson(this);\n", name)
	}

	buf.WriteString("}\n")
}

// paramDecl renders one constructor parameter: nullable fields get a "?"
// suffix, non-nullable ones the required modifier. dynamic already admits
// null and never takes the suffix.
func paramDecl(field models.FieldInfo) string {
	typeStr := TypeString(field.Type)
	if field.Nullable {
		if field.Type.Kind != models.Dynamic {
			typeStr += "?"
		}
		return typeStr + " " + field.Name
	}
	return "required " + typeStr + " " + field.Name
}

// TypeString converts a TypeRef to its Dart source representation.
func TypeString(t models.TypeRef) string {
	switch t.Kind {
	case models.String:
		return "String"
	case models.Int:
		return "int"
	case models.Double:
		return "double"
	case models.Bool:
		return "bool"
	case models.DateTime:
		return "DateTime"
	case models.List:
		if t.Elem != nil {
			return "List<" + TypeString(*t.Elem) + ">"
		}
		return "List<dynamic>"
	case models.Class:
		return t.ClassName
	default:
		return "dynamic"
	}
}

// escapeDartString escapes a JSON key for use inside a single-quoted Dart
// string literal.
func escapeDartString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`)
	return r.Replace(s)
}
