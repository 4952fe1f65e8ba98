package analyzer

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"github.com/dartgen/json2dart/internal/config"
	"github.com/dartgen/json2dart/internal/models"
	"github.com/dartgen/json2dart/internal/naming"
)

// isoDateRegex matches ISO-8601-like timestamps: the date part is required,
// the time of day is optional, and within it fractional seconds and a
// Z/offset suffix are optional. Strings matching this infer as DateTime.
var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?)?$`)

// Analyzer walks a parsed JSON document and builds the class registry.
// Uniqueness state lives on the instance, so one Analyzer serves one
// analysis pass; identical inputs through fresh instances produce
// identical results.
type Analyzer struct {
	// classNames tracks generated class names, scoped to the whole document
	classNames map[string]struct{}
	// result accumulates discovered classes and warnings
	result models.AnalysisResult
	// cfg holds the generation options
	cfg *config.Config
}

// NewAnalyzer creates a new Analyzer instance with default options.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(config.NewConfig())
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom options.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	return &Analyzer{
		classNames: make(map[string]struct{}),
		result: models.AnalysisResult{
			Classes: make([]*models.ClassDef, 0),
		},
		cfg: cfg,
	}
}

// Analyze processes the parsed document and returns the class registry.
// The root class is always first. A non-object root is wrapped in a
// synthetic class and reported as a warning rather than an error; every
// JSON value maps to some class structure.
func (a *Analyzer) Analyze(ir models.IntermediateRepresentation, rootName string) (models.AnalysisResult, error) {
	if rootName == "" {
		rootName = config.DefaultRootName
	}

	switch root := ir.Root.(type) {
	case *models.JSONObject:
		a.classForObject(rootName, root)
	case models.JSONArray:
		spec := a.newClass(rootName)
		a.warnf("top-level value is an array; wrapped it in class %s with a single list field", spec.Name)

		fieldNames := make(map[string]struct{})
		// The synthetic field has no source key; its name and key both
		// derive from the singularized root name hint.
		key := naming.ToCamelIdentifier(naming.Singularize(rootName))
		spec.Fields = append(spec.Fields, models.FieldInfo{
			JSONKey:  key,
			Name:     naming.MakeUnique(naming.SanitizeFieldName(key), fieldNames),
			Type:     a.inferArray(root, rootName),
			Nullable: a.cfg.AllFieldsNullable,
		})
	default:
		spec := a.newClass(rootName)
		a.warnf("top-level value is not an object; wrapped it in class %s with a single dynamic field", spec.Name)

		fieldNames := make(map[string]struct{})
		spec.Fields = append(spec.Fields, models.FieldInfo{
			JSONKey:  "value",
			Name:     naming.MakeUnique(naming.SanitizeFieldName("value"), fieldNames),
			Type:     models.TypeRef{Kind: models.Dynamic},
			Nullable: a.cfg.AllFieldsNullable || root == nil,
		})
	}

	return a.result, nil
}

// newClass registers a class under a unique sanitized name and appends it
// to the registry. Fields are filled in by the caller before rendering, so
// the registry order is parent-before-child.
func (a *Analyzer) newClass(nameHint string) *models.ClassDef {
	name := naming.MakeUnique(naming.SanitizeClassName(nameHint), a.classNames)
	spec := &models.ClassDef{Name: name}
	a.result.Classes = append(a.result.Classes, spec)
	return spec
}

// classForObject synthesizes a class for one object occurrence. Fields are
// appended in first-seen key order; field names are unique within the
// class, class names within the document.
func (a *Analyzer) classForObject(nameHint string, obj *models.JSONObject) models.TypeRef {
	spec := a.newClass(nameHint)
	fieldNames := make(map[string]struct{})

	for _, key := range obj.Keys() {
		val, _ := obj.Get(key)
		spec.Fields = append(spec.Fields, models.FieldInfo{
			JSONKey:  key,
			Name:     naming.MakeUnique(naming.SanitizeFieldName(key), fieldNames),
			Type:     a.inferValue(val, key),
			Nullable: a.cfg.AllFieldsNullable || val == nil,
		})
	}

	return models.ClassRef(spec.Name)
}

// inferValue determines the TypeRef for a single JSON value. keyHint is the
// field's own key and names any class synthesized for a nested object.
// Unknown value kinds degrade to dynamic instead of failing.
func (a *Analyzer) inferValue(val models.JSONValue, keyHint string) models.TypeRef {
	switch v := val.(type) {
	case nil:
		return models.TypeRef{Kind: models.Dynamic}
	case bool:
		return models.TypeRef{Kind: models.Bool}
	case string:
		return inferString(v)
	case json.Number:
		return inferNumber(v)
	case *models.JSONObject:
		return a.classForObject(keyHint, v)
	case models.JSONArray:
		return a.inferArray(v, keyHint)
	default:
		return models.TypeRef{Kind: models.Dynamic}
	}
}

// inferArray determines the list type for an array value. Only non-null
// elements participate; an empty or all-null array is List<dynamic>.
func (a *Analyzer) inferArray(arr models.JSONArray, keyHint string) models.TypeRef {
	elems := nonNullValues(arr)
	if len(elems) == 0 {
		return models.ListOf(models.TypeRef{Kind: models.Dynamic})
	}

	if objs, ok := asObjects(elems); ok {
		// One class for the union of keys across all elements. Each array
		// occurrence gets its own class even when structurally identical to
		// a sibling's; that is expected behavior, not an optimization miss.
		return models.ListOf(a.unionClassForObjects(naming.Singularize(keyHint), objs))
	}

	if typ, ok := scalarSetType(elems); ok {
		return models.ListOf(typ)
	}

	return models.ListOf(models.TypeRef{Kind: models.Dynamic})
}

// unionClassForObjects synthesizes one class from the union of keys across
// a set of object occurrences (array elements, or repeated values of one
// key across elements). Key order is first seen across the elements in
// element order.
func (a *Analyzer) unionClassForObjects(nameHint string, objs []*models.JSONObject) models.TypeRef {
	spec := a.newClass(nameHint)

	var order []string
	valuesByKey := make(map[string][]models.JSONValue)
	for _, obj := range objs {
		for _, key := range obj.Keys() {
			if _, seen := valuesByKey[key]; !seen {
				order = append(order, key)
			}
			val, _ := obj.Get(key)
			valuesByKey[key] = append(valuesByKey[key], val)
		}
	}

	fieldNames := make(map[string]struct{})
	for _, key := range order {
		vals := nonNullValues(valuesByKey[key])
		spec.Fields = append(spec.Fields, models.FieldInfo{
			JSONKey: key,
			Name:    naming.MakeUnique(naming.SanitizeFieldName(key), fieldNames),
			Type:    a.inferMerged(key, vals),
			// In smart mode a field is non-null as soon as any element
			// supplied a concrete value, even if other elements omit the
			// key entirely.
			Nullable: a.cfg.AllFieldsNullable || len(vals) == 0,
		})
	}

	return models.ClassRef(spec.Name)
}

// inferMerged determines the type for one union-class field from every
// non-null value observed for its key across the elements.
func (a *Analyzer) inferMerged(key string, vals []models.JSONValue) models.TypeRef {
	if len(vals) == 0 {
		return models.TypeRef{Kind: models.Dynamic}
	}

	if objs, ok := asObjects(vals); ok {
		return a.unionClassForObjects(key, objs)
	}

	if arrs, ok := asArrays(vals); ok {
		// Merge sibling arrays into one list type by inferring over the
		// concatenation of their elements.
		var combined models.JSONArray
		for _, arr := range arrs {
			combined = append(combined, arr...)
		}
		return a.inferArray(combined, key)
	}

	if typ, ok := scalarSetType(vals); ok {
		return typ
	}

	return models.TypeRef{Kind: models.Dynamic}
}

// inferString classifies a string as DateTime when it looks like an
// ISO-8601 timestamp, plain String otherwise.
func inferString(s string) models.TypeRef {
	if isoDateRegex.MatchString(s) {
		return models.TypeRef{Kind: models.DateTime}
	}
	return models.TypeRef{Kind: models.String}
}

// inferNumber classifies a number as Int when its value is a mathematical
// integer, Double otherwise.
func inferNumber(num json.Number) models.TypeRef {
	if isIntegral(num) {
		return models.TypeRef{Kind: models.Int}
	}
	return models.TypeRef{Kind: models.Double}
}

// isIntegral reports whether num denotes a mathematical integer. "1.0"
// counts; int64 overflow falls back to the float representation.
func isIntegral(num json.Number) bool {
	if _, err := num.Int64(); err == nil {
		return true
	}
	f, err := num.Float64()
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// scalarSetType classifies a homogeneous set of scalar values: all strings
// (DateTime when every one matches the ISO pattern), all numbers (Int when
// every one is integral), or all booleans. ok is false for any mixture.
func scalarSetType(vals []models.JSONValue) (models.TypeRef, bool) {
	strs, nums, bools := 0, 0, 0
	allDates, allInts := true, true

	for _, val := range vals {
		switch v := val.(type) {
		case string:
			strs++
			if !isoDateRegex.MatchString(v) {
				allDates = false
			}
		case json.Number:
			nums++
			if !isIntegral(v) {
				allInts = false
			}
		case bool:
			bools++
		default:
			return models.TypeRef{}, false
		}
	}

	switch len(vals) {
	case strs:
		if allDates {
			return models.TypeRef{Kind: models.DateTime}, true
		}
		return models.TypeRef{Kind: models.String}, true
	case nums:
		if allInts {
			return models.TypeRef{Kind: models.Int}, true
		}
		return models.TypeRef{Kind: models.Double}, true
	case bools:
		return models.TypeRef{Kind: models.Bool}, true
	}
	return models.TypeRef{}, false
}

func nonNullValues(vals []models.JSONValue) []models.JSONValue {
	out := make([]models.JSONValue, 0, len(vals))
	for _, v := range vals {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

func asObjects(vals []models.JSONValue) ([]*models.JSONObject, bool) {
	objs := make([]*models.JSONObject, 0, len(vals))
	for _, v := range vals {
		obj, ok := v.(*models.JSONObject)
		if !ok {
			return nil, false
		}
		objs = append(objs, obj)
	}
	return objs, len(objs) > 0
}

func asArrays(vals []models.JSONValue) ([]models.JSONArray, bool) {
	arrs := make([]models.JSONArray, 0, len(vals))
	for _, v := range vals {
		arr, ok := v.(models.JSONArray)
		if !ok {
			return nil, false
		}
		arrs = append(arrs, arr)
	}
	return arrs, len(arrs) > 0
}

func (a *Analyzer) warnf(format string, args ...interface{}) {
	a.result.Warnings = append(a.result.Warnings, fmt.Sprintf(format, args...))
}
