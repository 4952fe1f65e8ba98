package models

// JSONValue is a generic type to represent any decoded JSON value.
// This can be a string, json.Number, boolean, nil, *JSONObject, or JSONArray.
type JSONValue interface{}

// JSONObject represents a JSON object. Unlike a plain map it remembers the
// order in which keys appeared in the source document, because generated
// field order follows first-seen key order.
type JSONObject struct {
	keys   []string
	values map[string]JSONValue
}

// NewJSONObject creates an empty ordered object.
func NewJSONObject() *JSONObject {
	return &JSONObject{values: make(map[string]JSONValue)}
}

// Set stores a value for key. A repeated key keeps its original position
// but takes the later value, matching how JSON decoders resolve duplicates.
func (o *JSONObject) Set(key string, value JSONValue) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether it was present.
func (o *JSONObject) Get(key string) (JSONValue, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (o *JSONObject) Keys() []string {
	return o.keys
}

// Len returns the number of distinct keys.
func (o *JSONObject) Len() int {
	return len(o.keys)
}

// JSONArray represents a JSON array.
type JSONArray []JSONValue

// IntermediateRepresentation holds the parsed JSON document in the form the
// analyzer works with.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool
}

// Kind enumerates the type lattice of the generated Dart code.
type Kind int

const (
	Dynamic Kind = iota
	String
	Int
	Double
	Bool
	DateTime
	List
	Class
)

// TypeRef is a tagged reference to a Dart type. Exactly one of Elem or
// ClassName is meaningful, selected by Kind; primitive kinds use neither.
type TypeRef struct {
	Kind      Kind
	Elem      *TypeRef // element type when Kind == List
	ClassName string   // referenced class when Kind == Class
}

// ListOf wraps elem in a List type.
func ListOf(elem TypeRef) TypeRef {
	e := elem
	return TypeRef{Kind: List, Elem: &e}
}

// ClassRef returns a reference to a generated class.
func ClassRef(name string) TypeRef {
	return TypeRef{Kind: Class, ClassName: name}
}

// Equal reports whether two TypeRefs denote the same Dart type.
func (t TypeRef) Equal(other TypeRef) bool {
	if t.Kind != other.Kind || t.ClassName != other.ClassName {
		return false
	}
	if t.Kind == List {
		if t.Elem == nil || other.Elem == nil {
			return t.Elem == other.Elem
		}
		return t.Elem.Equal(*other.Elem)
	}
	return true
}

// FieldInfo describes one generated field. It is created once when its key
// is first observed and never modified afterwards.
type FieldInfo struct {
	JSONKey  string // original source key, used for the @JsonKey annotation
	Name     string // sanitized Dart identifier, unique within the class
	Type     TypeRef
	Nullable bool
}

// ClassDef describes one generated class. Fields are appended during the
// walk of the object occurrence that created the class.
type ClassDef struct {
	Name   string
	Fields []FieldInfo
}

// AnalysisResult is the registry produced by one analysis pass. Classes are
// in insertion order with the root class first, which is also emission
// order. Warnings record non-standard document shapes.
type AnalysisResult struct {
	Classes  []*ClassDef
	Warnings []string
}

// RootClass returns the first (root) class, or nil for an empty result.
func (r AnalysisResult) RootClass() *ClassDef {
	if len(r.Classes) == 0 {
		return nil
	}
	return r.Classes[0]
}
