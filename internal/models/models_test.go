package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONObject_KeepsInsertionOrder(t *testing.T) {
	obj := NewJSONObject()
	obj.Set("b", 1)
	obj.Set("a", 2)
	obj.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())
}

func TestJSONObject_DuplicateKeyKeepsPosition(t *testing.T) {
	obj := NewJSONObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestJSONObject_GetMissing(t *testing.T) {
	obj := NewJSONObject()
	_, ok := obj.Get("nope")
	assert.False(t, ok)
}

func TestTypeRef_Equal(t *testing.T) {
	assert.True(t, TypeRef{Kind: Int}.Equal(TypeRef{Kind: Int}))
	assert.False(t, TypeRef{Kind: Int}.Equal(TypeRef{Kind: Double}))
	assert.True(t, ListOf(TypeRef{Kind: String}).Equal(ListOf(TypeRef{Kind: String})))
	assert.False(t, ListOf(TypeRef{Kind: String}).Equal(ListOf(TypeRef{Kind: Int})))
	assert.True(t, ClassRef("Friend").Equal(ClassRef("Friend")))
	assert.False(t, ClassRef("Friend").Equal(ClassRef("Foe")))
}

func TestAnalysisResult_RootClass(t *testing.T) {
	assert.Nil(t, AnalysisResult{}.RootClass())

	root := &ClassDef{Name: "Model"}
	result := AnalysisResult{Classes: []*ClassDef{root, {Name: "Child"}}}
	assert.Equal(t, root, result.RootClass())
}
