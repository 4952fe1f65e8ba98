package analyzer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/dartgen/json2dart/internal/config"
	"github.com/dartgen/json2dart/internal/generator"
	"github.com/dartgen/json2dart/internal/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For all object inputs the registry holds pairwise-distinct class names and
// pairwise-distinct field names per class, and analysis is deterministic.
func TestAnalyzeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("field names are pairwise distinct within a class", prop.ForAll(
		func(keys []string) bool {
			obj := models.NewJSONObject()
			for _, key := range keys {
				obj.Set(key, json.Number("1"))
			}
			result, err := NewAnalyzer().Analyze(models.IntermediateRepresentation{Root: obj}, "Model")
			if err != nil {
				return false
			}
			seen := make(map[string]struct{})
			for _, field := range result.Classes[0].Fields {
				if _, dup := seen[field.Name]; dup {
					return false
				}
				seen[field.Name] = struct{}{}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("class names are pairwise distinct", prop.ForAll(
		func(keys []string) bool {
			obj := models.NewJSONObject()
			for _, key := range keys {
				nested := models.NewJSONObject()
				nested.Set("value", json.Number("1"))
				obj.Set(key, nested)
			}
			result, err := NewAnalyzer().Analyze(models.IntermediateRepresentation{Root: obj}, "Model")
			if err != nil {
				return false
			}
			seen := make(map[string]struct{})
			for _, class := range result.Classes {
				if _, dup := seen[class.Name]; dup {
					return false
				}
				seen[class.Name] = struct{}{}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("generation is deterministic", prop.ForAll(
		func(keys []string) bool {
			render := func() (string, error) {
				obj := models.NewJSONObject()
				for i, key := range keys {
					obj.Set(key, json.Number(strconv.Itoa(i)))
				}
				result, err := NewAnalyzer().Analyze(models.IntermediateRepresentation{Root: obj}, "Model")
				if err != nil {
					return "", err
				}
				return generator.NewGenerator().Generate(result, config.NewConfig())
			}
			first, err1 := render()
			second, err2 := render()
			return err1 == nil && err2 == nil && first == second
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}

func TestNumberClassificationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every int64 infers as Int", prop.ForAll(
		func(n int64) bool {
			return inferNumber(json.Number(strconv.FormatInt(n, 10))).Kind == models.Int
		},
		gen.Int64(),
	))

	properties.Property("non-integral floats infer as Double", prop.ForAll(
		func(f float64) bool {
			if math.IsNaN(f) || math.IsInf(f, 0) || f == math.Trunc(f) {
				return true
			}
			num := json.Number(strconv.FormatFloat(f, 'g', -1, 64))
			return inferNumber(num).Kind == models.Double
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}

func TestDateClassificationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ISO-shaped timestamps infer as DateTime", prop.ForAll(
		func(year, month, day, hour, minute, second int) bool {
			s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, hour, minute, second)
			return inferString(s).Kind == models.DateTime
		},
		gen.IntRange(0, 9999),
		gen.IntRange(0, 99),
		gen.IntRange(0, 99),
		gen.IntRange(0, 99),
		gen.IntRange(0, 99),
		gen.IntRange(0, 99),
	))

	properties.Property("alphabetic strings infer as String", prop.ForAll(
		func(s string) bool {
			return inferString(s).Kind == models.String
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
