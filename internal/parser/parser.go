package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/dartgen/json2dart/internal/errors"
	"github.com/dartgen/json2dart/internal/models"
)

// Parse converts JSON data from an io.Reader into an IntermediateRepresentation.
// Objects are decoded token by token so that key order survives: generated
// field order follows the order keys appear in the document.
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	rootValue, err := decodeValue(decoder)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.IntermediateRepresentation{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.IntermediateRepresentation{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// Anything after the first value means the document is not a single
	// JSON value; trailing whitespace is fine.
	if decoder.More() {
		return models.IntermediateRepresentation{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}
	if _, err := decoder.Token(); err != nil && !stderrors.Is(err, io.EOF) {
		return models.IntermediateRepresentation{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	ir := models.IntermediateRepresentation{Root: rootValue}
	if _, ok := rootValue.(models.JSONArray); ok {
		ir.RootIsArray = true
	}
	return ir, nil
}

// decodeValue reads one complete JSON value from the decoder.
func decodeValue(decoder *json.Decoder) (models.JSONValue, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}

func decodeObject(decoder *json.Decoder) (*models.JSONObject, error) {
	obj := models.NewJSONObject()
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key of type %T", keyTok)
		}
		val, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// consume the closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(decoder *json.Decoder) (models.JSONArray, error) {
	arr := make(models.JSONArray, 0)
	for decoder.More() {
		val, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// consume the closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	// An empty or whitespace-only string would surface as io.EOF from the
	// decoder; report it as an input problem instead.
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.IntermediateRepresentation{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
