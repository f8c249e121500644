package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
)

// Serializer defines how a Collection is read from and written to one format.
type Serializer interface {
	// Parse reads a whole collection from r.
	Parse(r io.Reader) (core.Collection, error)
	// Serialize converts the collection to bytes.
	Serialize(c core.Collection) ([]byte, error)
}

// DefaultSerializers returns the supported formats keyed by name.
// "json" is the store format; the others are export formats.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": NewJSONSerializer(),
		"yaml": NewYAMLSerializer(),
		"csv":  NewCSVSerializer(),
	}
}

// SerializerFor looks up a format by name.
func SerializerFor(format string) (Serializer, error) {
	s, ok := DefaultSerializers()[format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (supported: %v)", format, Formats())
	}
	return s, nil
}

// Formats lists the known format names, sorted.
func Formats() []string {
	var names []string
	for name := range DefaultSerializers() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- JSON Serializer ---

// JSONSerializer reads and writes the store format: one array of
// {"note", "timestamp"} objects, indented by two spaces.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Parse(r io.Reader) (core.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected a JSON array of notes")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))

	var raw []map[string]json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("invalid json: trailing data after array")
	}

	c := make(core.Collection, 0, len(raw))
	for i, obj := range raw {
		n, err := decodeNote(obj)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		c = append(c, n)
	}
	return c, nil
}

// decodeNote requires exactly the keys "note" and "timestamp" (exact case),
// both strings, with a non-blank note.
func decodeNote(obj map[string]json.RawMessage) (core.Note, error) {
	if obj == nil {
		return core.Note{}, errors.New("not a note object")
	}
	if len(obj) != 2 {
		return core.Note{}, fmt.Errorf("want keys \"note\" and \"timestamp\", got %d keys", len(obj))
	}

	text, err := stringField(obj, "note")
	if err != nil {
		return core.Note{}, err
	}
	if strings.TrimSpace(text) == "" {
		return core.Note{}, errors.New(`"note" is empty`)
	}
	ts, err := stringField(obj, "timestamp")
	if err != nil {
		return core.Note{}, err
	}
	return core.Note{Text: text, Timestamp: ts}, nil
}

func stringField(obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("%q is not a string", key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%q: %w", key, err)
	}
	return v, nil
}

func (s *JSONSerializer) Serialize(c core.Collection) ([]byte, error) {
	if c == nil {
		c = core.Collection{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- YAML Serializer ---

// YAMLSerializer renders the collection as a YAML sequence.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Parse(r io.Reader) (core.Collection, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var c core.Collection
	if err := decoder.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Collection{}, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if c == nil {
		c = core.Collection{}
	}
	return c, nil
}

func (s *YAMLSerializer) Serialize(c core.Collection) ([]byte, error) {
	if c == nil {
		c = core.Collection{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

var csvHeader = []string{"note", "timestamp"}

// CSVSerializer renders one row per note under a note,timestamp header.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Parse(r io.Reader) (core.Collection, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return core.Collection{}, nil
	}
	if records[0][0] != csvHeader[0] || records[0][1] != csvHeader[1] {
		return nil, fmt.Errorf("invalid csv: expected header %v, got %v", csvHeader, records[0])
	}

	c := make(core.Collection, 0, len(records)-1)
	for _, rec := range records[1:] {
		c = append(c, core.Note{Text: rec[0], Timestamp: rec[1]})
	}
	return c, nil
}

func (s *CSVSerializer) Serialize(c core.Collection) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, n := range c {
		if err := writer.Write([]string{n.Text, n.Timestamp}); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
