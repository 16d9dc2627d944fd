package todo

import (
	"fmt"
	"math"
	"strings"

	"github.com/bytedance/sonic"
)

var codec = sonic.ConfigStd

// Encode serializes tasks as a compact JSON array
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := codec.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	return data, nil
}

// EncodeIndent serializes tasks as a JSON array indented with two spaces
func EncodeIndent(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := codec.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of tasks, checking every field's presence and
// type. Any deviation yields an error wrapping ErrInvalidFormat. Duplicate ids
// are allowed.
func Decode(data []byte) ([]Task, error) {
	var raw interface{}
	if err := codec.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of tasks, got %s", ErrInvalidFormat, kindOf(raw))
	}

	tasks := make([]Task, 0, len(items))
	for i, item := range items {
		t, err := decodeTask(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidFormat, i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func decodeTask(item interface{}) (Task, error) {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return Task{}, fmt.Errorf("expected an object, got %s", kindOf(item))
	}

	var t Task
	var err error

	if t.ID, err = stringField(obj, "id", true); err != nil {
		return Task{}, err
	}
	if t.ID == "" {
		return Task{}, fmt.Errorf("field \"id\" is empty")
	}

	if t.Title, err = stringField(obj, "title", true); err != nil {
		return Task{}, err
	}
	if strings.TrimSpace(t.Title) == "" {
		return Task{}, fmt.Errorf("field \"title\" is empty")
	}

	if t.Notes, err = stringField(obj, "notes", false); err != nil {
		return Task{}, err
	}

	done, present := obj["done"]
	if !present {
		return Task{}, fmt.Errorf("missing field \"done\"")
	}
	if t.Done, ok = done.(bool); !ok {
		return Task{}, fmt.Errorf("field \"done\" must be a boolean, got %s", kindOf(done))
	}

	created, present := obj["createdAt"]
	if !present {
		return Task{}, fmt.Errorf("missing field \"createdAt\"")
	}
	n, ok := created.(float64)
	if !ok || n != math.Trunc(n) || math.Abs(n) > 1<<53 {
		return Task{}, fmt.Errorf("field \"createdAt\" must be an integer timestamp, got %s", kindOf(created))
	}
	t.CreatedAt = int64(n)

	return t, nil
}

// stringField reads a string field. Optional fields may be absent or null.
func stringField(obj map[string]interface{}, name string, required bool) (string, error) {
	v, present := obj[name]
	if !present || v == nil {
		if required {
			return "", fmt.Errorf("missing field %q", name)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %s", name, kindOf(v))
	}
	return s, nil
}

func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
