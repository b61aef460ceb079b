package setting

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
)

type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
	KindArray   ValueKind = "array"
	KindObject  ValueKind = "object"
)

// KindOf reports the kind a form would edit v as. Nil reads as a string.
func KindOf(v any) ValueKind {
	switch v.(type) {
	case bool:
		return KindBoolean
	case float64, float32, int, int64, int32, json.Number:
		return KindNumber
	case []any, []string:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindString
	}
}

// Text renders v the way it is searched and exported: lists joined by
// ", " and objects as compact JSON.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, Text(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

// ParseValue converts form input of the given kind into a setting value.
func ParseValue(kind ValueKind, raw string) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, settingerrors.ErrInvalidValue.WithDetail("Value must be a number", err)
		}
		return n, nil
	case KindBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, settingerrors.ErrInvalidValue.WithDetail("Value must be true or false", err)
		}
		return b, nil
	case KindArray:
		items := []string{}
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		return items, nil
	case KindObject:
		obj := map[string]any{}
		if strings.TrimSpace(raw) == "" {
			return obj, nil
		}
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			return nil, settingerrors.ErrInvalidValue.WithDetail("Value must be a JSON object", err)
		}
		return obj, nil
	default:
		return nil, settingerrors.ErrInvalidKind
	}
}
