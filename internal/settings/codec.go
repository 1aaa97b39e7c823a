// Package settings converts opaque key/value documents (client settings, token metadata,
// authorization attributes) to and from their stored text form.
//
// The text form is a JSON object. Decoding yields the canonical value model: string, bool, nil,
// int64 for integer literals (uint64 above the int64 range), float64 for everything written with a
// fraction or exponent, map[string]any and []any. Encode writes floats so that they keep their
// fraction marker, which makes decode(encode(m)) == m for any m built from that model.
package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/and161185/authkeeper/internal/errs"
)

// Settings is an untyped document stored and returned verbatim; the stores never interpret it.
type Settings map[string]any

// Get returns the value stored under key and whether it was present.
func (s Settings) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Encode renders s as JSON object text with sorted keys. nil encodes like an empty map.
func Encode(s Settings) (string, error) {
	fields := make(map[string]any, len(s))
	for k, v := range s {
		nv, err := normalize(v)
		if err != nil {
			return "", fmt.Errorf("%w: encode settings key %q: %v", errs.ErrInvalidArgument, k, err)
		}
		fields[k] = nv
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: encode settings: %v", errs.ErrInvalidArgument, err)
	}
	return string(b), nil
}

// Decode parses text produced by Encode. Blank text and JSON null decode to an empty map;
// anything else that is not a single JSON object fails with errs.ErrCorruptSettings.
func Decode(text string) (Settings, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "null" {
		return Settings{}, nil
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorruptSettings, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after settings object", errs.ErrCorruptSettings)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: settings must be a JSON object", errs.ErrCorruptSettings)
	}
	out, err := canonical(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorruptSettings, err)
	}
	return Settings(out.(map[string]any)), nil
}

// normalize maps Go values onto JSON, keeping the integer/float distinction in the literal.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool:
		return t, nil
	case Settings:
		return normalizeMap(t)
	case map[string]any:
		return normalizeMap(t)
	case map[string]string:
		out := make(map[string]any, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int8:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int16:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int32:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint8:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint16:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case float32:
		return floatLiteral(float64(t), 32)
	case float64:
		return floatLiteral(t, 64)
	case json.Number:
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func normalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, e := range m {
		n, err := normalize(e)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}

// floatLiteral formats f with the shortest exact representation and forces a fraction marker,
// so 300.0 is written as 300.0 rather than 300.
func floatLiteral(f float64, bits int) (json.Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("non-finite number %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.Number(s), nil
}

// canonical converts a UseNumber-decoded value into the package value model.
func canonical(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			c, err := canonical(e)
			if err != nil {
				return nil, err
			}
			t[k] = c
		}
		return t, nil
	case []any:
		for i, e := range t {
			c, err := canonical(e)
			if err != nil {
				return nil, err
			}
			t[i] = c
		}
		return t, nil
	case json.Number:
		return number(t)
	default:
		return v, nil
	}
}

func number(n json.Number) (any, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return n.Float64()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	return nil, fmt.Errorf("integer %s out of range", s)
}
