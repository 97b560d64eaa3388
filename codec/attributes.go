package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// maxExactInteger is the largest magnitude a float64 holds without rounding.
const maxExactInteger = 1 << 53

// attributesStruct converts custom attributes into their structpb form.
// Values outside the JSON-like set (channels, funcs, structs, typed slices,
// byte slices, invalid UTF-8, integers a float64 cannot hold exactly) are
// rejected instead of being altered or dropped.
func attributesStruct(attrs map[string]any) (*structpb.Struct, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	for k, v := range attrs {
		if err := checkAttribute(k, v); err != nil {
			return nil, fmt.Errorf("attributes: %w", err)
		}
	}
	s, err := structpb.NewStruct(attrs)
	if err != nil {
		return nil, fmt.Errorf("attributes: %w", err)
	}
	return s, nil
}

// checkAttribute rejects the values structpb would accept but not give back.
func checkAttribute(path string, v any) error {
	switch v := v.(type) {
	case []byte:
		return fmt.Errorf("%s: byte slices are not supported", path)
	case int:
		return checkInt(path, int64(v))
	case int64:
		return checkInt(path, v)
	case uint:
		return checkUint(path, uint64(v))
	case uint64:
		return checkUint(path, v)
	case json.Number:
		return checkNumber(path, v)
	case map[string]any:
		for k, item := range v {
			if err := checkAttribute(path+"."+k, item); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range v {
			if err := checkAttribute(path+"["+strconv.Itoa(i)+"]", item); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkInt(path string, v int64) error {
	if v > maxExactInteger || v < -maxExactInteger {
		return fmt.Errorf("%s: integer %d cannot be stored without rounding", path, v)
	}
	return nil
}

func checkUint(path string, v uint64) error {
	if v > maxExactInteger {
		return fmt.Errorf("%s: integer %d cannot be stored without rounding", path, v)
	}
	return nil
}

func checkNumber(path string, n json.Number) error {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return checkInt(path, i)
	}
	if isIntegerLiteral(n.String()) {
		return fmt.Errorf("%s: integer %s cannot be stored without rounding", path, n)
	}
	if f, err := n.Float64(); err != nil || math.IsInf(f, 0) {
		return fmt.Errorf("%s: invalid number %q", path, n.String())
	}
	return nil
}

// isIntegerLiteral reports whether s has no fraction or exponent part.
func isIntegerLiteral(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' && r != '+' {
			return false
		}
	}
	return s != ""
}

// normalizeAttributes returns the canonical representation shared by all codecs
// (numbers as float64, lists as []any, objects as map[string]any).
func normalizeAttributes(attrs map[string]any) (map[string]any, error) {
	s, err := attributesStruct(attrs)
	if err != nil || s == nil {
		return nil, err
	}
	return s.AsMap(), nil
}
