package tag

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// TagName is the struct tag consulted for default values.
const TagName = "default"

const maxDepth = 16

// ApplyDefaults sets zero-valued struct fields from their `default` tags.
// The target must be a non-nil pointer to a struct. Nested structs,
// pointers to structs, durations and comma-separated slices are supported.
//
// Example:
//
//	type Config struct {
//	    Addr    string        `default:":8080"`
//	    Timeout time.Duration `default:"10s"`
//	}
func ApplyDefaults(target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer {
		return ErrTargetMustBePointer
	}
	if v.IsNil() {
		return ErrTargetIsNil
	}

	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	return applyStruct(elem, 0)
}

func applyStruct(v reflect.Value, depth int) error {
	if depth >= maxDepth {
		return ErrMaxDepthExceeded
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)

		if !fv.CanSet() {
			continue
		}

		tagValue := field.Tag.Get(TagName)
		if err := applyField(fv, tagValue, field.Name, depth); err != nil {
			return err
		}
	}

	return nil
}

func applyField(fv reflect.Value, tagValue, name string, depth int) error {
	switch fv.Kind() {
	case reflect.Struct:
		return applyStruct(fv, depth+1)

	case reflect.Pointer:
		if fv.Type().Elem().Kind() != reflect.Struct {
			return nil
		}
		if fv.IsNil() {
			return nil
		}
		return applyStruct(fv.Elem(), depth+1)

	case reflect.Slice:
		if tagValue == "" || !fv.IsZero() {
			return nil
		}
		return setSlice(fv, tagValue, name)

	default:
		if tagValue == "" || !fv.IsZero() {
			return nil
		}
		return setScalar(fv, tagValue, name)
	}
}

func setScalar(fv reflect.Value, raw, name string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return newFieldError(name, raw, err)
		}
		fv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// time.Duration 支持 "10s" 风格的写法
		if fv.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(raw)
			if err == nil {
				fv.SetInt(int64(d))
				return nil
			}
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return newFieldError(name, raw, err)
		}
		fv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return newFieldError(name, raw, err)
		}
		fv.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return newFieldError(name, raw, err)
		}
		fv.SetFloat(f)

	default:
		return newFieldError(name, raw, ErrUnsupportedType)
	}

	return nil
}

func setSlice(fv reflect.Value, raw, name string) error {
	parts := strings.Split(raw, ",")
	slice := reflect.MakeSlice(fv.Type(), 0, len(parts))

	for _, part := range parts {
		elem := reflect.New(fv.Type().Elem()).Elem()
		if err := setScalar(elem, strings.TrimSpace(part), name); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem)
	}

	fv.Set(slice)
	return nil
}
