package script

import (
	"fmt"

	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/d5/tengo/v2"
)

// ModuleName is the import name of the codec module inside scripts:
//
//	fm := import("filemode")
//	m := fm.parse_string("drwxr-xr-x")
//	fmt.println(m.octal, m.special.directory)
const ModuleName = "filemode"

// Module returns the builtin module attributes exposing the codec.
func Module() map[string]tengo.Object {
	return map[string]tengo.Object{
		"parse_number": &tengo.UserFunction{Name: "parse_number", Value: parseNumber},
		"parse_octal":  &tengo.UserFunction{Name: "parse_octal", Value: parseOctal},
		"parse_string": &tengo.UserFunction{Name: "parse_string", Value: parseString},
		"to_string":    &tengo.UserFunction{Name: "to_string", Value: toString},
		"to_octal":     &tengo.UserFunction{Name: "to_octal", Value: toOctal},
		"to_decimal":   &tengo.UserFunction{Name: "to_decimal", Value: toDecimal},
		"blank":        &tengo.UserFunction{Name: "blank", Value: blank},
	}
}

func parseNumber(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	n, ok := tengo.ToInt64(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "first", Expected: "int", Found: args[0].TypeName()}
	}
	mode, err := filemode.ParseNumber(n)
	return recordOrError(mode, err)
}

func parseOctal(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	var in filemode.OctalInput
	switch arg := args[0].(type) {
	case *tengo.String:
		in = filemode.OctalString(arg.Value)
	case *tengo.Int:
		in = filemode.OctalNumber(arg.Value)
	default:
		return nil, tengo.ErrInvalidArgumentType{Name: "first", Expected: "string/int", Found: args[0].TypeName()}
	}
	mode, err := filemode.ParseOctal(in)
	return recordOrError(mode, err)
}

func parseString(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	s, ok := args[0].(*tengo.String)
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "first", Expected: "string", Found: args[0].TypeName()}
	}
	mode, err := filemode.ParseString(s.Value)
	return recordOrError(mode, err)
}

func toString(args ...tengo.Object) (tengo.Object, error) {
	return encode(args, func(m filemode.FileMode) tengo.Object {
		return &tengo.String{Value: m.String()}
	})
}

func toOctal(args ...tengo.Object) (tengo.Object, error) {
	return encode(args, func(m filemode.FileMode) tengo.Object {
		return &tengo.String{Value: m.Octal()}
	})
}

func toDecimal(args ...tengo.Object) (tengo.Object, error) {
	return encode(args, func(m filemode.FileMode) tengo.Object {
		return &tengo.Int{Value: int64(m.Decimal())}
	})
}

func blank(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return recordObject(filemode.Blank())
}

func encode(args []tengo.Object, fn func(filemode.FileMode) tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	mode, err := modeFromObject(args[0])
	if err != nil {
		return errorObject(err), nil
	}
	return fn(mode), nil
}

// modeFromObject accepts a record map, a symbolic or octal string, or an int.
func modeFromObject(obj tengo.Object) (filemode.FileMode, error) {
	switch o := obj.(type) {
	case *tengo.String:
		var mode filemode.FileMode
		err := mode.UnmarshalText([]byte(o.Value))
		return mode, err
	case *tengo.Int:
		return filemode.ParseNumber(o.Value)
	case *tengo.Map, *tengo.ImmutableMap:
		m, _ := tengo.ToInterface(o).(map[string]interface{})
		return modeFromMap(m), nil
	default:
		return filemode.FileMode{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, obj.TypeName())
	}
}

func modeFromMap(m map[string]interface{}) filemode.FileMode {
	record := filemode.Record{
		User:    triadFromMap(m["user"]),
		Group:   triadFromMap(m["group"]),
		Other:   triadFromMap(m["other"]),
		Special: map[string]bool{},
	}
	if special, ok := m["special"].(map[string]interface{}); ok {
		for name, v := range special {
			b, _ := v.(bool)
			record.Special[name] = b
		}
	}
	return record.FileMode()
}

func triadFromMap(v interface{}) filemode.Triad {
	m, _ := v.(map[string]interface{})
	flag := func(name string) bool {
		b, _ := m[name].(bool)
		return b
	}
	return filemode.Triad{Read: flag("read"), Write: flag("write"), Execute: flag("execute")}
}

func recordOrError(mode filemode.FileMode, err error) (tengo.Object, error) {
	if err != nil {
		return errorObject(err), nil
	}
	return recordObject(mode)
}

func recordObject(mode filemode.FileMode) (tengo.Object, error) {
	r := mode.Record()
	special := make(map[string]interface{}, len(r.Special))
	for k, v := range r.Special {
		special[k] = v
	}
	return tengo.FromInterface(map[string]interface{}{
		"symbolic": r.Symbolic,
		"octal":    r.Octal,
		"decimal":  int64(r.Decimal),
		"user":     triadMap(r.User),
		"group":    triadMap(r.Group),
		"other":    triadMap(r.Other),
		"special":  special,
	})
}

func triadMap(t filemode.Triad) map[string]interface{} {
	return map[string]interface{}{"read": t.Read, "write": t.Write, "execute": t.Execute}
}

// Codec failures surface as tengo error values so scripts can test them with
// is_error().
func errorObject(err error) tengo.Object {
	return &tengo.Error{Value: &tengo.String{Value: err.Error()}}
}
