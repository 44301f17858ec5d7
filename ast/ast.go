// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value tree for JSON documents, and a parser that
// constructs value trees from the token stream produced by jparse.Tokenize.
package ast

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/axololly/jparse"
)

// A Value is an arbitrary JSON value. The concrete type is one of Int, Float,
// String, Bool, Array, *Object, the Null constant, or the Empty sentinel.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

// An Int is an integer value: a number with no fraction or exponent.
type Int int64

// JSON satisfies the Value interface.
func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Float is a floating-point value: a number with a fraction and/or exponent.
type Float float64

// JSON satisfies the Value interface. The result always contains a fraction
// or exponent, so it parses back as a Float.
func (f Float) JSON() string {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "null" // not representable
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	s = strings.Replace(s, "e+", "e", 1)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jparse.Quote(string(s)) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

type nullValue struct{}

func (nullValue) JSON() string   { return "null" }
func (nullValue) String() string { return "Null" }

// Null represents the null constant.
var Null Value = nullValue{}

type emptyValue struct{}

func (emptyValue) JSON() string   { return "" }
func (emptyValue) String() string { return "Empty" }

// Empty is the value of a document that contains no tokens at all. It is
// distinct from Null, and from a parse failure.
var Empty Value = emptyValue{}

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elt := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, val Value) *Member { return &Member{Key: key, Value: val} }

// pairJSON renders the member as a "key":value pair. A Member is not itself a
// Value.
func (m *Member) pairJSON() string { return jparse.Quote(m.Key) + ":" + m.Value.JSON() }

// An Object is a collection of key-value members with unique keys. Members are
// kept in the order their keys were first inserted; setting an existing key
// replaces its value in place.
type Object struct {
	members []*Member
	index   map[string]int // key → offset in members
}

// NewObject constructs an object from the given members, in order. If a key
// repeats, the later value wins.
func NewObject(ms ...*Member) *Object {
	o := &Object{index: make(map[string]int, len(ms))}
	for _, m := range ms {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Set sets the value of key to val, adding a new member if key is not already
// present.
func (o *Object) Set(key string, val Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = val
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, &Member{Key: key, Value: val})
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	if i, ok := o.index[key]; ok {
		return o.members[i]
	}
	return nil
}

// Get returns the value of key in o, and reports whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	if m := o.Find(key); m != nil {
		return m.Value, true
	}
	return nil, false
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// Members returns the members of o in insertion order. The caller must not
// modify the returned slice.
func (o *Object) Members() []*Member { return o.members }

// Keys returns the keys of o in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.pairJSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.members)) }

// ToValue converts a Go value into a Value. It handles nil, bool, string, the
// built-in integer and float types, Value, []Value, []any, map[string]any,
// *Member and []*Member. A *Member becomes an object with one member. Map
// keys are added in sorted order. It panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case *Member:
		return NewObject(t)
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case []Value:
		return Array(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case []*Member:
		return NewObject(t...)
	case map[string]any:
		o := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			o.Set(key, ToValue(t[key]))
		}
		return o
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
