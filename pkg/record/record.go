// Package record encodes structs made of fixed-width primitives and
// fixedstring values into records of constant size, suitable for shared
// memory slots and wire frames.
//
// Layout: exported fields in declaration order, no header, no padding.
// Primitives are little-endian; strings use their binary layout
// (Capacity+1 bytes followed by a little-endian uint64 length).
package record

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/fixedstring"
	"github.com/rawbytedev/fixedstring/internal/common"
)

var (
	ErrNotStruct    = errors.New("record: expected struct")
	ErrNotStructPtr = errors.New("record: expected pointer to struct")
	ErrUnsupported  = errors.New("record: unsupported field type")
	ErrShortBuffer  = errors.New("record: short buffer")
)

var fixedType = reflect.TypeFor[fixedstring.Fixed]()

type Codec struct {
	plan map[reflect.Type]*Plan
	mu   sync.RWMutex
}

// Plan is the cached layout of one struct type.
type Plan struct {
	size   int
	fields []fieldInfo
}

type fieldInfo struct {
	idx    int
	name   string
	kind   reflect.Kind
	fixed  bool // fixedstring value
	offset int
	size   int
}

// Size returns the encoded size of a record.
func (p *Plan) Size() int { return p.size }

// Aligned reports whether every primitive field starts at an offset that is
// a multiple of its natural alignment, so a record placed at an 8-byte
// boundary can be read in place.
func (p *Plan) Aligned() bool {
	for _, f := range p.fields {
		if !f.fixed && f.offset%common.Alignment(f.kind) != 0 {
			return false
		}
	}
	return true
}

func NewCodec() *Codec {
	return &Codec{plan: make(map[reflect.Type]*Plan)}
}

// PlanFor returns the layout of struct type t, computing it on first use.
func (c *Codec) PlanFor(t reflect.Type) (*Plan, error) {
	if t.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}
	c.mu.RLock()
	if plan, ok := c.plan[t]; ok {
		c.mu.RUnlock()
		return plan, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check
	if plan, ok := c.plan[t]; ok {
		return plan, nil
	}

	plan := &Plan{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue // includes embedded unexported types
		}
		info := fieldInfo{idx: i, name: sf.Name, kind: sf.Type.Kind(), offset: plan.size}
		switch {
		case common.IsFixedKind(info.kind):
			info.size = common.FixedSize(info.kind)
		case reflect.PointerTo(sf.Type).Implements(fixedType):
			info.fixed = true
			info.size = reflect.New(sf.Type).Interface().(fixedstring.Fixed).BinarySize()
		default:
			return nil, fmt.Errorf("%w: field %s of kind %s", ErrUnsupported, sf.Name, info.kind)
		}
		plan.size += info.size
		plan.fields = append(plan.fields, info)
	}
	c.plan[t] = plan
	return plan, nil
}

// Size returns the encoded size of records of val's type.
func (c *Codec) Size(val any) (int, error) {
	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	plan, err := c.PlanFor(v.Type())
	if err != nil {
		return 0, err
	}
	return plan.size, nil
}

// Encode returns the record encoding of val, a struct or pointer to struct.
func (c *Codec) Encode(val any) ([]byte, error) {
	return c.AppendEncode(nil, val)
}

// AppendEncode appends the record encoding of val to dst.
func (c *Codec) AppendEncode(dst []byte, val any) ([]byte, error) {
	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return dst, ErrNotStruct
	}
	plan, err := c.PlanFor(v.Type())
	if err != nil {
		return dst, err
	}
	if plan.hasFixed() && !v.CanAddr() {
		// String methods have pointer receivers.
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		v = tmp
	}
	dst = grow(dst, plan.size)
	for _, field := range plan.fields {
		fv := v.Field(field.idx)
		if field.fixed {
			dst, err = fv.Addr().Interface().(fixedstring.Fixed).AppendBinary(dst)
			if err != nil {
				return dst, fmt.Errorf("record: field %s: %w", field.name, err)
			}
			continue
		}
		dst = common.PutFixed(dst, fv, field.kind)
	}
	return dst, nil
}

// Decode fills out, a pointer to struct, from the first record in data.
// On error out is unchanged.
func (c *Codec) Decode(data []byte, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPtr
	}
	dst := v.Elem()
	plan, err := c.PlanFor(dst.Type())
	if err != nil {
		return err
	}
	if len(data) < plan.size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortBuffer, len(data), plan.size)
	}
	// Decode into a copy so a failing field leaves out untouched.
	tmp := reflect.New(dst.Type()).Elem()
	tmp.Set(dst)
	for _, field := range plan.fields {
		fv := tmp.Field(field.idx)
		b := data[field.offset : field.offset+field.size]
		if field.fixed {
			if err := fv.Addr().Interface().(fixedstring.Fixed).UnmarshalBinary(b); err != nil {
				return fmt.Errorf("record: field %s: %w", field.name, err)
			}
			continue
		}
		common.SetFixed(fv, b, field.kind)
	}
	dst.Set(tmp)
	return nil
}

func (p *Plan) hasFixed() bool {
	for _, f := range p.fields {
		if f.fixed {
			return true
		}
	}
	return false
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}
