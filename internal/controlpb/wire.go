// Package controlpb holds the control protocol messages and gRPC service
// descriptors. The messages mirror proto/tagwm/v1/*.proto field for field and
// encode with google.golang.org/protobuf/encoding/protowire, so any protobuf
// client speaking those files interoperates.
package controlpb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every control protocol message.
type Message interface {
	AppendWire(b []byte) []byte
	UnmarshalWire(b []byte) error
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendUint(b, num, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	return appendUint(b, num, 1)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendStrings(b []byte, num protowire.Number, vals []string) []byte {
	for _, v := range vals {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

// appendPackedUint32 writes a packed repeated uint32 field.
func appendPackedUint32(b []byte, num protowire.Number, vals []uint32) []byte {
	if len(vals) == 0 {
		return b
	}
	size := 0
	for _, v := range vals {
		size += protowire.SizeVarint(uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(size))
	for _, v := range vals {
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

// field is one decoded field. Varint fields set value, length-delimited
// fields set data.
type field struct {
	num   protowire.Number
	typ   protowire.Type
	value uint64
	data  []byte
}

// walk decodes b field by field. Unknown fields are skipped.
func walk(b []byte, visit func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.value, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.data, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}
		if err := visit(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) uint32() (uint32, error) {
	if f.typ != protowire.VarintType {
		return 0, f.wrongType()
	}
	return uint32(f.value), nil
}

func (f field) int32() (int32, error) {
	if f.typ != protowire.VarintType {
		return 0, f.wrongType()
	}
	return int32(f.value), nil
}

func (f field) bool() (bool, error) {
	if f.typ != protowire.VarintType {
		return false, f.wrongType()
	}
	return f.value != 0, nil
}

func (f field) string() (string, error) {
	if f.typ != protowire.BytesType {
		return "", f.wrongType()
	}
	return string(f.data), nil
}

// appendUint32s accepts both packed and unpacked encodings.
func (f field) appendUint32s(dst []uint32) ([]uint32, error) {
	switch f.typ {
	case protowire.VarintType:
		return append(dst, uint32(f.value)), nil
	case protowire.BytesType:
		b := f.data
		for len(b) > 0 {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return dst, protowire.ParseError(n)
			}
			dst = append(dst, uint32(v))
			b = b[n:]
		}
		return dst, nil
	default:
		return dst, f.wrongType()
	}
}

func (f field) wrongType() error {
	return fmt.Errorf("controlpb: field %d has unexpected wire type %d", f.num, f.typ)
}
