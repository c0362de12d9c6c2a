package controlpb

import (
	"slices"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodecRoundTripsProperties(t *testing.T) {
	codec := Codec{}
	in := &GetTagPropertiesResponse{Active: true, Name: "web", OutputName: "DP-1", WindowIds: []uint32{3, 300, 70000}}
	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &GetTagPropertiesResponse{Name: "stale"}
	if err := codec.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Active != in.Active || out.Name != in.Name || out.OutputName != in.OutputName || !slices.Equal(out.WindowIds, in.WindowIds) {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestNegativeCoordinatesUseInt32Encoding(t *testing.T) {
	in := &OutputMoveResponse{OutputName: "DP-2", X: -1920, Y: 0}
	data := in.AppendWire(nil)

	// Field 2 is a ten byte varint per the int32 wire rules.
	rest := data[2+len("DP-2"):]
	num, typ, n := protowire.ConsumeTag(rest)
	if num != 2 || typ != protowire.VarintType {
		t.Fatalf("unexpected tag %d/%d", num, typ)
	}
	_, vn := protowire.ConsumeVarint(rest[n:])
	if vn != 10 {
		t.Fatalf("expected 10 byte varint, got %d", vn)
	}
	var out OutputMoveResponse
	if err := out.UnmarshalWire(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestUnpackedRepeatedAndUnknownFieldsDecode(t *testing.T) {
	var b []byte
	for _, id := range []uint64{1, 2} {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, id)
	}
	b = protowire.AppendTag(b, 9, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendString(b, "future")

	var out RemoveRequest
	if err := out.UnmarshalWire(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !slices.Equal(out.TagIds, []uint32{1, 2}) {
		t.Fatalf("tag ids %v", out.TagIds)
	}
}

func TestZeroValuesEncodeEmpty(t *testing.T) {
	if got := (&SignalRequest{}).AppendWire(nil); len(got) != 0 {
		t.Fatalf("expected empty encoding, got %x", got)
	}
	if got := (&SetActiveRequest{}).AppendWire(nil); len(got) != 0 {
		t.Fatalf("expected empty encoding, got %x", got)
	}
}

func TestTruncatedInputFails(t *testing.T) {
	data := (&AddRequest{OutputName: "DP-1", TagNames: []string{"a", "b"}}).AppendWire(nil)
	var out AddRequest
	if err := out.UnmarshalWire(data[:len(data)-1]); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	if _, err := (Codec{}).Marshal("nope"); err == nil {
		t.Fatalf("expected marshal error")
	}
	if err := (Codec{}).Unmarshal(nil, new(int)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
