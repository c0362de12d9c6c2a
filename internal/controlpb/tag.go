package controlpb

import "fmt"

// SetOrToggle selects a boolean transition.
type SetOrToggle int32

const (
	SetOrToggleUnspecified SetOrToggle = 0
	SetOrToggleSet         SetOrToggle = 1
	SetOrToggleUnset       SetOrToggle = 2
	SetOrToggleToggle      SetOrToggle = 3
)

func (v SetOrToggle) String() string {
	switch v {
	case SetOrToggleSet:
		return "SET_OR_TOGGLE_SET"
	case SetOrToggleUnset:
		return "SET_OR_TOGGLE_UNSET"
	case SetOrToggleToggle:
		return "SET_OR_TOGGLE_TOGGLE"
	case SetOrToggleUnspecified:
		return "SET_OR_TOGGLE_UNSPECIFIED"
	default:
		return fmt.Sprintf("SET_OR_TOGGLE(%d)", int32(v))
	}
}

// Empty carries no fields.
type Empty struct{}

func (m *Empty) AppendWire(b []byte) []byte { return b }

func (m *Empty) UnmarshalWire(b []byte) error {
	return walk(b, func(field) error { return nil })
}

// SetActiveRequest is tagwm.tag.v1.SetActiveRequest.
type SetActiveRequest struct {
	TagId       uint32
	SetOrToggle SetOrToggle
}

func (m *SetActiveRequest) AppendWire(b []byte) []byte {
	b = appendUint(b, 1, uint64(m.TagId))
	return appendInt32(b, 2, int32(m.SetOrToggle))
}

func (m *SetActiveRequest) UnmarshalWire(b []byte) error {
	*m = SetActiveRequest{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.TagId, err = f.uint32()
		case 2:
			var v int32
			v, err = f.int32()
			m.SetOrToggle = SetOrToggle(v)
		}
		return err
	})
}

// SwitchToRequest is tagwm.tag.v1.SwitchToRequest.
type SwitchToRequest struct {
	TagId uint32
}

func (m *SwitchToRequest) AppendWire(b []byte) []byte {
	return appendUint(b, 1, uint64(m.TagId))
}

func (m *SwitchToRequest) UnmarshalWire(b []byte) error {
	*m = SwitchToRequest{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.TagId, err = f.uint32()
		}
		return err
	})
}

// AddRequest is tagwm.tag.v1.AddRequest.
type AddRequest struct {
	OutputName string
	TagNames   []string
}

func (m *AddRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.OutputName)
	return appendStrings(b, 2, m.TagNames)
}

func (m *AddRequest) UnmarshalWire(b []byte) error {
	*m = AddRequest{}
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			v, err := f.string()
			m.OutputName = v
			return err
		case 2:
			v, err := f.string()
			if err != nil {
				return err
			}
			m.TagNames = append(m.TagNames, v)
		}
		return nil
	})
}

// AddResponse is tagwm.tag.v1.AddResponse.
type AddResponse struct {
	TagIds []uint32
}

func (m *AddResponse) AppendWire(b []byte) []byte {
	return appendPackedUint32(b, 1, m.TagIds)
}

func (m *AddResponse) UnmarshalWire(b []byte) error {
	*m = AddResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.TagIds, err = f.appendUint32s(m.TagIds)
		}
		return err
	})
}

// RemoveRequest is tagwm.tag.v1.RemoveRequest.
type RemoveRequest struct {
	TagIds []uint32
}

func (m *RemoveRequest) AppendWire(b []byte) []byte {
	return appendPackedUint32(b, 1, m.TagIds)
}

func (m *RemoveRequest) UnmarshalWire(b []byte) error {
	*m = RemoveRequest{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.TagIds, err = f.appendUint32s(m.TagIds)
		}
		return err
	})
}

// GetTagsRequest is tagwm.tag.v1.GetRequest.
type GetTagsRequest struct{}

func (m *GetTagsRequest) AppendWire(b []byte) []byte { return b }

func (m *GetTagsRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(field) error { return nil })
}

// GetTagsResponse is tagwm.tag.v1.GetResponse.
type GetTagsResponse struct {
	TagIds []uint32
}

func (m *GetTagsResponse) AppendWire(b []byte) []byte {
	return appendPackedUint32(b, 1, m.TagIds)
}

func (m *GetTagsResponse) UnmarshalWire(b []byte) error {
	*m = GetTagsResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.TagIds, err = f.appendUint32s(m.TagIds)
		}
		return err
	})
}

// GetTagPropertiesRequest is tagwm.tag.v1.GetPropertiesRequest.
type GetTagPropertiesRequest struct {
	TagId uint32
}

func (m *GetTagPropertiesRequest) AppendWire(b []byte) []byte {
	return appendUint(b, 1, uint64(m.TagId))
}

func (m *GetTagPropertiesRequest) UnmarshalWire(b []byte) error {
	*m = GetTagPropertiesRequest{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.TagId, err = f.uint32()
		}
		return err
	})
}

// GetTagPropertiesResponse is tagwm.tag.v1.GetPropertiesResponse.
type GetTagPropertiesResponse struct {
	Active     bool
	Name       string
	OutputName string
	WindowIds  []uint32
}

func (m *GetTagPropertiesResponse) AppendWire(b []byte) []byte {
	b = appendBool(b, 1, m.Active)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.OutputName)
	return appendPackedUint32(b, 4, m.WindowIds)
}

func (m *GetTagPropertiesResponse) UnmarshalWire(b []byte) error {
	*m = GetTagPropertiesResponse{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Active, err = f.bool()
		case 2:
			m.Name, err = f.string()
		case 3:
			m.OutputName, err = f.string()
		case 4:
			m.WindowIds, err = f.appendUint32s(m.WindowIds)
		}
		return err
	})
}
