package controlgrpc

import (
	"pkt.systems/tagwm/internal/controlpb"
	"pkt.systems/tagwm/schema"
)

func fromPBMode(value controlpb.SetOrToggle) schema.SetActiveMode {
	switch value {
	case controlpb.SetOrToggleSet:
		return schema.SetActiveSet
	case controlpb.SetOrToggleUnset:
		return schema.SetActiveUnset
	case controlpb.SetOrToggleToggle:
		return schema.SetActiveToggle
	default:
		return schema.SetActiveUnspecified
	}
}

func toPBMode(value schema.SetActiveMode) controlpb.SetOrToggle {
	switch value {
	case schema.SetActiveSet:
		return controlpb.SetOrToggleSet
	case schema.SetActiveUnset:
		return controlpb.SetOrToggleUnset
	case schema.SetActiveToggle:
		return controlpb.SetOrToggleToggle
	default:
		return controlpb.SetOrToggleUnspecified
	}
}

func toPBTagIDs(ids []schema.TagID) []uint32 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func fromPBTagIDs(ids []uint32) []schema.TagID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]schema.TagID, len(ids))
	for i, id := range ids {
		out[i] = schema.TagID(id)
	}
	return out
}

func toPBWindowIDs(ids []schema.WindowID) []uint32 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func fromPBWindowIDs(ids []uint32) []schema.WindowID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]schema.WindowID, len(ids))
	for i, id := range ids {
		out[i] = schema.WindowID(id)
	}
	return out
}

func toPBOutputNames(names []schema.OutputName) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}

func fromPBOutputNames(names []string) []schema.OutputName {
	if len(names) == 0 {
		return nil
	}
	out := make([]schema.OutputName, len(names))
	for i, name := range names {
		out[i] = schema.OutputName(name)
	}
	return out
}

// Signal payloads. Each encoder reports false when the signal belongs to a
// different channel.

func toPBOutputConnect(sig schema.Signal) (*controlpb.OutputConnectResponse, bool) {
	s, ok := sig.(schema.OutputConnectSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.OutputConnectResponse{OutputName: string(s.OutputName)}, true
}

func toPBOutputDisconnect(sig schema.Signal) (*controlpb.OutputDisconnectResponse, bool) {
	s, ok := sig.(schema.OutputDisconnectSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.OutputDisconnectResponse{OutputName: string(s.OutputName)}, true
}

func toPBOutputResize(sig schema.Signal) (*controlpb.OutputResizeResponse, bool) {
	s, ok := sig.(schema.OutputResizeSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.OutputResizeResponse{OutputName: string(s.OutputName), LogicalWidth: s.Width, LogicalHeight: s.Height}, true
}

func toPBOutputMove(sig schema.Signal) (*controlpb.OutputMoveResponse, bool) {
	s, ok := sig.(schema.OutputMoveSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.OutputMoveResponse{OutputName: string(s.OutputName), X: s.X, Y: s.Y}, true
}

func toPBWindowPointerEnter(sig schema.Signal) (*controlpb.WindowPointerEnterResponse, bool) {
	s, ok := sig.(schema.WindowPointerEnterSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.WindowPointerEnterResponse{WindowId: uint32(s.WindowID)}, true
}

func toPBWindowPointerLeave(sig schema.Signal) (*controlpb.WindowPointerLeaveResponse, bool) {
	s, ok := sig.(schema.WindowPointerLeaveSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.WindowPointerLeaveResponse{WindowId: uint32(s.WindowID)}, true
}

func toPBTagActive(sig schema.Signal) (*controlpb.TagActiveResponse, bool) {
	s, ok := sig.(schema.TagActiveSignal)
	if !ok {
		return nil, false
	}
	return &controlpb.TagActiveResponse{TagId: uint32(s.TagID), Active: s.Active}, true
}

func fromPBOutputConnect(m *controlpb.OutputConnectResponse) schema.Signal {
	return schema.OutputConnectSignal{OutputName: schema.OutputName(m.OutputName)}
}

func fromPBOutputDisconnect(m *controlpb.OutputDisconnectResponse) schema.Signal {
	return schema.OutputDisconnectSignal{OutputName: schema.OutputName(m.OutputName)}
}

func fromPBOutputResize(m *controlpb.OutputResizeResponse) schema.Signal {
	return schema.OutputResizeSignal{OutputName: schema.OutputName(m.OutputName), Width: m.LogicalWidth, Height: m.LogicalHeight}
}

func fromPBOutputMove(m *controlpb.OutputMoveResponse) schema.Signal {
	return schema.OutputMoveSignal{OutputName: schema.OutputName(m.OutputName), X: m.X, Y: m.Y}
}

func fromPBWindowPointerEnter(m *controlpb.WindowPointerEnterResponse) schema.Signal {
	return schema.WindowPointerEnterSignal{WindowID: schema.WindowID(m.WindowId)}
}

func fromPBWindowPointerLeave(m *controlpb.WindowPointerLeaveResponse) schema.Signal {
	return schema.WindowPointerLeaveSignal{WindowID: schema.WindowID(m.WindowId)}
}

func fromPBTagActive(m *controlpb.TagActiveResponse) schema.Signal {
	return schema.TagActiveSignal{TagID: schema.TagID(m.TagId), Active: m.Active}
}
