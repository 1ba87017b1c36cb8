// Package v1pb holds the wire types of the calculator.v1 API described in
// calculator.proto. The types are maintained by hand and carry the protobuf
// struct tags the gRPC codec marshals from.
package v1pb

import (
	proto "github.com/gogo/protobuf/proto"
)

type AngleMode int32

const (
	DEGREE AngleMode = 0
	RADIAN AngleMode = 1
)

var AngleMode_name = map[int32]string{
	0: "DEGREE",
	1: "RADIAN",
}

var AngleMode_value = map[string]int32{
	"DEGREE": 0,
	"RADIAN": 1,
}

func (x AngleMode) String() string {
	return proto.EnumName(AngleMode_name, int32(x))
}

type ResultKind int32

const (
	FINAL        ResultKind = 0
	INTERMEDIATE ResultKind = 1
	ERROR        ResultKind = 2
)

var ResultKind_name = map[int32]string{
	0: "FINAL",
	1: "INTERMEDIATE",
	2: "ERROR",
}

var ResultKind_value = map[string]int32{
	"FINAL":        0,
	"INTERMEDIATE": 1,
	"ERROR":        2,
}

func (x ResultKind) String() string {
	return proto.EnumName(ResultKind_name, int32(x))
}

type Command int32

const (
	PUSH           Command = 0
	UNDO           Command = 1
	RESET          Command = 2
	SET_ANGLE_MODE Command = 3
)

var Command_name = map[int32]string{
	0: "PUSH",
	1: "UNDO",
	2: "RESET",
	3: "SET_ANGLE_MODE",
}

var Command_value = map[string]int32{
	"PUSH":           0,
	"UNDO":           1,
	"RESET":          2,
	"SET_ANGLE_MODE": 3,
}

func (x Command) String() string {
	return proto.EnumName(Command_name, int32(x))
}

type Result struct {
	Kind         ResultKind `protobuf:"varint,1,opt,name=kind,proto3,enum=calculator.v1.ResultKind" json:"kind,omitempty"`
	Value        float64    `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	LastOperator string     `protobuf:"bytes,3,opt,name=last_operator,json=lastOperator,proto3" json:"last_operator,omitempty"`
	OpenBrackets int32      `protobuf:"varint,4,opt,name=open_brackets,json=openBrackets,proto3" json:"open_brackets,omitempty"`
	AngleMode    AngleMode  `protobuf:"varint,5,opt,name=angle_mode,json=angleMode,proto3,enum=calculator.v1.AngleMode" json:"angle_mode,omitempty"`
}

func (m *Result) Reset()         { *m = Result{} }
func (m *Result) String() string { return proto.CompactTextString(m) }
func (*Result) ProtoMessage()    {}

func (m *Result) GetKind() ResultKind {
	if m != nil {
		return m.Kind
	}
	return FINAL
}

func (m *Result) GetValue() float64 {
	if m != nil {
		return m.Value
	}
	return 0
}

type EvaluateRequest struct {
	Expression string    `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	AngleMode  AngleMode `protobuf:"varint,2,opt,name=angle_mode,json=angleMode,proto3,enum=calculator.v1.AngleMode" json:"angle_mode,omitempty"`
}

func (m *EvaluateRequest) Reset()         { *m = EvaluateRequest{} }
func (m *EvaluateRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateRequest) ProtoMessage()    {}

type EvaluateResponse struct {
	Result *Result `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateResponse) Reset()         { *m = EvaluateResponse{} }
func (m *EvaluateResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateResponse) ProtoMessage()    {}

func (m *EvaluateResponse) GetResult() *Result {
	if m != nil {
		return m.Result
	}
	return nil
}

type SessionRequest struct {
	Command   Command   `protobuf:"varint,1,opt,name=command,proto3,enum=calculator.v1.Command" json:"command,omitempty"`
	Input     string    `protobuf:"bytes,2,opt,name=input,proto3" json:"input,omitempty"`
	AngleMode AngleMode `protobuf:"varint,3,opt,name=angle_mode,json=angleMode,proto3,enum=calculator.v1.AngleMode" json:"angle_mode,omitempty"`
}

func (m *SessionRequest) Reset()         { *m = SessionRequest{} }
func (m *SessionRequest) String() string { return proto.CompactTextString(m) }
func (*SessionRequest) ProtoMessage()    {}

type SessionResponse struct {
	Result       *Result `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	InvalidToken string  `protobuf:"bytes,2,opt,name=invalid_token,json=invalidToken,proto3" json:"invalid_token,omitempty"`
}

func (m *SessionResponse) Reset()         { *m = SessionResponse{} }
func (m *SessionResponse) String() string { return proto.CompactTextString(m) }
func (*SessionResponse) ProtoMessage()    {}

func (m *SessionResponse) GetResult() *Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func init() {
	proto.RegisterEnum("calculator.v1.AngleMode", AngleMode_name, AngleMode_value)
	proto.RegisterEnum("calculator.v1.ResultKind", ResultKind_name, ResultKind_value)
	proto.RegisterEnum("calculator.v1.Command", Command_name, Command_value)
	proto.RegisterType((*Result)(nil), "calculator.v1.Result")
	proto.RegisterType((*EvaluateRequest)(nil), "calculator.v1.EvaluateRequest")
	proto.RegisterType((*EvaluateResponse)(nil), "calculator.v1.EvaluateResponse")
	proto.RegisterType((*SessionRequest)(nil), "calculator.v1.SessionRequest")
	proto.RegisterType((*SessionResponse)(nil), "calculator.v1.SessionResponse")
}
