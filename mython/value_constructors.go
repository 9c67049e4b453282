package mython

func NewNone() Value               { return Value{kind: KindNone} }
func NewNumber(n int64) Value      { return Value{kind: KindNumber, data: n} }
func NewString(s string) Value     { return Value{kind: KindString, data: s} }
func NewBool(b bool) Value         { return Value{kind: KindBool, data: b} }
func NewClassValue(c *Class) Value { return Value{kind: KindClass, data: c} }

func NewInstanceValue(inst *Instance) Value {
	return Value{kind: KindInstance, data: inst}
}
