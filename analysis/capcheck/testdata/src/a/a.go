package a

import fs "github.com/rawbytedev/fixedstring"

const topic = "orders/created"

func construct(dyn string) {
	_ = fs.FromString[fs.Cap4](fs.Truncate, "abcd")
	_ = fs.FromString[fs.Cap4](fs.Truncate, "hello") // want `constant of 5 bytes is truncated to capacity 4`
	_ = fs.FromString[fs.Cap8](fs.Truncate, topic)   // want `constant of 14 bytes is truncated to capacity 8`
	_ = fs.FromString[fs.Cap8](fs.Truncate, "orders/"+"x")
	_ = fs.FromString[fs.Cap4](fs.Truncate, dyn)
}

func assign(dyn string) {
	var s fs.String[fs.Cap4]
	s.UnsafeAssign("fits")
	s.UnsafeAssign("too long") // want `constant of 8 bytes never fits capacity 4; assignment always fails`
	p := &s
	_ = p.UnsafeAssign("12345") // want `constant of 5 bytes never fits capacity 4; assignment always fails`
	s.UnsafeAssign(dyn)

	var t fs.String[fs.Cap8]
	t.UnsafeAssign(topic) // want `constant of 14 bytes never fits capacity 8; assignment always fails`
}

func checked(b byte) {
	_ = fs.From(fs.Cap4{'a', 'b', 'c', 'd'})
	_ = fs.From(fs.Cap4{'a', 'b', 'c', 'd', 0})
	_ = fs.From(fs.Cap4{'a', 'b', 'c', 'd', 'e'}) // want `array literal fills the terminator slot of capacity 4; element 4 is dropped`
	_ = fs.From(fs.Cap4{4: 'z'})                  // want `array literal fills the terminator slot of capacity 4; element 4 is dropped`
	_ = fs.From(fs.Cap4{'a', 'b', 'c', 'd', b})

	var s fs.String[fs.Cap4]
	s.Set(fs.Cap4{'v', 'w', 'x', 'y', 'z'})         // want `array literal fills the terminator slot of capacity 4; element 4 is dropped`
	s.AssignArray([5]byte{'1', '2', '3', '4', '5'}) // want `array literal fills the terminator slot of capacity 4; element 4 is dropped`
	s.Set(fs.Cap4{'o', 'k'})
}
