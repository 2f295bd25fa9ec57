package fixedstring

type Buffer interface {
	~[5]byte | ~[9]byte
}

type Cap4 [5]byte
type Cap8 [9]byte

type Truncation struct{}

var Truncate Truncation

type String[B Buffer] struct {
	buf B
	n   uint64
}

func FromString[B Buffer](_ Truncation, str string) String[B] {
	return String[B]{}
}

func (s *String[B]) UnsafeAssign(str string) bool {
	return len(str) < len(s.buf)
}

func From[B Buffer](src B) String[B] {
	return String[B]{buf: src}
}

func (s *String[B]) Set(src B) {
	s.buf = src
}

func (s *String[B]) AssignArray(src B) {
	s.Set(src)
}
