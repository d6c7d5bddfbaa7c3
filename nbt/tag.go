// Package nbt holds the in-memory NBT tag model: a closed set of typed tags,
// an insertion-ordered Compound, and a List whose elements share one kind.
//
// The model carries no encoding logic; the Mojangson text form lives in the
// root package and binary NBT is not implemented.
package nbt

// Kind identifies a tag variant. Values follow the NBT type ids.
type Kind uint8

const (
	KindEnd Kind = iota // element kind of an empty list
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// String returns the tag name as used in NBT tooling (for example "TAG_Int").
func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "TAG_End"
	case KindByte:
		return "TAG_Byte"
	case KindShort:
		return "TAG_Short"
	case KindInt:
		return "TAG_Int"
	case KindLong:
		return "TAG_Long"
	case KindFloat:
		return "TAG_Float"
	case KindDouble:
		return "TAG_Double"
	case KindByteArray:
		return "TAG_Byte_Array"
	case KindString:
		return "TAG_String"
	case KindList:
		return "TAG_List"
	case KindCompound:
		return "TAG_Compound"
	case KindIntArray:
		return "TAG_Int_Array"
	case KindLongArray:
		return "TAG_Long_Array"
	default:
		return "TAG_Unknown"
	}
}

// Tag is one node of an NBT tree. The set of implementations is closed: only
// the types in this package satisfy it directly.
type Tag interface {
	Kind() Kind
	isTag()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (String) Kind() Kind    { return KindString }
func (ByteArray) Kind() Kind { return KindByteArray }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (String) isTag()    {}
func (ByteArray) isTag() {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}

// Bool returns Byte(1) for true and Byte(0) for false.
func Bool(b bool) Byte {
	if b {
		return 1
	}
	return 0
}

// Named pairs a key with a tag as stored inside a Compound. It reports the
// kind of the wrapped tag.
type Named struct {
	Name string
	Tag  Tag
}

func (n Named) Kind() Kind {
	if n.Tag == nil {
		return KindEnd
	}
	return n.Tag.Kind()
}

func (Named) isTag() {}
