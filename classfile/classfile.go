// Package classfile holds plain data structures mirroring the Java
// class-file binary format, and a reader that walks class-file bytes
// into them.
//
// Textual constants in a class file are Modified UTF-8, so constant
// pool Utf8 entries carry a mutf8.String rather than a Go string. A
// Utf8 entry that fails validation is a malformed constant pool entry;
// it is surfaced as an error, never silently repaired.
package classfile

import (
	"errors"

	"github.com/jpl-au/mutf8"
)

// Sentinel errors for programmatic handling. ErrMalformedConstant wraps
// a *mutf8.DecodeError carrying the rejected bytes.
var (
	ErrBadMagic           = errors.New("bad magic number")
	ErrUnsupportedVersion = errors.New("unsupported class file version")
	ErrMalformedConstant  = errors.New("malformed constant pool entry")
	ErrBadIndex           = errors.New("constant pool index out of range")
	ErrNotFound           = errors.New("entry not found")
)

// Constant pool tags.
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldref           = 9
	TagMethodref          = 10
	TagInterfaceMethodref = 11
	TagNameAndType        = 12
	TagMethodHandle       = 15
	TagMethodType         = 16
	TagDynamic            = 17
	TagInvokeDynamic      = 18
	TagModule             = 19
	TagPackage            = 20
)

// ClassFile represents a parsed .class file. Attribute payloads are
// kept raw; this package does not decode bytecode, stack maps, or
// annotation bodies.
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool []ConstantPoolEntry
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

// ConstantPoolEntry is implemented by all constant pool entry types.
type ConstantPoolEntry interface {
	Tag() uint8
}

// ConstantUtf8 is a validated Modified UTF-8 text constant.
type ConstantUtf8 struct {
	Value mutf8.String
}

func (c *ConstantUtf8) Tag() uint8 { return TagUtf8 }

type ConstantInteger struct {
	Value int32
}

func (c *ConstantInteger) Tag() uint8 { return TagInteger }

type ConstantFloat struct {
	Value float32
}

func (c *ConstantFloat) Tag() uint8 { return TagFloat }

type ConstantLong struct {
	Value int64
}

func (c *ConstantLong) Tag() uint8 { return TagLong }

type ConstantDouble struct {
	Value float64
}

func (c *ConstantDouble) Tag() uint8 { return TagDouble }

type ConstantClass struct {
	NameIndex uint16
}

func (c *ConstantClass) Tag() uint8 { return TagClass }

type ConstantString struct {
	StringIndex uint16
}

func (c *ConstantString) Tag() uint8 { return TagString }

type ConstantFieldref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantFieldref) Tag() uint8 { return TagFieldref }

type ConstantMethodref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantMethodref) Tag() uint8 { return TagMethodref }

type ConstantInterfaceMethodref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantInterfaceMethodref) Tag() uint8 { return TagInterfaceMethodref }

type ConstantNameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndType) Tag() uint8 { return TagNameAndType }

type ConstantMethodHandle struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

func (c *ConstantMethodHandle) Tag() uint8 { return TagMethodHandle }

type ConstantMethodType struct {
	DescriptorIndex uint16
}

func (c *ConstantMethodType) Tag() uint8 { return TagMethodType }

type ConstantDynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantDynamic) Tag() uint8 { return TagDynamic }

type ConstantInvokeDynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantInvokeDynamic) Tag() uint8 { return TagInvokeDynamic }

type ConstantModule struct {
	NameIndex uint16
}

func (c *ConstantModule) Tag() uint8 { return TagModule }

type ConstantPackage struct {
	NameIndex uint16
}

func (c *ConstantPackage) Tag() uint8 { return TagPackage }

// FieldInfo represents a field, with its name and descriptor resolved
// from the constant pool.
type FieldInfo struct {
	AccessFlags uint16
	Name        mutf8.String
	Descriptor  mutf8.String
	Attributes  []AttributeInfo
}

// MethodInfo represents a method, with its name and descriptor resolved
// from the constant pool.
type MethodInfo struct {
	AccessFlags uint16
	Name        mutf8.String
	Descriptor  mutf8.String
	Attributes  []AttributeInfo
}

// AttributeInfo is a raw attribute: its resolved name and undecoded
// payload.
type AttributeInfo struct {
	Name mutf8.String
	Data []byte
}

// UTF8At resolves a constant pool index to its Utf8 entry.
func UTF8At(pool []ConstantPoolEntry, idx uint16) (mutf8.String, error) {
	if int(idx) >= len(pool) || pool[idx] == nil {
		return mutf8.String{}, ErrBadIndex
	}
	u, ok := pool[idx].(*ConstantUtf8)
	if !ok {
		return mutf8.String{}, ErrBadIndex
	}
	return u.Value, nil
}

// ClassNameAt resolves a constant pool index to the name of the Class
// entry it denotes.
func ClassNameAt(pool []ConstantPoolEntry, idx uint16) (mutf8.String, error) {
	if int(idx) >= len(pool) || pool[idx] == nil {
		return mutf8.String{}, ErrBadIndex
	}
	c, ok := pool[idx].(*ConstantClass)
	if !ok {
		return mutf8.String{}, ErrBadIndex
	}
	return UTF8At(pool, c.NameIndex)
}

// Name returns this class's fully qualified internal name.
func (cf *ClassFile) Name() (mutf8.String, error) {
	return ClassNameAt(cf.ConstantPool, cf.ThisClass)
}

// SuperName returns the super class's name, or the empty string for
// java/lang/Object (SuperClass == 0).
func (cf *ClassFile) SuperName() (mutf8.String, error) {
	if cf.SuperClass == 0 {
		return mutf8.String{}, nil
	}
	return ClassNameAt(cf.ConstantPool, cf.SuperClass)
}

// Attribute returns the first class-level attribute with the given
// name, or ErrNotFound.
func (cf *ClassFile) Attribute(name string) (AttributeInfo, error) {
	for _, a := range cf.Attributes {
		if a.Name.UTF8() == name {
			return a, nil
		}
	}
	return AttributeInfo{}, ErrNotFound
}

// SourceFile returns the value of the SourceFile attribute, if present.
func (cf *ClassFile) SourceFile() (mutf8.String, error) {
	a, err := cf.Attribute("SourceFile")
	if err != nil {
		return mutf8.String{}, err
	}
	if len(a.Data) != 2 {
		return mutf8.String{}, ErrBadIndex
	}
	idx := uint16(a.Data[0])<<8 | uint16(a.Data[1])
	return UTF8At(cf.ConstantPool, idx)
}
