// Binary reader for the class-file format. All multi-byte values are
// big-endian. The constant pool is 1-indexed and Long/Double entries
// occupy two slots; the high slot is left nil.
package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jpl-au/mutf8"
)

// ParseFile opens and parses a .class file from the given path.
func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseBytes parses a .class file held in memory.
func ParseBytes(raw []byte) (*ClassFile, error) {
	return Parse(bytes.NewReader(raw))
}

// Parse reads a .class file from r and returns a ClassFile.
func Parse(r io.Reader) (*ClassFile, error) {
	cf := &ClassFile{}

	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("reading magic number: %w", err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: 0x%X", ErrBadMagic, magic)
	}

	if err := binary.Read(r, binary.BigEndian, &cf.MinorVersion); err != nil {
		return nil, fmt.Errorf("reading minor version: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &cf.MajorVersion); err != nil {
		return nil, fmt.Errorf("reading major version: %w", err)
	}
	if cf.MajorVersion < MinVersion || cf.MajorVersion > MaxVersion {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, cf.MajorVersion, cf.MinorVersion)
	}

	var cpCount uint16
	if err := binary.Read(r, binary.BigEndian, &cpCount); err != nil {
		return nil, fmt.Errorf("reading constant pool count: %w", err)
	}
	pool, err := parseConstantPool(r, cpCount)
	if err != nil {
		return nil, fmt.Errorf("parsing constant pool: %w", err)
	}
	cf.ConstantPool = pool

	if err := binary.Read(r, binary.BigEndian, &cf.AccessFlags); err != nil {
		return nil, fmt.Errorf("reading access flags: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &cf.ThisClass); err != nil {
		return nil, fmt.Errorf("reading this_class: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &cf.SuperClass); err != nil {
		return nil, fmt.Errorf("reading super_class: %w", err)
	}

	var interfacesCount uint16
	if err := binary.Read(r, binary.BigEndian, &interfacesCount); err != nil {
		return nil, fmt.Errorf("reading interfaces count: %w", err)
	}
	cf.Interfaces = make([]uint16, interfacesCount)
	for i := uint16(0); i < interfacesCount; i++ {
		if err := binary.Read(r, binary.BigEndian, &cf.Interfaces[i]); err != nil {
			return nil, fmt.Errorf("reading interface %d: %w", i, err)
		}
	}

	var fieldsCount uint16
	if err := binary.Read(r, binary.BigEndian, &fieldsCount); err != nil {
		return nil, fmt.Errorf("reading fields count: %w", err)
	}
	cf.Fields = make([]FieldInfo, fieldsCount)
	for i := range cf.Fields {
		if err := parseMember(r, pool, (*memberInfo)(&cf.Fields[i])); err != nil {
			return nil, fmt.Errorf("parsing field %d: %w", i, err)
		}
	}

	var methodsCount uint16
	if err := binary.Read(r, binary.BigEndian, &methodsCount); err != nil {
		return nil, fmt.Errorf("reading methods count: %w", err)
	}
	cf.Methods = make([]MethodInfo, methodsCount)
	for i := range cf.Methods {
		if err := parseMember(r, pool, (*memberInfo)(&cf.Methods[i])); err != nil {
			return nil, fmt.Errorf("parsing method %d: %w", i, err)
		}
	}

	cf.Attributes, err = parseAttributes(r, pool)
	if err != nil {
		return nil, fmt.Errorf("parsing class attributes: %w", err)
	}

	return cf, nil
}

// parseConstantPool reads count-1 entries. The returned slice is
// 1-indexed: slot 0 and the slot after a Long or Double are nil.
func parseConstantPool(r io.Reader, count uint16) ([]ConstantPoolEntry, error) {
	pool := make([]ConstantPoolEntry, count)

	for i := uint16(1); i < count; i++ {
		var tag uint8
		if err := binary.Read(r, binary.BigEndian, &tag); err != nil {
			return nil, fmt.Errorf("reading tag at index %d: %w", i, err)
		}

		switch tag {
		case TagUtf8:
			var length uint16
			if err := binary.Read(r, binary.BigEndian, &length); err != nil {
				return nil, fmt.Errorf("reading Utf8 length at index %d: %w", i, err)
			}
			raw := make([]byte, length)
			if _, err := io.ReadFull(r, raw); err != nil {
				return nil, fmt.Errorf("reading Utf8 bytes at index %d: %w", i, err)
			}
			value, err := mutf8.NewString(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: index %d: %w", ErrMalformedConstant, i, err)
			}
			pool[i] = &ConstantUtf8{Value: value}

		case TagInteger:
			var v int32
			if err := binary.Read(r, binary.BigEndian, &v); err != nil {
				return nil, fmt.Errorf("reading Integer at index %d: %w", i, err)
			}
			pool[i] = &ConstantInteger{Value: v}

		case TagFloat:
			var bits uint32
			if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
				return nil, fmt.Errorf("reading Float at index %d: %w", i, err)
			}
			pool[i] = &ConstantFloat{Value: math.Float32frombits(bits)}

		case TagLong:
			var v int64
			if err := binary.Read(r, binary.BigEndian, &v); err != nil {
				return nil, fmt.Errorf("reading Long at index %d: %w", i, err)
			}
			pool[i] = &ConstantLong{Value: v}
			i++ // Long takes two slots

		case TagDouble:
			var bits uint64
			if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
				return nil, fmt.Errorf("reading Double at index %d: %w", i, err)
			}
			pool[i] = &ConstantDouble{Value: math.Float64frombits(bits)}
			i++ // Double takes two slots

		case TagClass:
			var idx uint16
			if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
				return nil, fmt.Errorf("reading Class at index %d: %w", i, err)
			}
			pool[i] = &ConstantClass{NameIndex: idx}

		case TagString:
			var idx uint16
			if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
				return nil, fmt.Errorf("reading String at index %d: %w", i, err)
			}
			pool[i] = &ConstantString{StringIndex: idx}

		case TagFieldref, TagMethodref, TagInterfaceMethodref:
			var class, nat uint16
			if err := binary.Read(r, binary.BigEndian, &class); err != nil {
				return nil, fmt.Errorf("reading ref at index %d: %w", i, err)
			}
			if err := binary.Read(r, binary.BigEndian, &nat); err != nil {
				return nil, fmt.Errorf("reading ref at index %d: %w", i, err)
			}
			switch tag {
			case TagFieldref:
				pool[i] = &ConstantFieldref{ClassIndex: class, NameAndTypeIndex: nat}
			case TagMethodref:
				pool[i] = &ConstantMethodref{ClassIndex: class, NameAndTypeIndex: nat}
			default:
				pool[i] = &ConstantInterfaceMethodref{ClassIndex: class, NameAndTypeIndex: nat}
			}

		case TagNameAndType:
			var name, desc uint16
			if err := binary.Read(r, binary.BigEndian, &name); err != nil {
				return nil, fmt.Errorf("reading NameAndType at index %d: %w", i, err)
			}
			if err := binary.Read(r, binary.BigEndian, &desc); err != nil {
				return nil, fmt.Errorf("reading NameAndType at index %d: %w", i, err)
			}
			pool[i] = &ConstantNameAndType{NameIndex: name, DescriptorIndex: desc}

		case TagMethodHandle:
			var kind uint8
			var ref uint16
			if err := binary.Read(r, binary.BigEndian, &kind); err != nil {
				return nil, fmt.Errorf("reading MethodHandle at index %d: %w", i, err)
			}
			if err := binary.Read(r, binary.BigEndian, &ref); err != nil {
				return nil, fmt.Errorf("reading MethodHandle at index %d: %w", i, err)
			}
			pool[i] = &ConstantMethodHandle{ReferenceKind: kind, ReferenceIndex: ref}

		case TagMethodType:
			var idx uint16
			if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
				return nil, fmt.Errorf("reading MethodType at index %d: %w", i, err)
			}
			pool[i] = &ConstantMethodType{DescriptorIndex: idx}

		case TagDynamic, TagInvokeDynamic:
			var attr, nat uint16
			if err := binary.Read(r, binary.BigEndian, &attr); err != nil {
				return nil, fmt.Errorf("reading Dynamic at index %d: %w", i, err)
			}
			if err := binary.Read(r, binary.BigEndian, &nat); err != nil {
				return nil, fmt.Errorf("reading Dynamic at index %d: %w", i, err)
			}
			if tag == TagDynamic {
				pool[i] = &ConstantDynamic{BootstrapMethodAttrIndex: attr, NameAndTypeIndex: nat}
			} else {
				pool[i] = &ConstantInvokeDynamic{BootstrapMethodAttrIndex: attr, NameAndTypeIndex: nat}
			}

		case TagModule:
			var idx uint16
			if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
				return nil, fmt.Errorf("reading Module at index %d: %w", i, err)
			}
			pool[i] = &ConstantModule{NameIndex: idx}

		case TagPackage:
			var idx uint16
			if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
				return nil, fmt.Errorf("reading Package at index %d: %w", i, err)
			}
			pool[i] = &ConstantPackage{NameIndex: idx}

		default:
			return nil, fmt.Errorf("%w: unknown tag %d at index %d", ErrMalformedConstant, tag, i)
		}
	}

	return pool, nil
}

// memberInfo is the shared shape of FieldInfo and MethodInfo.
type memberInfo struct {
	AccessFlags uint16
	Name        mutf8.String
	Descriptor  mutf8.String
	Attributes  []AttributeInfo
}

func parseMember(r io.Reader, pool []ConstantPoolEntry, m *memberInfo) error {
	var accessFlags, nameIndex, descIndex uint16
	if err := binary.Read(r, binary.BigEndian, &accessFlags); err != nil {
		return fmt.Errorf("reading access flags: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &nameIndex); err != nil {
		return fmt.Errorf("reading name index: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &descIndex); err != nil {
		return fmt.Errorf("reading descriptor index: %w", err)
	}

	name, err := UTF8At(pool, nameIndex)
	if err != nil {
		return fmt.Errorf("resolving name index %d: %w", nameIndex, err)
	}
	desc, err := UTF8At(pool, descIndex)
	if err != nil {
		return fmt.Errorf("resolving descriptor index %d: %w", descIndex, err)
	}

	attrs, err := parseAttributes(r, pool)
	if err != nil {
		return err
	}

	m.AccessFlags = accessFlags
	m.Name = name
	m.Descriptor = desc
	m.Attributes = attrs
	return nil
}

// parseAttributes reads an attribute count followed by that many raw
// attributes, resolving each name against the constant pool.
func parseAttributes(r io.Reader, pool []ConstantPoolEntry) ([]AttributeInfo, error) {
	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("reading attributes count: %w", err)
	}
	attrs := make([]AttributeInfo, count)
	for i := range attrs {
		var nameIndex uint16
		var length uint32
		if err := binary.Read(r, binary.BigEndian, &nameIndex); err != nil {
			return nil, fmt.Errorf("reading attribute %d name index: %w", i, err)
		}
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, fmt.Errorf("reading attribute %d length: %w", i, err)
		}
		name, err := UTF8At(pool, nameIndex)
		if err != nil {
			return nil, fmt.Errorf("resolving attribute %d name: %w", i, err)
		}
		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("reading attribute %d data: %w", i, err)
		}
		attrs[i] = AttributeInfo{Name: name, Data: data}
	}
	return attrs, nil
}
