// Access-flag bit masks. Several bits are reused across contexts
// (0x0020 is ACC_SUPER on classes, ACC_SYNCHRONIZED on methods and
// ACC_TRANSITIVE on module requires), so the combined masks below say
// which bits are defined where.
package classfile

// Class file framing constants.
const (
	Magic           = 0xCAFEBABE
	MinVersion      = 45
	MaxVersion      = 60
	PreviewFeatures = 0xFFFF // minor version marking preview classes
)

// Access flags.
const (
	AccPublic       = 0x0001
	AccPrivate      = 0x0002
	AccProtected    = 0x0004
	AccStatic       = 0x0008
	AccFinal        = 0x0010
	AccSuper        = 0x0020
	AccTransitive   = 0x0020
	AccSynchronized = 0x0020
	AccVolatile     = 0x0040
	AccStaticPhase  = 0x0040
	AccBridge       = 0x0040
	AccTransient    = 0x0080
	AccVarargs      = 0x0080
	AccNative       = 0x0100
	AccInterface    = 0x0200
	AccAbstract     = 0x0400
	AccStrict       = 0x0800
	AccSynthetic    = 0x1000
	AccAnnotation   = 0x2000
	AccEnum         = 0x4000
	AccModule       = 0x8000
	AccMandated     = 0x8000
)

// Combined masks: the bits defined for each flag context.
const (
	AccClassBits = AccPublic | AccFinal | AccSuper | AccInterface |
		AccAbstract | AccSynthetic | AccAnnotation | AccEnum | AccModule

	AccFieldBits = AccPublic | AccPrivate | AccProtected | AccStatic |
		AccFinal | AccVolatile | AccTransient | AccSynthetic | AccEnum

	AccMethodBits = AccPublic | AccPrivate | AccProtected | AccStatic |
		AccFinal | AccSynchronized | AccBridge | AccVarargs | AccNative |
		AccAbstract | AccStrict | AccSynthetic

	AccInnerClassBits = AccClassBits&^AccModule | AccProtected |
		AccPrivate | AccStatic

	AccRequiresBits  = AccTransitive | AccStaticPhase | AccSynthetic | AccMandated
	AccExportsBits   = AccSynthetic | AccMandated
	AccParameterBits = AccFinal | AccSynthetic | AccMandated
)
