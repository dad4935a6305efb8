package ir

// Opcode names an instruction's operation. Opcodes are lower-case mnemonics.
type Opcode string

const (
	OpNop  Opcode = "nop"
	OpMov  Opcode = "mov"
	OpAdd  Opcode = "add"
	OpSub  Opcode = "sub"
	OpMul  Opcode = "mul"
	OpMad  Opcode = "mad"
	OpMin  Opcode = "min"
	OpMax  Opcode = "max"
	OpAnd  Opcode = "and"
	OpOr   Opcode = "or"
	OpXor  Opcode = "xor"
	OpShl  Opcode = "shl"
	OpShr  Opcode = "shr"
	OpSet  Opcode = "set"
	OpSelp Opcode = "selp"
	OpCvt  Opcode = "cvt"
	OpRcp  Opcode = "rcp"
	OpRsq  Opcode = "rsq"
	OpSin  Opcode = "sin"
	OpCos  Opcode = "cos"
	OpEx2  Opcode = "ex2"
	OpLg2  Opcode = "lg2"

	OpLoad   Opcode = "ld"
	OpStore  Opcode = "st"
	OpVFetch Opcode = "vfetch"
	OpPFetch Opcode = "pfetch"

	OpTex  Opcode = "tex"
	OpTxb  Opcode = "txb"
	OpTxl  Opcode = "txl"
	OpTxf  Opcode = "txf"
	OpTxq  Opcode = "txq"
	OpTxd  Opcode = "txd"
	OpTxg  Opcode = "txg"
	OpTxlq Opcode = "txlq"

	OpLinterp Opcode = "linterp"
	OpPinterp Opcode = "pinterp"

	OpAtom Opcode = "atom"
	OpCas  Opcode = "cas"

	OpBra     Opcode = "bra"
	OpExit    Opcode = "exit"
	OpRet     Opcode = "ret"
	OpBar     Opcode = "bar"
	OpDiscard Opcode = "discard"
)

// OpClass groups opcodes with the same scheduling behaviour.
type OpClass uint8

const (
	ClassOther OpClass = iota
	ClassALU
	ClassSFU
	ClassMove
	ClassLoad
	ClassStore
	ClassTexture
	ClassInterp
	ClassAtomic
	ClassFlow
)

var classNames = [...]string{
	ClassOther:   "other",
	ClassALU:     "alu",
	ClassSFU:     "sfu",
	ClassMove:    "move",
	ClassLoad:    "load",
	ClassStore:   "store",
	ClassTexture: "texture",
	ClassInterp:  "interp",
	ClassAtomic:  "atomic",
	ClassFlow:    "flow",
}

func (c OpClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

var opClasses = map[Opcode]OpClass{
	OpNop: ClassOther,
	OpMov: ClassMove,

	OpAdd: ClassALU, OpSub: ClassALU, OpMul: ClassALU, OpMad: ClassALU,
	OpMin: ClassALU, OpMax: ClassALU, OpAnd: ClassALU, OpOr: ClassALU,
	OpXor: ClassALU, OpShl: ClassALU, OpShr: ClassALU, OpSet: ClassALU,
	OpSelp: ClassALU, OpCvt: ClassALU,

	OpRcp: ClassSFU, OpRsq: ClassSFU, OpSin: ClassSFU, OpCos: ClassSFU,
	OpEx2: ClassSFU, OpLg2: ClassSFU,

	OpLoad: ClassLoad, OpVFetch: ClassLoad, OpPFetch: ClassLoad,
	OpStore: ClassStore,

	OpTex: ClassTexture, OpTxb: ClassTexture, OpTxl: ClassTexture,
	OpTxf: ClassTexture, OpTxq: ClassTexture, OpTxd: ClassTexture,
	OpTxg: ClassTexture, OpTxlq: ClassTexture,

	OpLinterp: ClassInterp, OpPinterp: ClassInterp,

	OpAtom: ClassAtomic, OpCas: ClassAtomic,

	OpBra: ClassFlow, OpExit: ClassFlow, OpRet: ClassFlow, OpBar: ClassFlow,
	OpDiscard: ClassFlow,
}

// Class returns the scheduling class of op. Unknown opcodes are ClassOther.
func (op Opcode) Class() OpClass {
	return opClasses[op]
}

// Known reports whether op is one of the opcodes defined in this package.
func (op Opcode) Known() bool {
	_, ok := opClasses[op]
	return ok
}
