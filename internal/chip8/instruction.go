package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies a decoded instruction. The set is closed, opcodes that match
// no pattern decode to KindUnknown.
type Kind uint8

// Instruction kinds, named after the opcode pattern they are decoded from.
const (
	KindUnknown             Kind = iota
	KindClearScreen              // 00E0
	KindReturn                   // 00EE
	KindJump                     // 1nnn
	KindCall                     // 2nnn
	KindSkipEqualImmediate       // 3xnn
	KindSkipNotEqualImmediate    // 4xnn
	KindSkipEqualRegister        // 5xy0
	KindLoadImmediate            // 6xnn
	KindAddImmediate             // 7xnn
	KindMove                     // 8xy0
	KindOr                       // 8xy1
	KindAnd                      // 8xy2
	KindXor                      // 8xy3
	KindAdd                      // 8xy4
	KindSub                      // 8xy5
	KindShiftRight               // 8xy6
	KindSubReverse               // 8xy7
	KindShiftLeft                // 8xyE
	KindSkipNotEqualRegister     // 9xy0
	KindLoadIndex                // Annn
	KindJumpOffset               // Bnnn
	KindRandom                   // Cxnn
	KindDraw                     // Dxyn
	KindSkipKeyDown              // Ex9E
	KindSkipKeyUp                // ExA1
	KindLoadDelayTimer           // Fx07
	KindWaitKey                  // Fx0A
	KindSetDelayTimer            // Fx15
	KindSetSoundTimer            // Fx18
	KindAddIndex                 // Fx1E
	KindLoadGlyph                // Fx29
	KindStoreBCD                 // Fx33
	KindStoreRegisters           // Fx55
	KindLoadRegisters            // Fx65

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:               "unknown",
	KindClearScreen:           "clear screen",
	KindReturn:                "return",
	KindJump:                  "jump",
	KindCall:                  "call",
	KindSkipEqualImmediate:    "skip if equal immediate",
	KindSkipNotEqualImmediate: "skip if not equal immediate",
	KindSkipEqualRegister:     "skip if equal register",
	KindLoadImmediate:         "load immediate",
	KindAddImmediate:          "add immediate",
	KindMove:                  "move",
	KindOr:                    "or",
	KindAnd:                   "and",
	KindXor:                   "xor",
	KindAdd:                   "add",
	KindSub:                   "sub",
	KindShiftRight:            "shift right",
	KindSubReverse:            "sub reverse",
	KindShiftLeft:             "shift left",
	KindSkipNotEqualRegister:  "skip if not equal register",
	KindLoadIndex:             "load index",
	KindJumpOffset:            "jump with offset",
	KindRandom:                "random",
	KindDraw:                  "draw",
	KindSkipKeyDown:           "skip if key down",
	KindSkipKeyUp:             "skip if key up",
	KindLoadDelayTimer:        "load delay timer",
	KindWaitKey:               "wait for key",
	KindSetDelayTimer:         "set delay timer",
	KindSetSoundTimer:         "set sound timer",
	KindAddIndex:              "add index",
	KindLoadGlyph:             "load glyph address",
	KindStoreBCD:              "store bcd",
	KindStoreRegisters:        "store registers",
	KindLoadRegisters:         "load registers",
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Instruction is a decoded opcode with its derived operand fields.
type Instruction struct {
	Kind    Kind
	Raw     uint16
	Nibbles [4]uint8

	X   uint8  // register index from the second nibble
	Y   uint8  // register index from the third nibble
	N   uint8  // lowest nibble, sprite height for draw
	NN  uint8  // lowest byte, immediate value
	NNN uint16 // lowest 12 bits, address
}

// Decode turns a fetched big-endian opcode word into an instruction.
// It is defined for every 16 bit value.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Raw: word,
		Nibbles: [4]uint8{
			uint8(word >> 12),
			uint8(word>>8) & 0xF,
			uint8(word>>4) & 0xF,
			uint8(word) & 0xF,
		},
		NN:  uint8(word),
		NNN: word & addressMask,
	}
	ins.X = ins.Nibbles[1]
	ins.Y = ins.Nibbles[2]
	ins.N = ins.Nibbles[3]
	ins.Kind = decodeKind(ins)
	return ins
}

func decodeKind(ins Instruction) Kind {
	switch ins.Nibbles[0] {
	case 0x0:
		switch ins.Raw {
		case 0x00E0:
			return KindClearScreen
		case 0x00EE:
			return KindReturn
		}
	case 0x1:
		return KindJump
	case 0x2:
		return KindCall
	case 0x3:
		return KindSkipEqualImmediate
	case 0x4:
		return KindSkipNotEqualImmediate
	case 0x5:
		if ins.N == 0 {
			return KindSkipEqualRegister
		}
	case 0x6:
		return KindLoadImmediate
	case 0x7:
		return KindAddImmediate
	case 0x8:
		return decodeArithmetic(ins.N)
	case 0x9:
		if ins.N == 0 {
			return KindSkipNotEqualRegister
		}
	case 0xA:
		return KindLoadIndex
	case 0xB:
		return KindJumpOffset
	case 0xC:
		return KindRandom
	case 0xD:
		return KindDraw
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return KindSkipKeyDown
		case 0xA1:
			return KindSkipKeyUp
		}
	case 0xF:
		return decodeMisc(ins.NN)
	}
	return KindUnknown
}

func decodeArithmetic(n uint8) Kind {
	switch n {
	case 0x0:
		return KindMove
	case 0x1:
		return KindOr
	case 0x2:
		return KindAnd
	case 0x3:
		return KindXor
	case 0x4:
		return KindAdd
	case 0x5:
		return KindSub
	case 0x6:
		return KindShiftRight
	case 0x7:
		return KindSubReverse
	case 0xE:
		return KindShiftLeft
	default:
		return KindUnknown
	}
}

func decodeMisc(nn uint8) Kind {
	switch nn {
	case 0x07:
		return KindLoadDelayTimer
	case 0x0A:
		return KindWaitKey
	case 0x15:
		return KindSetDelayTimer
	case 0x18:
		return KindSetSoundTimer
	case 0x1E:
		return KindAddIndex
	case 0x29:
		return KindLoadGlyph
	case 0x33:
		return KindStoreBCD
	case 0x55:
		return KindStoreRegisters
	case 0x65:
		return KindLoadRegisters
	default:
		return KindUnknown
	}
}

// Mnemonic returns the assembler mnemonic of the instruction as listed in the
// CHIP-8 opcode table, or an empty string if the table has no matching entry.
func (ins Instruction) Mnemonic() string {
	for _, op := range chip8cpu.Opcodes[int(ins.Nibbles[0])] {
		if op.Info.Mask&ins.Raw == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}

// String returns the instruction in assembler notation, used for tracing.
func (ins Instruction) String() string {
	name := ins.Mnemonic()
	if ins.Kind == KindUnknown || name == "" {
		return fmt.Sprintf(".word $%04X", ins.Raw)
	}
	if params := ins.formatParams(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the operands of the instruction.
func (ins Instruction) formatParams() string {
	switch ins.Kind {
	case KindClearScreen, KindReturn:
		return ""
	case KindJump, KindCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case KindJumpOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case KindLoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case KindSkipEqualImmediate, KindSkipNotEqualImmediate, KindLoadImmediate, KindAddImmediate, KindRandom:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case KindDraw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case KindShiftRight, KindShiftLeft, KindSkipKeyDown, KindSkipKeyUp:
		return fmt.Sprintf("V%X", ins.X)
	case KindLoadDelayTimer:
		return fmt.Sprintf("V%X, DT", ins.X)
	case KindWaitKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case KindSetDelayTimer:
		return fmt.Sprintf("DT, V%X", ins.X)
	case KindSetSoundTimer:
		return fmt.Sprintf("ST, V%X", ins.X)
	case KindAddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case KindLoadGlyph:
		return fmt.Sprintf("F, V%X", ins.X)
	case KindStoreBCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case KindStoreRegisters:
		return fmt.Sprintf("[I], V%X", ins.X)
	case KindLoadRegisters:
		return fmt.Sprintf("V%X, [I]", ins.X)
	default:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	}
}
