package chip8

import (
	"fmt"
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeFields(t *testing.T) {
	ins := Decode(0xD12F)

	assert.Equal(t, KindDraw, ins.Kind)
	assert.Equal(t, [4]uint8{0xD, 0x1, 0x2, 0xF}, ins.Nibbles)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0xF), ins.N)
	assert.Equal(t, uint8(0x2F), ins.NN)
	assert.Equal(t, uint16(0x12F), ins.NNN)
	assert.Equal(t, uint16(0xD12F), ins.Raw)
}

func TestDecodeTotal(t *testing.T) {
	for word := range 0x10000 {
		ins := Decode(uint16(word))

		assert.True(t, ins.Kind < kindCount)
		assert.Equal(t, uint16(word), uint16(ins.Nibbles[0])<<12|uint16(ins.X)<<8|uint16(ins.Y)<<4|uint16(ins.N))
		assert.Equal(t, uint16(word)&0x0FFF, ins.NNN)
		assert.Equal(t, uint8(word), ins.NN)
	}
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		word uint16
		kind Kind
	}{
		{0x00E0, KindClearScreen},
		{0x00EE, KindReturn},
		{0x0123, KindUnknown},
		{0x1234, KindJump},
		{0x2345, KindCall},
		{0x3456, KindSkipEqualImmediate},
		{0x4567, KindSkipNotEqualImmediate},
		{0x5670, KindSkipEqualRegister},
		{0x5671, KindUnknown},
		{0x6789, KindLoadImmediate},
		{0x789A, KindAddImmediate},
		{0x8AB0, KindMove},
		{0x8AB1, KindOr},
		{0x8AB2, KindAnd},
		{0x8AB3, KindXor},
		{0x8AB4, KindAdd},
		{0x8AB5, KindSub},
		{0x8AB6, KindShiftRight},
		{0x8AB7, KindSubReverse},
		{0x8AB8, KindUnknown},
		{0x8ABE, KindShiftLeft},
		{0x9AB0, KindSkipNotEqualRegister},
		{0x9AB1, KindUnknown},
		{0xABCD, KindLoadIndex},
		{0xBCDE, KindJumpOffset},
		{0xCDEF, KindRandom},
		{0xDEF1, KindDraw},
		{0xE19E, KindSkipKeyDown},
		{0xE1A1, KindSkipKeyUp},
		{0xE1A2, KindUnknown},
		{0xF107, KindLoadDelayTimer},
		{0xF10A, KindWaitKey},
		{0xF115, KindSetDelayTimer},
		{0xF118, KindSetSoundTimer},
		{0xF11E, KindAddIndex},
		{0xF129, KindLoadGlyph},
		{0xF133, KindStoreBCD},
		{0xF155, KindStoreRegisters},
		{0xF165, KindLoadRegisters},
		{0xF175, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.kind, Decode(tt.word).Kind)
		})
	}
}

func TestKindString(t *testing.T) {
	for kind := range kindCount {
		assert.NotEmpty(t, kind.String())
	}
	assert.Equal(t, "draw", KindDraw.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestInstructionMnemonic(t *testing.T) {
	tests := []struct {
		word uint16
		ins  *chip8cpu.Instruction
	}{
		{0x00E0, chip8cpu.ClsInst},
		{0x00EE, chip8cpu.RetInst},
		{0x1234, chip8cpu.JpInst},
		{0x2345, chip8cpu.CallInst},
		{0x6789, chip8cpu.LdInst},
		{0xABCD, chip8cpu.LdInst},
		{0xDEF1, chip8cpu.DrwInst},
		{0xE19E, chip8cpu.SkpInst},
		{0xE1A1, chip8cpu.SknpInst},
	}

	for _, tt := range tests {
		t.Run(tt.ins.Name, func(t *testing.T) {
			assert.Equal(t, tt.ins.Name, Decode(tt.word).Mnemonic())
		})
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, chip8cpu.ClsInst.Name},
		{0x1234, chip8cpu.JpInst.Name + " $234"},
		{0x6105, chip8cpu.LdInst.Name + " V1, $05"},
		{0xA250, chip8cpu.LdInst.Name + " I, $250"},
		{0xD125, chip8cpu.DrwInst.Name + " V1, V2, $5"},
		{0x8AB4, chip8cpu.AddInst.Name + " VA, VB"},
		{0x8126, chip8cpu.ShrInst.Name + " V1"},
		{0x5671, ".word $5671"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.word).String())
		})
	}
}
