package chip8

import (
	"fmt"
)

// execute runs a decoded instruction. The program counter already points to
// the following instruction.
//
//nolint:cyclop,funlen // one case per instruction
func (vm *VM) execute(ins Instruction) error {
	r := &vm.registers

	switch ins.Kind {
	case KindClearScreen:
		vm.framebuffer.Clear()

	case KindReturn:
		address, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		vm.pc = address

	case KindJump:
		vm.pc = ins.NNN

	case KindCall:
		if err := vm.stack.Push(vm.pc); err != nil {
			return err
		}
		vm.pc = ins.NNN

	case KindSkipEqualImmediate:
		vm.skipIf(r.Get(ins.X) == ins.NN)

	case KindSkipNotEqualImmediate:
		vm.skipIf(r.Get(ins.X) != ins.NN)

	case KindSkipEqualRegister:
		vm.skipIf(r.Get(ins.X) == r.Get(ins.Y))

	case KindSkipNotEqualRegister:
		vm.skipIf(r.Get(ins.X) != r.Get(ins.Y))

	case KindLoadImmediate:
		r.Set(ins.X, ins.NN)

	case KindAddImmediate:
		r.Set(ins.X, r.Get(ins.X)+ins.NN)

	case KindMove:
		r.Set(ins.X, r.Get(ins.Y))

	case KindOr:
		r.Set(ins.X, r.Get(ins.X)|r.Get(ins.Y))

	case KindAnd:
		r.Set(ins.X, r.Get(ins.X)&r.Get(ins.Y))

	case KindXor:
		r.Set(ins.X, r.Get(ins.X)^r.Get(ins.Y))

	case KindAdd:
		sum := uint16(r.Get(ins.X)) + uint16(r.Get(ins.Y))
		r.Set(ins.X, uint8(sum))
		r.SetFlag(sum > 0xFF)

	case KindSub:
		vx, vy := r.Get(ins.X), r.Get(ins.Y)
		r.Set(ins.X, vx-vy)
		r.SetFlag(vx >= vy)

	case KindSubReverse:
		vx, vy := r.Get(ins.X), r.Get(ins.Y)
		r.Set(ins.X, vy-vx)
		r.SetFlag(vy >= vx)

	case KindShiftRight:
		vx := r.Get(ins.X)
		r.Set(ins.X, vx>>1)
		r.SetFlag(vx&0x01 != 0)

	case KindShiftLeft:
		vx := r.Get(ins.X)
		r.Set(ins.X, vx<<1)
		r.SetFlag(vx&0x80 != 0)

	case KindLoadIndex:
		r.SetIndex(ins.NNN)

	case KindJumpOffset:
		// not masked, an address outside of memory fails on the next fetch
		vm.pc = ins.NNN + uint16(r.Get(0))

	case KindRandom:
		r.Set(ins.X, vm.random()&ins.NN)

	case KindDraw:
		return vm.draw(ins)

	case KindSkipKeyDown:
		vm.skipIf(vm.keypad.IsDown(r.Get(ins.X)))

	case KindSkipKeyUp:
		vm.skipIf(!vm.keypad.IsDown(r.Get(ins.X)))

	case KindLoadDelayTimer:
		r.Set(ins.X, vm.timers.Delay)

	case KindWaitKey:
		vm.state = StateAwaitingKey
		vm.waitRegister = ins.X
		vm.resolveKeyWait()

	case KindSetDelayTimer:
		vm.timers.Delay = r.Get(ins.X)

	case KindSetSoundTimer:
		vm.timers.Sound = r.Get(ins.X)

	case KindAddIndex:
		sum := uint32(r.I) + uint32(r.Get(ins.X))
		r.SetIndex(uint16(sum))
		r.SetFlag(sum > addressMask)

	case KindLoadGlyph:
		r.SetIndex(GlyphAddress(r.Get(ins.X)))

	case KindStoreBCD:
		return vm.storeBCD(r.Get(ins.X))

	case KindStoreRegisters:
		block, err := vm.memory.Slice(r.I, int(ins.X)+1)
		if err != nil {
			return err
		}
		copy(block, r.V[:ins.X+1])

	case KindLoadRegisters:
		block, err := vm.memory.Slice(r.I, int(ins.X)+1)
		if err != nil {
			return err
		}
		copy(r.V[:ins.X+1], block)

	case KindUnknown:
		if vm.unknownOpcodes == UnknownOpcodeFail {
			return fmt.Errorf("%w: $%04X", ErrUnknownOpcode, ins.Raw)
		}

	default:
		return fmt.Errorf("unsupported instruction kind %s", ins.Kind)
	}

	return nil
}

// skipIf skips the next instruction if the condition is met.
func (vm *VM) skipIf(condition bool) {
	if condition {
		vm.pc += 2
	}
}

// draw XORs an n rows high sprite read from I onto the display at (Vx, Vy).
// Pixels outside of the display are clipped, a sprite starting off screen
// draws nothing. VF is set if any pixel got turned off.
func (vm *VM) draw(ins Instruction) error {
	sprite, err := vm.memory.Slice(vm.registers.I, int(ins.N))
	if err != nil {
		return err
	}

	x := int(vm.registers.Get(ins.X))
	y := int(vm.registers.Get(ins.Y))

	var collision bool
	if x >= ScreenWidth || y >= ScreenHeight {
		vm.registers.SetFlag(collision)
		return nil
	}

	for row, data := range sprite {
		if y+row >= ScreenHeight {
			break
		}
		if vm.framebuffer.blit(x, y+row, data) {
			collision = true
		}
	}

	vm.registers.SetFlag(collision)
	return nil
}

// storeBCD writes the hundreds, tens and ones digit of value to I, I+1 and I+2.
func (vm *VM) storeBCD(value uint8) error {
	digits, err := vm.memory.Slice(vm.registers.I, 3)
	if err != nil {
		return err
	}
	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}
