package main

import (
	"fmt"

	"i8080/cpu"
)

// bdosPorts is a ports.Ports that also traps OUT to port 0 as a stop
// signal, matching the canonical cpudiag-style self-test convention: the
// test ROM writes to port 0 to end the run instead of looping forever.
type bdosPorts struct {
	stopped bool
}

func (p *bdosPorts) ReadIn(port uint8) uint8 { return 0 }

func (p *bdosPorts) WriteOut(port uint8, value uint8) {
	if port == 0 {
		p.stopped = true
	}
}

// runHarness drives state one Step at a time, special-casing PC == 5 before
// each Step to emulate the CP/M BDOS hook classic 8080 diagnostic ROMs
// (cpudiag and its descendants) call into for console output: register C
// selects the function (2 = print the character in E, 9 = print the
// '$'-terminated string at DE), and the harness then fakes a RET by
// popping the return address CALL 5 would have pushed.
//
// This is not how real hardware implements BDOS (there is no actual CP/M
// kernel resident at 0x0005 inside the emulated address space); it is the
// documented convention self-test ROMs are built against, and it lives here
// in cmd/, never inside the cpu package.
func runHarness(state *cpu.State, maxSteps int) error {
	p, _ := state.Ports.(*bdosPorts)

	for i := 0; i < maxSteps; i++ {
		if p != nil && p.stopped {
			return nil
		}

		if state.PC == 5 {
			switch state.Reg(cpu.C) {
			case 2:
				fmt.Printf("%c", state.Reg(cpu.E))
			case 9:
				addr := state.FullRPValue(cpu.DE)
				for {
					b := state.Memory.Read(addr)
					if b == '$' {
						break
					}
					fmt.Printf("%c", b)
					addr++
				}
			}
			// Fake the RET a real CALL 5 would have executed: pop the
			// return address pushed onto the stack by the CALL instruction
			// that landed on PC 5 in the first place.
			low := state.Memory.Read(state.SP)
			high := state.Memory.Read(state.SP + 1)
			state.SP += 2
			state.PC = uint16(high)<<8 | uint16(low)
			continue
		}

		if state.Halted {
			return nil
		}
		if err := state.Step(); err != nil {
			return err
		}
	}
	return fmt.Errorf("runharness: exceeded %d steps without stopping", maxSteps)
}
