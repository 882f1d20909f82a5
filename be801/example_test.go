// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package be801_test

import (
	"fmt"

	"github.com/DanStevens/DigitalElectronics-sub000/be801"
)

func Example() {
	prog, err := be801.Assemble(`
		LDI 3
		STA 15
		LDI 0
	loop:	ADD 15
		OUT
		JMP loop
	`)
	if err != nil {
		panic(err)
	}
	c := be801.New()
	if err = c.LoadRAM(prog); err != nil {
		panic(err)
	}

	// registers hold all ones after reset
	out := uint8(0xFF)
	for n := 0; n < 5; {
		if err = c.Clock(); err != nil {
			panic(err)
		}
		if v, _ := c.ProbeOutputRegister().ToUint8(); v != out {
			out = v
			fmt.Print(out, " ")
			n++
		}
	}
	fmt.Println()
	// Output:
	// 3 6 9 12 15
}
