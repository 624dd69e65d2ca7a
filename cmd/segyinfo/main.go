// Command segyinfo inspects and synthesizes SEG-Y files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "segyinfo:", err)
		os.Exit(1)
	}
}
