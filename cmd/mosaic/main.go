// Command mosaic reassembles a tile mosaic and reports its corner checksum
// and water roughness.
//
//	mosaic solve input.txt
//	mosaic solve --render --verbose input.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
