// Command lingua is the CLI façade over the detector (spec.md §2 item 9,
// "out of scope... only passes a configuration struct to the core").
package main

import "github.com/polylang/lingua/cmd/lingua/cmd"

func main() {
	cmd.Execute()
}
