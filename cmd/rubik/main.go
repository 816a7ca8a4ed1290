// rubik - terminal workbench for N×N×N Rubik's cubes.
package main

import (
	"github.com/SeamusWaldron/rubik/internal/cli"
)

func main() {
	cli.Execute()
}
