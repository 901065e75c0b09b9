// Cubelets - terminal 3x3x3 slice-rotation puzzle.
package main

import (
	"github.com/SeamusWaldron/cubelets/internal/cli"
)

func main() {
	cli.Execute()
}
