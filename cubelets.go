// Package cubelets models a 3x3x3 twisty puzzle as 26 cubelets and
// provides the state logic a front-end needs to let a user turn it.
//
// # Features
//
//   - Lattice placement of cubelets and the inverse grid mapping
//   - Slice selection from a picked cubelet face, with repeated picks
//     cycling through the three axes through that cubelet
//   - Quarter-turn slice rotation that updates position, orientation and
//     face colors together
//   - Highlight sets for the selected slice
//   - Standard move notation (R U R' U', M, E, S)
//
// # Quick Start
//
// Thread events through a Session:
//
//	s := cubelets.NewSession()
//
//	s.Pick("2-1-1", math32.Vec3(1, 0, 0)) // selects x=2
//	s.Rotate(cubelets.Plus)
//
//	sel, _ := s.Selection()
//	fmt.Println("Selected:", sel)
//	fmt.Println("Highlighted:", s.Highlighted().IDs())
//	fmt.Print(s.State())
//
// # Pure Functions
//
// The pieces a Session is built from can be used directly. States are
// values; Rotate returns a new one:
//
//	st := cubelets.NewState(cubelets.DefaultGap)
//	cycle := cubelets.SelectionCycle{}.Pick(st, "2-1-1", math32.Vec3(1, 0, 0))
//	sel, ok := cycle.Selection()
//	st = cubelets.Rotate(st, sel.Axis, sel.Slice, cubelets.Plus)
//	lit := cubelets.Highlighted(st, sel, ok)
//
// # Face Colors
//
// Each cubelet carries six color slots indexed by world direction:
// 0=+X (R), 1=-X (L), 2=+Y (U), 3=-Y (D), 4=+Z (F), 5=-Z (B).
// Interior faces hold None.
package cubelets
