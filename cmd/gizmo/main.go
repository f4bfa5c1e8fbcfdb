package main

import "github.com/philipparndt/gizmo/cmd"

func main() {
	cmd.Execute()
}
