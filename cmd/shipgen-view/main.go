package main

import "github.com/philipparndt/shipgen/cmd"

func main() {
	cmd.Execute()
}
