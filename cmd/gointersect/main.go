package main

import "github.com/philipparndt/gointersect/cmd"

func main() {
	cmd.Execute()
}
