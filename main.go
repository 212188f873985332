package main

import "github.com/nathanhack/gltc/cmd"

func main() {
	cmd.Execute()
}
