package main

import "github.com/chainsafe/navette/cmd/navette/cmd"

func main() {
	cmd.Execute()
}
