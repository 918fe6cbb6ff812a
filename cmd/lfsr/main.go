package main

import "github.com/OpenTraceLab/OpenTraceLFSR/cmd/lfsr/cmd"

func main() {
	cmd.Execute()
}
