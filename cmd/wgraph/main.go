package main

import "github.com/katalvlaran/wgraph/cmd/wgraph/commands"

func main() {
	commands.Execute()
}
