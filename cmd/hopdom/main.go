package main

import "github.com/katalvlaran/hopdom/cmd/hopdom/commands"

func main() {
	commands.Execute()
}
