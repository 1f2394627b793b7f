package main

import "github.com/katalvlaran/freeride/internal/cli"

func main() {
	cli.Execute()
}
