package main

import "github.com/z1gc/gorime/internal/cli/cmd"

func main() {
	cmd.Execute()
}
