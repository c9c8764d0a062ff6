package main

import "github.com/graph-flow/graph-flow-hooks/cmd"

func main() {
	cmd.Execute()
}
