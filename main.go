package main

import "github.com/workflow-things/providers/cmd"

func main() {
	cmd.Execute()
}
