package main

import "github.com/queuectl/queuectl/cmd"

func main() {
	cmd.Execute()
}
