package main

import "github.com/agrogen/agrogen/cmd/agrogen-cli/cmd"

func main() {
	cmd.Execute()
}
