package main

import "github.com/sense-social/sense/cli/internal/cmd"

func main() {
	cmd.Execute()
}
