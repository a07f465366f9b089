package main

import "github.com/arl/hachure/cmd/hachure/cmd"

func main() {
	cmd.Execute()
}
