package main

import (
	"github.com/AbdallahZerfaoui/classgen/cmd"
)

func main() {
	cmd.Execute()
}
