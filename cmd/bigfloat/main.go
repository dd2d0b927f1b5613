package main

import "github.com/db47h/bigfloat/internal/cmd"

func main() {
	cmd.Execute()
}
