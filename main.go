package main

import "github.com/naka-gawa/pulsecheck/cmd"

func main() {
	cmd.Execute()
}
