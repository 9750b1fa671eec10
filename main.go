package main

import "github.com/saltydk/fplot/cmd"

func main() {
	cmd.Execute()
}
