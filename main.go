package main

import "github.com/kamusis/jumpy/cmd"

func main() {
	cmd.Execute()
}
