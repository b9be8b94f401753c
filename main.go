package main

import "github.com/ninicksicard/keylegend/cmd"

func main() {
	cmd.Execute()
}
