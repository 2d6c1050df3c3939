package main

import "github.com/productdevbook/portprobe/cmd"

func main() {
	cmd.Execute()
}
