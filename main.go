package main

import "repolens/cmd"

func main() {
	cmd.Execute()
}
