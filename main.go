package main

import "whitecore/cmd"

func main() {
	cmd.Execute()
}
