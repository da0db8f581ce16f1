package main

import "gzcurl/cmd"

func main() {
	cmd.Execute()
}
