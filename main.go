package main

import "rwk-afmg/cmd"

func main() {
	cmd.Execute()
}
