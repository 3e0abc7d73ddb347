package main

import "github.com/nvasilyev/growcalc/cmd"

func main() {
	cmd.Execute()
}
