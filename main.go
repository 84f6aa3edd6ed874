package main

import "github.com/nirbhaypatil1311-max/Task-Management-System/cmd"

func main() {
	cmd.Execute()
}
