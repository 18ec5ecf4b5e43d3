package main

import "github.com/dannuic/serial/cmd"

func main() {
	cmd.Execute()
}
