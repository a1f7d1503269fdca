package main

import "recordkeeper/cmd/connector/cmd"

func main() {
	cmd.Execute()
}
