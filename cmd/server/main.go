package main

import "recordkeeper/cmd/server/cmd"

func main() {
	cmd.Execute()
}
