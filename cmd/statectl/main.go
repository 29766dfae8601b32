package main

import "github.com/milk9111/wherewasi/cmd/statectl/cmd"

func main() {
	cmd.Execute()
}
