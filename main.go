package main

import "github.com/avdx/attention/cmd"

func main() {
	cmd.Execute()
}
