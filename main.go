package main

import "github.com/abctools/abcctl/cmd"

func main() {
	cmd.Execute()
}
