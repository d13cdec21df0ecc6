package main

import "github.com/tonicformac/deepclean/cmd"

func main() {
	cmd.Execute()
}
