package main

import "github.com/rechati/stripcomments/cmd"

func main() {
	cmd.Execute()
}
