package main

import "filesift/cmd"

func main() {
	cmd.Execute()
}
