package main

import "github.com/overcam/faceoverlay/cmd"

func main() {
	cmd.Execute()
}
