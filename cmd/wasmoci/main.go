package main

import "github.com/aweris/wasmoci/cmd/wasmoci/cmd"

func main() {
	cmd.Execute()
}
