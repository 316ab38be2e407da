package main

import "github.com/thurn/vow/cmd"

func main() {
	cmd.Execute()
}
