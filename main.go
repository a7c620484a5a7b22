package main

import "thoreinstein.com/pj/cmd"

func main() {
	cmd.Execute()
}
