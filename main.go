package main

import "github.com/theirongolddev/paycal/cmd"

func main() {
	cmd.Execute()
}
