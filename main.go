package main

import "github.com/inovacc/clientdir/cmd"

func main() {
	cmd.Execute()
}
