package main

import "github.com/user/rugby-analysis-cli/cmd"

func main() {
	cmd.Execute()
}
