package main

import "github.com/maastricht-university/gesture-pipeline/cmd"

func main() {
	cmd.Execute()
}
