package main

import "github.com/oshokin/project-banner/cmd/project-banner/cmd"

func main() {
	cmd.Execute()
}
