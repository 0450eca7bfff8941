package main

import "github.com/nikogura/portfolio/cmd"

func main() {
	cmd.Execute()
}
