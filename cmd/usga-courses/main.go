package main

import "github.com/jbaviation/usga-golf-courses/internal/cli"

func main() {
	cli.Execute()
}
