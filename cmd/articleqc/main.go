// Package main provides the articleqc CLI.
package main

import "github.com/kotoha-works/articleqc/internal/cli"

func main() {
	cli.Execute()
}
