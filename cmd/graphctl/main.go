// Command graphctl queries a running graph API.
package main

import "github.com/JaimeStill/graph-vis/internal/cli"

func main() {
	cli.Execute()
}
