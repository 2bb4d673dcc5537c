package main

import (
	cmd "github.com/inference-gateway/osint-toolkit/cmd"
)

func main() {
	cmd.Execute()
}
