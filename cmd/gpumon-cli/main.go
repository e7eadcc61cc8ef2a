package main

import "gpumon-backend/cmd/gpumon-cli/cmd"

func main() {
	cmd.Execute()
}
