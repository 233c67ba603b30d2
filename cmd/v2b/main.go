package main

import (
	"voice-blog/cmd/v2b/cmd"
)

func main() {
	cmd.Execute()
}
