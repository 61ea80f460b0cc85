package main

import "flowdesk.com/flowdesk/cmd"

func main() {
	cmd.Execute()
}
