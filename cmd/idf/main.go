package main

import "github.com/OpenTraceLab/OpenTraceIDF/cmd/idf/cmd"

func main() {
	cmd.Execute()
}
