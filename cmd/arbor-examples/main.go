package main

import (
	"arbor/pkg/arbor"
	"arbor/suites/examples"
)

func main() {
	runner := arbor.CreateRunner("arbor-examples")

	for _, entryPoint := range examples.EntryPoints() {
		runner.AddEntryPoint(entryPoint)
	}

	runner.Run()
}
