package core

type SuiteContext interface {
	Named

	LoggerProvider

	// Returns every registered entry point in registration order.
	EntryPoints() []EntryPoint

	// Returns an entry point by name, will exit with an error if it is not
	// found.
	EntryPoint(name string) EntryPoint

	// Returns whether the runner has Azure DevOps integration enabled
	AzureDevops() bool
}
