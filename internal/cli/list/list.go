package list

type ListCmd struct {
	Suites     ListSuitesCmd     `cmd:"" help:"List registered suites"`
	Tree       ListTreeCmd       `cmd:"" help:"Build the selected suites and print their test trees"`
	Namespaces ListNamespacesCmd `cmd:"" help:"List all namespaces"`
}

// Selection flags shared by the commands that work on a subset of suites.
type SelectionOpts struct {
	Suites     []string `arg:"" optional:"" help:"Names of the suites to select, all suites when omitted"`
	Namespaces []string `short:"n" name:"namespace" help:"Select suites whose namespace matches one of these glob patterns"`
	Recursive  bool     `short:"r" help:"Namespace patterns also match every namespace below them"`
}
