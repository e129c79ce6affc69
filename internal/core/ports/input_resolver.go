package ports

// InputResolver expands user supplied inputs into concrete document paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=input_resolver.go -destination=mocks/mock_input_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves files, directories and glob patterns to a sorted,
	// de-duplicated list of JSON and YAML document paths.
	ResolveInputs(inputs []string) ([]string, error)
}
