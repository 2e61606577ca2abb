package engine

type Options struct {
	Hash             int
	TTReplace        string
	ProgressMinNodes int
	EvalBuilder      func() interface{}
}

func NewOptions(evalBuilder func() interface{}) Options {
	return Options{
		Hash:             16,
		TTReplace:        ReplaceAlways,
		ProgressMinNodes: 1_000_000,
		EvalBuilder:      evalBuilder,
	}
}
