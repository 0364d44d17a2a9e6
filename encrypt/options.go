package encrypt

// ruleOptions holds the construction options of a Rule.
type ruleOptions struct {
	factory AlgorithmFactory
}

func defaultRuleOptions() *ruleOptions {
	return &ruleOptions{
		factory: DefaultAlgorithmFactory(),
	}
}

// Option configures how a Rule is built.
type Option func(*ruleOptions)

// WithAlgorithmFactory sets the factory that resolves configured algorithm
// types. The default factory resolves the types registered through
// RegisterAlgorithm. A nil factory is ignored.
func WithAlgorithmFactory(factory AlgorithmFactory) Option {
	return func(o *ruleOptions) {
		if factory != nil {
			o.factory = factory
		}
	}
}
