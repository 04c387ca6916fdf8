package review

// Provider is the SCM provider resolved for a session. It is either hosted,
// carrying a Linker for permalinks, or some other provider that gets plain
// file paths.
type Provider struct {
	name   string
	linker Linker
}

// Hosted returns a provider that links files through linker.
func Hosted(linker Linker) Provider {
	return Provider{name: ProviderGitHub, linker: linker}
}

// Other returns a provider without permalink support.
func Other(name string) Provider {
	return Provider{name: name}
}

// ResolveProvider inspects host once and returns its provider variant.
// Only GitHub is hosted, and only when the host can build permalinks.
func ResolveProvider(host Host) Provider {
	name := host.SCMProvider()
	if name != ProviderGitHub {
		return Other(name)
	}
	if checker, ok := host.(LinkChecker); ok && !checker.CanLink() {
		return Other(name)
	}
	return Hosted(host)
}

// Name returns the provider name.
func (p Provider) Name() string {
	return p.name
}

// Linker returns the permalink builder of a hosted provider.
func (p Provider) Linker() (Linker, bool) {
	return p.linker, p.linker != nil
}

// IsHosted reports whether the provider builds permalinks.
func (p Provider) IsHosted() bool {
	return p.linker != nil
}
