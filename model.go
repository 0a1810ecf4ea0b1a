package chatbuf

import "fmt"

// Model is an opaque key selecting which remote model a completion client
// targets. Cache identity is the enumerated value itself, never the remote
// name string, so formatting differences can't split one model across two
// cache entries.
type Model uint8

const (
	// ModelFast is the cheap, low-latency tier.
	ModelFast Model = iota + 1
	// ModelSmart is the general-purpose tier.
	ModelSmart
	// ModelPremium is the most capable, most expensive tier.
	ModelPremium
)

// Models lists the configured model tiers.
func Models() []Model {
	return []Model{ModelFast, ModelSmart, ModelPremium}
}

// String returns the tier token, the form accepted by ParseModel.
func (m Model) String() string {
	switch m {
	case ModelFast:
		return "fast"
	case ModelSmart:
		return "smart"
	case ModelPremium:
		return "premium"
	default:
		return fmt.Sprintf("model(%d)", uint8(m))
	}
}

// Name returns the remote provider model name this tier maps to.
func (m Model) Name() string {
	switch m {
	case ModelFast:
		return "google/gemini-2.5-flash"
	case ModelSmart:
		return "google/gemini-3-pro-preview"
	case ModelPremium:
		return "anthropic/claude-opus-4.5"
	default:
		return ""
	}
}

func (m Model) valid() bool {
	return m >= ModelFast && m <= ModelPremium
}

// ParseModel resolves a tier token to its model key.
func ParseModel(name string) (Model, error) {
	for _, m := range Models() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidModel, name)
}
