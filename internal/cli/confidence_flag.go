package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

var _ pflag.Value = (*confidenceValue)(nil)

// confidenceValue is a pflag.Value accepting red, yellow, or green. The
// zero value means "not set".
type confidenceValue struct {
	conf *domain.Confidence
	set  bool
}

func (v *confidenceValue) String() string {
	if !v.set || v.conf == nil {
		return ""
	}
	return string(*v.conf)
}

func (v *confidenceValue) Set(s string) error {
	if !domain.ValidConfidences[s] {
		return fmt.Errorf("invalid confidence %q (expected red, yellow, or green)", s)
	}
	*v.conf = domain.Confidence(s)
	v.set = true
	return nil
}

func (v *confidenceValue) Type() string { return "confidence" }
