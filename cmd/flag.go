package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/filesystem/native"
)

// AttributesValue is a pflag.Value that accumulates attribute names. Names may
// be separated by '|' or ',' and the flag may be repeated.
type AttributesValue native.Attributes

// String implements pflag.Value.String.
func (v *AttributesValue) String() string {
	if *v == 0 {
		return ""
	}
	return native.Attributes(*v).String()
}

// Set implements pflag.Value.Set.
func (v *AttributesValue) Set(value string) error {
	attributes, ok := native.ParseAttributes(value)
	if !ok {
		return errors.Errorf("unknown attribute in \"%s\"", value)
	}
	*v |= AttributesValue(attributes)
	return nil
}

// Type implements pflag.Value.Type.
func (v *AttributesValue) Type() string {
	return "attributes"
}

// Attributes returns the accumulated attribute mask.
func (v *AttributesValue) Attributes() native.Attributes {
	return native.Attributes(*v)
}

// ErrorPolicyValue is a pflag.Value for enumeration error policies.
type ErrorPolicyValue struct {
	// policy is the parsed policy.
	policy filesystem.ErrorPolicy
	// set indicates whether or not the flag was specified.
	set bool
}

// String implements pflag.Value.String.
func (v *ErrorPolicyValue) String() string {
	if !v.set {
		return ""
	}
	return v.policy.String()
}

// Set implements pflag.Value.Set.
func (v *ErrorPolicyValue) Set(value string) error {
	if err := v.policy.UnmarshalText([]byte(value)); err != nil {
		return err
	}
	v.set = true
	return nil
}

// Type implements pflag.Value.Type.
func (v *ErrorPolicyValue) Type() string {
	return "policy"
}

// Policy returns the specified policy, or fallback if the flag wasn't
// specified.
func (v *ErrorPolicyValue) Policy(fallback filesystem.ErrorPolicy) filesystem.ErrorPolicy {
	if !v.set {
		return fallback
	}
	return v.policy
}

var (
	_ pflag.Value = (*AttributesValue)(nil)
	_ pflag.Value = (*ErrorPolicyValue)(nil)
)
