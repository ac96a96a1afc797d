// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import "time"

// PropertyOptions are the settings shared by every decorator kind.  Each kind's
// options type embeds this struct.
type PropertyOptions struct {
	// Description is human-readable documentation for the property
	Description string

	// Optional indicates that the property may be left unset.  A zero value or a nil
	// pointer skips any checks.
	Optional bool

	// Nullable indicates that the property may be explicitly null, i.e. a nil pointer.
	Nullable bool

	// Each indicates that the property is a slice or array and that the decorator
	// applies to each element rather than to the property as a whole.
	Each bool
}

// Common returns these options.  Every kind's options type gets this method
// through embedding.
func (po PropertyOptions) Common() PropertyOptions {
	return po
}

// KindOptions is satisfied by the options type of every decorator kind.
// Generic code uses it to reach the shared settings.
type KindOptions interface {
	Common() PropertyOptions
}

// BooleanOptions configures the boolean kind.
type BooleanOptions struct {
	PropertyOptions `mapstructure:",squash"`
}

// DateOptions configures the date kind.
type DateOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Layout is the time.Parse layout used for textual dates.  If unset, time.RFC3339 is used.
	Layout string

	// After is the optional inclusive lower bound
	After *time.Time

	// Before is the optional inclusive upper bound
	Before *time.Time
}

// DefaultDateLayout is the layout used when DateOptions.Layout is unset.
const DefaultDateLayout = time.RFC3339

// LayoutOrDefault returns the configured layout, falling back to DefaultDateLayout.
func (do DateOptions) LayoutOrDefault() string {
	if len(do.Layout) > 0 {
		return do.Layout
	}

	return DefaultDateLayout
}

// EnumOptions configures the enum kind.
type EnumOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Values is the set of allowed values, compared in their textual form
	Values []string
}

// IntegerOptions configures the integer kind.
type IntegerOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Min is the optional inclusive lower bound
	Min *int64

	// Max is the optional inclusive upper bound
	Max *int64
}

// LengthOptions configures the length kind, which applies to strings, slices,
// arrays, and maps.
type LengthOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Min is the inclusive minimum length
	Min int

	// Max is the inclusive maximum length.  Zero means unbounded.
	Max int
}

// NestedOptions configures the nested kind, which descends into struct-valued properties.
type NestedOptions struct {
	PropertyOptions `mapstructure:",squash"`
}

// NumberOptions configures the number kind.
type NumberOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Min is the optional inclusive lower bound
	Min *float64

	// Max is the optional inclusive upper bound
	Max *float64
}

// StringOptions configures the string kind.
type StringOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Pattern is an optional regular expression the value must match
	Pattern string

	// Trim indicates that surrounding whitespace is removed during transformation
	Trim bool
}

// UUIDOptions configures the uuid kind.
type UUIDOptions struct {
	PropertyOptions `mapstructure:",squash"`

	// Version is the required UUID version.  Zero allows any version.
	Version int
}
