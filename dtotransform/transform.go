// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotransform

import (
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xmidt-org/arrangedto"
	"go.uber.org/multierr"
)

// mapstructureTagName is the tag mapstructure uses when DecoderConfig.TagName is unset.
const mapstructureTagName = "mapstructure"

// Transform applies the rules recorded for target to an input map and returns the
// converted copy.  The input itself is never modified.
//
// Input keys are matched to properties by the json tag or the field name, ignoring
// case.  Keys that match no decorated property, along with nil values, are copied
// as is.  All conversion failures are returned as an aggregate of *ConvertError, in
// which case the returned map holds every value that did convert.
func Transform(r *arrangedto.Registry[Rule], target interface{}, input map[string]interface{}) (map[string]interface{}, error) {
	return transform(r, arrangedto.TargetOf(target), arrangedto.DeclarationTagName, input)
}

// Decode transforms an input map for out's type, then decodes the result into out,
// which must be a pointer to a struct.
//
// Decoding uses mapstructure with arrangedto.DefaultDecodeHooks and the json tag.  The
// opts are applied afterward, and a TagName option also changes how input keys are matched
// during transformation.  TagName("") matches keys with the mapstructure tag, as decoding does.
func Decode(r *arrangedto.Registry[Rule], input map[string]interface{}, out interface{}, opts ...viper.DecoderConfigOption) error {
	dc := mapstructure.DecoderConfig{
		TagName: arrangedto.DeclarationTagName,
	}

	arrangedto.DefaultDecodeHooks(&dc)
	arrangedto.Merge(opts)(&dc)
	dc.Result = out

	// keys are matched with the same tag that mapstructure decodes with
	tagName := dc.TagName
	if len(tagName) == 0 {
		tagName = mapstructureTagName
	}

	transformed, err := transform(r, arrangedto.TargetOf(out), tagName, input)
	if err != nil {
		return err
	}

	d, err := mapstructure.NewDecoder(&dc)
	if err == nil {
		err = d.Decode(transformed)
	}

	return err
}

func transform(r *arrangedto.Registry[Rule], target reflect.Type, tagName string, input map[string]interface{}) (map[string]interface{}, error) {
	if target == nil || target.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	return transformStruct(
		Context{
			Registry: r,
			Target:   target,
			Type:     target,
			TagName:  tagName,
		},
		input,
	)
}

func transformStruct(c Context, input map[string]interface{}) (output map[string]interface{}, err error) {
	output = make(map[string]interface{}, len(input))
	keys := make([]string, 0, len(input))
	for k, v := range input {
		output[k] = v
		keys = append(keys, k)
	}

	sort.Strings(keys)
	structType := c.Type
	c.Registry.Visit(structType, func(property string, rules []Rule) bool {
		f, ok := structType.FieldByName(property)
		if !ok {
			return true
		}

		key, ok := matchKey(keys, f, c.TagName)
		if !ok {
			return true
		}

		pc := c.property(property)
		pc.Type = elementType(f.Type)
		for _, rule := range rules {
			var ruleErr error
			output[key], ruleErr = rule.apply(pc, output[key])
			err = multierr.Append(err, ruleErr)
		}

		return true
	})

	return
}

// matchKey finds the input key for a struct field.  An exact match on the tag key
// wins.  Otherwise, the first key in sorted order that matches either the tag key
// or the field name, ignoring case, is used.
func matchKey(keys []string, f reflect.StructField, tagName string) (string, bool) {
	tagKey := arrangedto.TagKey(f, tagName)
	for _, k := range keys {
		if k == tagKey {
			return k, true
		}
	}

	for _, k := range keys {
		if strings.EqualFold(k, tagKey) || strings.EqualFold(k, f.Name) {
			return k, true
		}
	}

	return "", false
}
