// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pattern

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler.
func (p Pattern) MarshalYAML() (any, error) {
	return p.src, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The pattern is compiled as it
// is unmarshaled.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	c, err := Compile(value.Value)
	if err != nil {
		return err
	}
	*p = *c
	return nil
}
