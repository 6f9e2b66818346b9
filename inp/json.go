// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// sessionData mirrors the wire format; pointers detect missing mandatory sections
type sessionData struct {
	Meta   map[string]interface{} `json:"meta"`
	Mode   *Mode                  `json:"mode"`
	Air    *AirConditions         `json:"air"`
	Engine *Engine                `json:"engine"`
	Geom   *Geometry              `json:"geom"`
	Lifts  *FlowSeries            `json:"lifts"`
	CSA    *CSAProfile            `json:"csa,omitempty"`
	Tuning map[string]interface{} `json:"tuning,omitempty"`
}

// MarshalJSON writes the session in the wire format
func (o Session) MarshalJSON() ([]byte, error) {
	meta := o.Meta
	if meta == nil {
		meta = map[string]interface{}{}
	}
	lifts := o.Lifts
	if lifts.Intake == nil {
		lifts.Intake = []LiftPoint{}
	}
	if lifts.Exhaust == nil {
		lifts.Exhaust = []LiftPoint{}
	}
	return json.Marshal(sessionData{
		Meta:   meta,
		Mode:   &o.Mode,
		Air:    &o.Air,
		Engine: &o.Engine,
		Geom:   &o.Geom,
		Lifts:  &lifts,
		CSA:    o.CSA,
		Tuning: o.Tuning,
	})
}

// UnmarshalJSON reads the session from the wire format and validates it
func (o *Session) UnmarshalJSON(b []byte) error {
	var d sessionData
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	switch {
	case d.Mode == nil:
		return chk.Err("session: mandatory field %q is missing", "mode")
	case d.Air == nil:
		return chk.Err("session: mandatory field %q is missing", "air")
	case d.Engine == nil:
		return chk.Err("session: mandatory field %q is missing", "engine")
	case d.Geom == nil:
		return chk.Err("session: mandatory field %q is missing", "geom")
	case d.Lifts == nil:
		return chk.Err("session: mandatory field %q is missing", "lifts")
	}
	if d.Meta == nil {
		d.Meta = map[string]interface{}{}
	}
	if len(d.Lifts.Intake) == 0 {
		d.Lifts.Intake = nil
	}
	if len(d.Lifts.Exhaust) == 0 {
		d.Lifts.Exhaust = nil
	}
	s := Session{
		Meta:   d.Meta,
		Mode:   *d.Mode,
		Air:    *d.Air,
		Engine: *d.Engine,
		Geom:   *d.Geom,
		Lifts:  *d.Lifts,
		CSA:    d.CSA,
		Tuning: d.Tuning,
	}
	if err := s.Validate(); err != nil {
		return err
	}
	*o = s
	return nil
}

// ReadSession reads and validates a session JSON file
func ReadSession(fn string) (*Session, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read session file %q:\n%v", fn, err)
	}
	var s Session
	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, chk.Err("cannot decode session file %q:\n%v", fn, err)
	}
	return &s, nil
}

// WriteSession writes a session JSON file, creating the directory if needed
func WriteSession(fn string, s Session) error {
	return WriteJSON(fn, s)
}

// WriteJSON writes any JSON-serialisable value, indented, creating the directory if needed
func WriteJSON(fn string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return chk.Err("cannot encode %q:\n%v", fn, err)
	}
	if err = os.MkdirAll(filepath.Dir(fn), 0777); err != nil {
		return chk.Err("cannot create directory for %q:\n%v", fn, err)
	}
	if err = os.WriteFile(fn, b, 0644); err != nil {
		return chk.Err("cannot write %q:\n%v", fn, err)
	}
	return nil
}
