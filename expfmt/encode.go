// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package expfmt renders translated sample families in the Prometheus
// exposition formats: the text format version 0.0.4 and the protobuf
// delimited format, with content negotiation over the HTTP Accept header.
package expfmt

import (
	"fmt"
	"io"
	"net/http"

	"github.com/munnerz/goautoneg"
	"google.golang.org/protobuf/encoding/protodelim"

	"github.com/prometheus-community/tritium_exporter/model"
)

// Format specifies the wire format of an encoded response. The values double
// as Content-Type header values.
type Format string

const (
	// TextVersion is the supported version of the text exposition format.
	TextVersion = "0.0.4"

	// ProtoType and ProtoProtocol identify the protobuf exposition format.
	ProtoType     = `application/vnd.google.protobuf`
	ProtoProtocol = `io.prometheus.client.MetricFamily`

	FmtText       Format = `text/plain; version=` + TextVersion + `; charset=utf-8`
	FmtProtoDelim Format = ProtoType + `; proto=` + ProtoProtocol + `; encoding=delimited`

	hdrAccept = "Accept"
)

// Encoder types encode sample families into an underlying wire format.
type Encoder interface {
	Encode(*model.SampleFamily) error
}

type encoderFunc func(*model.SampleFamily) error

func (e encoderFunc) Encode(f *model.SampleFamily) error {
	return e(f)
}

// Negotiate returns the Format to use based on the given Accept header. The
// protobuf delimited format is returned only when explicitly requested; for
// everything else, including an absent or unparsable header, the text format
// is returned.
func Negotiate(h http.Header) Format {
	for _, ac := range goautoneg.ParseAccept(h.Get(hdrAccept)) {
		ver := ac.Params["version"]
		if ac.Type+"/"+ac.SubType == ProtoType && ac.Params["proto"] == ProtoProtocol {
			if ac.Params["encoding"] == "delimited" {
				return FmtProtoDelim
			}
		}
		if ac.Type == "text" && ac.SubType == "plain" && (ver == TextVersion || ver == "") {
			return FmtText
		}
	}
	return FmtText
}

// NewEncoder returns a new encoder writing the given format to w.
func NewEncoder(w io.Writer, format Format) (Encoder, error) {
	switch format {
	case FmtProtoDelim:
		return encoderFunc(func(f *model.SampleFamily) error {
			for _, mf := range familyToDTO(f) {
				if _, err := protodelim.MarshalTo(w, mf); err != nil {
					return err
				}
			}
			return nil
		}), nil
	case FmtText:
		return encoderFunc(func(f *model.SampleFamily) error {
			_, err := FamilyToText(w, f)
			return err
		}), nil
	}
	return nil, fmt.Errorf("expfmt.NewEncoder: unknown format %q", format)
}
