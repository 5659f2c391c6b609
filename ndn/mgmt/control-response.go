/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/named-data/ndntlv/ndn/tlv"
)

// ControlResponse represents the response from a management command.
type ControlResponse struct {
	StatusCode uint64
	StatusText string
	Body       []*tlv.Generic
}

// MakeControlResponse creates a ControlResponse. Each body element is re-wrapped as a Generic.
func MakeControlResponse(statusCode uint64, statusText string, body ...tlv.Element) *ControlResponse {
	c := new(ControlResponse)
	c.StatusCode = statusCode
	c.StatusText = statusText
	for _, elem := range body {
		c.Body = append(c.Body, tlv.FromElement(elem))
	}
	return c
}

// DecodeControlResponse decodes the value of a ControlResponse element. Elements other than
// StatusCode and StatusText form the body.
func DecodeControlResponse(tlvType tlv.Type, value []byte) (*ControlResponse, error) {
	c := new(ControlResponse)
	hasStatusCode := false
	hasStatusText := false

	r := tlv.NewReader(value)
	for !r.Empty() {
		elem, err := r.ReadElement()
		if err != nil {
			return nil, err
		}

		switch elem.Type() {
		case tlv.StatusCode:
			if hasStatusCode {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			hasStatusCode = true
			if err := nniField(&c.StatusCode)(elem); err != nil {
				return nil, err
			}
		case tlv.StatusText:
			if hasStatusText {
				return nil, tlv.Duplicate(tlvType, elem)
			}
			hasStatusText = true
			if err := textField(&c.StatusText)(elem); err != nil {
				return nil, err
			}
		default:
			c.Body = append(c.Body, elem)
		}
	}

	if !hasStatusCode {
		return nil, tlv.Invalidf(tlvType, "missing StatusCode")
	}
	if !hasStatusText {
		return nil, tlv.Invalidf(tlvType, "missing StatusText")
	}
	return c, nil
}

// ControlParameters decodes the first body element as ControlParameters, if there is one.
func (c *ControlResponse) ControlParameters() (*ControlParameters, error) {
	for _, elem := range c.Body {
		if elem.Type() == tlv.ControlParameters {
			return DecodeControlParameters(elem.Type(), elem.Value())
		}
	}
	return nil, tlv.Invalidf(tlv.ControlResponse, "no ControlParameters in body")
}

// Type returns the TLV type of a ControlResponse.
func (c *ControlResponse) Type() tlv.Type {
	return tlv.ControlResponse
}

// Length returns the length of the encoded value.
func (c *ControlResponse) Length() int {
	length := tlv.SizeAll(tlv.Number[statusCodeKind](c.StatusCode), tlv.String[statusTextKind](c.StatusText))
	for _, elem := range c.Body {
		length += tlv.Size(elem)
	}
	return length
}

// AppendValue appends the encoded value to dst.
func (c *ControlResponse) AppendValue(dst []byte) []byte {
	dst = tlv.Append(dst, tlv.Number[statusCodeKind](c.StatusCode))
	dst = tlv.Append(dst, tlv.String[statusTextKind](c.StatusText))
	for _, elem := range c.Body {
		dst = tlv.Append(dst, elem)
	}
	return dst
}
