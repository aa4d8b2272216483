// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hop

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Raw field names of a hop payload as sent by the trace provider.
const (
	FieldIndex         = "hop"
	FieldIP            = "ip"
	FieldHostname      = "hostname"
	FieldRTT           = "rtt"
	FieldLoss          = "loss"
	FieldGeo           = "geo"
	FieldAS            = "as"
	FieldReplyProtocol = "reply_proto"
)

var (
	// addressPlaceholders are sent by the provider instead of an address for silent hops.
	addressPlaceholders = []string{"", "*"}
	// hostnamePlaceholders mark a missing hostname. "Unknown" is deliberately kept as a value.
	hostnamePlaceholders = []string{"", "N/A"}
	// annotationPlaceholders mark missing geo, AS and reply protocol annotations.
	annotationPlaceholders = []string{"", "N/A", "None"}
)

// ErrNoHopList is returned when a body holds anything but exactly one hop list.
var ErrNoHopList = errors.New("body is not a hop list")

// ParsePath decodes a JSON array of raw hop payloads.
// The body must hold the array and nothing else.
func ParsePath(data []byte) (Path, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode hop list: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: null", ErrNoHopList)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the list", ErrNoHopList)
	}
	return DecodePath(raw)
}

// DecodePath builds a [Path] from raw hop payloads.
// Ingestion is all-or-nothing: the first malformed payload rejects the whole path.
// The payload order is kept as is.
func DecodePath(raw []any) (Path, error) {
	p := make(Path, 0, len(raw))
	seen := make(map[int]int, len(raw))
	for i, r := range raw {
		rec, err := Decode(i, r)
		if err != nil {
			return nil, err
		}
		if first, ok := seen[rec.Index]; ok {
			return nil, &MalformedHopError{
				Position: i,
				Field:    FieldIndex,
				Reason:   fmt.Sprintf("duplicates index %d of position %d", rec.Index, first),
			}
		}
		seen[rec.Index] = i
		p = append(p, rec)
	}
	return p, nil
}

// Decode builds a [Record] from one raw hop payload at the given path position.
// It fails with a [MalformedHopError] if the index is missing or not a positive
// integer, or if the RTT samples contain a negative or non-numeric value.
// Every other missing or unusable field resolves to its absent value.
func Decode(position int, raw any) (Record, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return Record{}, &MalformedHopError{Position: position, Reason: fmt.Sprintf("payload must be an object, got %T", raw)}
	}

	index, err := decodeIndex(fields[FieldIndex])
	if err != nil {
		return Record{}, &MalformedHopError{Position: position, Field: FieldIndex, Reason: err.Error()}
	}

	rtts, err := decodeSamples(fields[FieldRTT])
	if err != nil {
		return Record{}, &MalformedHopError{Position: position, Field: FieldRTT, Reason: err.Error()}
	}

	return Record{
		Index:         index,
		IP:            decodeText(fields[FieldIP], addressPlaceholders),
		Hostname:      decodeText(fields[FieldHostname], hostnamePlaceholders),
		RTTs:          rtts,
		Loss:          decodeLoss(fields[FieldLoss]),
		Geo:           decodeText(fields[FieldGeo], annotationPlaceholders),
		AS:            decodeText(fields[FieldAS], annotationPlaceholders),
		ReplyProtocol: decodeText(fields[FieldReplyProtocol], annotationPlaceholders),
	}, nil
}

func decodeIndex(v any) (int, error) {
	if v == nil {
		return 0, errors.New("is missing")
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("must be numeric, got %v", v)
	}
	if f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, fmt.Errorf("must be a positive integer, got %v", v)
	}
	return int(f), nil
}

func decodeSamples(v any) ([]float64, error) {
	if v == nil {
		return []float64{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list, got %T", v)
	}

	samples := make([]float64, 0, len(list))
	for i, s := range list {
		f, ok := toFloat(s)
		if !ok {
			return nil, fmt.Errorf("sample %d is not numeric: %v", i, s)
		}
		if f < 0 {
			return nil, fmt.Errorf("sample %d is negative: %v", i, f)
		}
		samples = append(samples, f)
	}
	return samples, nil
}

// decodeLoss clamps the loss into [0, 100]. Missing or non-numeric values count as no loss.
func decodeLoss(v any) float64 {
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return math.Min(math.Max(f, 0), 100)
}

func decodeText(v any, placeholders []string) Text {
	s, ok := v.(string)
	if !ok {
		return None()
	}
	s = strings.TrimSpace(s)
	if slices.Contains(placeholders, s) {
		return None()
	}
	return Some(s)
}

// toFloat converts well-formed numeric representations to a finite float64.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
