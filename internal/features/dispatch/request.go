package dispatch

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultOutputPath = "chart.png"
	DefaultTitle      = "Analysis"

	keyOutputPath   = "output_path"
	keyTitle        = "title"
	keyCoordinateX  = "coordinateX"
	keyCoordinateY  = "coordinateY"
	keyMeasurements = "measurements"
	keyTrendline    = "trendline"
)

// ChartRequest is one validated chart job.
type ChartRequest struct {
	OutputPath string
	Title      string
	Payload    Payload
}

// Payload is either a CoordinatePayload or a MeasurementPayload.
type Payload interface {
	payload()
}

// CoordinatePayload holds (x, y) pairs for a scatter plot.
type CoordinatePayload struct {
	X []float64
	Y []float64
}

// MeasurementPayload holds index-aligned measurements and their trend values.
type MeasurementPayload struct {
	Measurements []float64
	Trendline    []float64
}

func (CoordinatePayload) payload()  {}
func (MeasurementPayload) payload() {}

type ErrorKind int

const (
	MalformedJSON ErrorKind = iota + 1
	MissingArrays
	LengthMismatch
	InvalidType
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedJSON:
		return "malformed_json"
	case MissingArrays:
		return "missing_arrays"
	case LengthMismatch:
		return "length_mismatch"
	case InvalidType:
		return "invalid_type"
	default:
		return "unknown"
	}
}

// RequestError describes input that cannot be turned into a ChartRequest.
type RequestError struct {
	Kind ErrorKind
	Keys []string
	Err  error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case MalformedJSON:
		return e.Err.Error()
	case MissingArrays:
		return fmt.Sprintf("%s and %s arrays are required", e.Keys[0], e.Keys[1])
	case LengthMismatch:
		return fmt.Sprintf("%s and %s must have the same length", e.Keys[0], e.Keys[1])
	case InvalidType:
		return fmt.Sprintf("%s: %v", e.Keys[0], e.Err)
	default:
		return "invalid request"
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseRequest decodes one JSON object and validates it into a ChartRequest.
//
// The coordinate shape is chosen whenever both coordinateX and coordinateY
// keys are present, whatever their values, and wins over the measurement
// shape. Otherwise the measurement shape is used.
func ParseRequest(data []byte) (*ChartRequest, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, &RequestError{Kind: MalformedJSON, Err: errors.New("unexpected end of JSON input")}
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &RequestError{Kind: MalformedJSON, Err: err}
	}
	if fields == nil {
		return nil, &RequestError{Kind: MalformedJSON, Err: errors.New("expected a JSON object, got null")}
	}

	req := &ChartRequest{}
	var err error
	if req.OutputPath, err = stringField(fields, keyOutputPath, DefaultOutputPath); err != nil {
		return nil, err
	}
	if req.Title, err = stringField(fields, keyTitle, DefaultTitle); err != nil {
		return nil, err
	}

	_, hasX := fields[keyCoordinateX]
	_, hasY := fields[keyCoordinateY]
	if hasX && hasY {
		xs, ys, err := seriesPair(fields, keyCoordinateX, keyCoordinateY)
		if err != nil {
			return nil, err
		}
		req.Payload = CoordinatePayload{X: xs, Y: ys}
		return req, nil
	}

	measurements, trendline, err := seriesPair(fields, keyMeasurements, keyTrendline)
	if err != nil {
		return nil, err
	}
	req.Payload = MeasurementPayload{Measurements: measurements, Trendline: trendline}
	return req, nil
}

// stringField returns the string under key, or def when the key is absent or null.
func stringField(fields map[string]jsoniter.RawMessage, key, def string) (string, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return def, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &RequestError{Kind: InvalidType, Keys: []string{key}, Err: errors.New("must be a string")}
	}
	return s, nil
}

// seriesPair decodes and validates two arrays that must be non-empty and of equal length.
func seriesPair(fields map[string]jsoniter.RawMessage, keyA, keyB string) ([]float64, []float64, error) {
	a, err := series(fields, keyA)
	if err != nil {
		return nil, nil, err
	}
	b, err := series(fields, keyB)
	if err != nil {
		return nil, nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, &RequestError{Kind: MissingArrays, Keys: []string{keyA, keyB}}
	}
	if len(a) != len(b) {
		return nil, nil, &RequestError{Kind: LengthMismatch, Keys: []string{keyA, keyB}}
	}
	return a, b, nil
}

// series decodes the numeric array under key. Absent and null keys yield nil.
func series(fields map[string]jsoniter.RawMessage, key string) ([]float64, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, &RequestError{Kind: InvalidType, Keys: []string{key}, Err: errors.New("must be an array of numbers")}
	}
	return values, nil
}

// isNull reports a JSON null. jsoniter stores a null map value as an empty
// RawMessage rather than the literal bytes.
func isNull(raw jsoniter.RawMessage) bool {
	return len(raw) == 0 || strings.TrimSpace(string(raw)) == "null"
}
