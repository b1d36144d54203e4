// Package tool exposes the style-space engine as a registry of named
// operations speaking JSON. The esque serve command runs the registry over
// line-delimited JSON on stdin/stdout so editor integrations and agent
// harnesses can drive the engine without shelling out per call.
package tool

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/inklab/esque/pkg/stylespace"
)

// Handler executes one named operation against the catalog.
type Handler func(params json.RawMessage) (any, error)

// Request is one incoming operation call. ID is optional; the registry
// stamps a fresh UUID on the response when the caller omits it.
type Request struct {
	ID     string          `json:"id,omitempty"`
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ErrorInfo classifies a failed call so callers can branch without parsing
// message text.
type ErrorInfo struct {
	Kind    string `json:"kind"` // "not_found", "validation", "empty_domain", "bad_request"
	Message string `json:"message"`
}

// Response is the envelope for one completed call.
type Response struct {
	ID     string     `json:"id"`
	Tool   string     `json:"tool"`
	OK     bool       `json:"ok"`
	Result any        `json:"result,omitempty"`
	Error  *ErrorInfo `json:"error,omitempty"`
}

// Registry maps operation names to handlers over a fixed catalog.
type Registry struct {
	catalog  *stylespace.Catalog
	version  string
	handlers map[string]Handler
}

// NewRegistry builds the full operation registry over the given catalog.
// The version string is reported by the server-info operation.
func NewRegistry(catalog *stylespace.Catalog, version string) *Registry {
	r := &Registry{
		catalog:  catalog,
		version:  version,
		handlers: make(map[string]Handler),
	}
	r.handlers["list-styles"] = r.listStyles
	r.handlers["get-style-profile"] = r.getStyleProfile
	r.handlers["list-dimensions"] = r.listDimensions
	r.handlers["list-parameter-names"] = r.listParameterNames
	r.handlers["compute-distance"] = r.computeDistance
	r.handlers["blend"] = r.blend
	r.handlers["synthesize-text-prompt"] = r.synthesizeText
	r.handlers["synthesize-image-prompt"] = r.synthesizeImage
	r.handlers["find-extremes"] = r.findExtremes
	r.handlers["find-nearest"] = r.findNearest
	r.handlers["server-info"] = r.serverInfo
	return r
}

// Tools returns the registered operation names, sorted.
func (r *Registry) Tools() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute dispatches one request and always produces a response envelope;
// failures are carried inside the envelope rather than returned.
func (r *Registry) Execute(req Request) Response {
	resp := Response{ID: req.ID, Tool: req.Tool}
	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}

	handler, ok := r.handlers[req.Tool]
	if !ok {
		resp.Error = &ErrorInfo{
			Kind:    "bad_request",
			Message: fmt.Sprintf("unknown tool %q", req.Tool),
		}
		return resp
	}

	result, err := handler(req.Params)
	if err != nil {
		resp.Error = classify(err)
		return resp
	}
	resp.OK = true
	resp.Result = result
	return resp
}

// Serve reads line-delimited JSON requests from in and writes one response
// envelope per line to out. Malformed lines produce bad_request envelopes;
// only I/O failures end the loop.
func (r *Registry) Serve(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(out)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp := Response{
				ID: uuid.New().String(),
				Error: &ErrorInfo{
					Kind:    "bad_request",
					Message: fmt.Sprintf("malformed request: %v", err),
				},
			}
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
			continue
		}
		if err := encoder.Encode(r.Execute(req)); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
	return scanner.Err()
}

// classify maps engine errors onto wire error kinds.
func classify(err error) *ErrorInfo {
	info := &ErrorInfo{Kind: "bad_request", Message: err.Error()}
	switch {
	case stylespace.IsNotFound(err):
		info.Kind = "not_found"
	case stylespace.IsValidation(err):
		info.Kind = "validation"
	case stylespace.IsEmptyDomain(err):
		info.Kind = "empty_domain"
	}
	return info
}

// selectorParams is the shared selection shape accepted by the distance and
// prompt operations: exactly one of style_id, blend, or coordinates.
type selectorParams struct {
	StyleID     string             `json:"style_id,omitempty"`
	Blend       []blendTermParam   `json:"blend,omitempty"`
	Coordinates map[string]float64 `json:"coordinates,omitempty"`
}

type blendTermParam struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

func (p selectorParams) selector() stylespace.Selector {
	sel := stylespace.Selector{StyleID: p.StyleID}
	for _, t := range p.Blend {
		sel.Blend = append(sel.Blend, stylespace.BlendTerm{ID: t.ID, Weight: t.Weight})
	}
	if len(p.Coordinates) > 0 {
		sel.Custom = make(stylespace.Coordinate, len(p.Coordinates))
		for axis, v := range p.Coordinates {
			sel.Custom[stylespace.Axis(axis)] = v
		}
	}
	return sel
}

func decode[T any](params json.RawMessage) (T, error) {
	var v T
	if len(params) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(params, &v); err != nil {
		return v, fmt.Errorf("malformed params: %w", err)
	}
	return v, nil
}

func (r *Registry) listStyles(json.RawMessage) (any, error) {
	return r.catalog.Entries(), nil
}

func (r *Registry) getStyleProfile(params json.RawMessage) (any, error) {
	p, err := decode[struct {
		ID string `json:"id"`
	}](params)
	if err != nil {
		return nil, err
	}
	return r.catalog.Get(p.ID)
}

func (r *Registry) listDimensions(json.RawMessage) (any, error) {
	return stylespace.Dimensions(), nil
}

func (r *Registry) listParameterNames(json.RawMessage) (any, error) {
	return stylespace.ParameterNames(), nil
}

func (r *Registry) computeDistance(params json.RawMessage) (any, error) {
	p, err := decode[struct {
		ID1 string `json:"id1"`
		ID2 string `json:"id2"`
	}](params)
	if err != nil {
		return nil, err
	}
	return r.catalog.Distance(p.ID1, p.ID2)
}

func (r *Registry) blend(params json.RawMessage) (any, error) {
	p, err := decode[selectorParams](params)
	if err != nil {
		return nil, err
	}
	return r.catalog.Blend(p.selector().Blend)
}

func (r *Registry) synthesizeText(params json.RawMessage) (any, error) {
	p, err := decode[selectorParams](params)
	if err != nil {
		return nil, err
	}
	return r.catalog.SynthesizeText(p.selector())
}

func (r *Registry) synthesizeImage(params json.RawMessage) (any, error) {
	p, err := decode[struct {
		selectorParams
		Modifier string `json:"modifier,omitempty"`
	}](params)
	if err != nil {
		return nil, err
	}
	return r.catalog.SynthesizeImage(p.selector(), p.Modifier)
}

func (r *Registry) findExtremes(json.RawMessage) (any, error) {
	return r.catalog.Extremes()
}

func (r *Registry) findNearest(params json.RawMessage) (any, error) {
	p, err := decode[selectorParams](params)
	if err != nil {
		return nil, err
	}
	if p.StyleID != "" {
		return r.catalog.NearestTo(p.StyleID)
	}
	return r.catalog.Nearest(p.selector().Custom, nil)
}

func (r *Registry) serverInfo(json.RawMessage) (any, error) {
	return map[string]any{
		"name":       "esque",
		"version":    r.version,
		"styles":     r.catalog.Len(),
		"axes":       stylespace.NumAxes,
		"parameters": stylespace.ParameterNames(),
		"tools":      r.Tools(),
	}, nil
}
