package stylespace

import "fmt"

// Selector names a point in style space by exactly one of three routes: a
// catalog entry ID, a blend of entries, or raw coordinates.
type Selector struct {
	StyleID string
	Blend   BlendSpec
	Custom  Coordinate
}

// Validate checks that exactly one selection route is set.
func (s Selector) Validate() error {
	set := 0
	if s.StyleID != "" {
		set++
	}
	if len(s.Blend) > 0 {
		set++
	}
	if len(s.Custom) > 0 {
		set++
	}
	if set != 1 {
		return validationf("selector must set exactly one of style id, blend, or custom coordinates (got %d)", set)
	}
	return nil
}

// Resolution is a selector resolved against a catalog: the concrete
// coordinate plus whatever framing the route provides. Entry is set only
// for the style-ID route and Blend only for the blend route.
type Resolution struct {
	Coordinate     Coordinate
	Source         string
	SignatureMoves []string
	Entry          *StyleEntry
	Blend          *BlendResult
}

// Resolve turns a selector into a concrete coordinate. Catalog entries
// contribute their display name and signature moves; blends contribute
// the blend label and merged moves; custom coordinates arrive bare.
func (c *Catalog) Resolve(sel Selector) (*Resolution, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	switch {
	case sel.StyleID != "":
		e, err := c.Get(sel.StyleID)
		if err != nil {
			return nil, err
		}
		return &Resolution{
			Coordinate:     e.Coordinate,
			Source:         fmt.Sprintf("%s (%s)", e.DisplayName, e.Origin),
			SignatureMoves: e.SignatureMoves,
			Entry:          &e,
		}, nil
	case len(sel.Blend) > 0:
		result, err := c.Blend(sel.Blend)
		if err != nil {
			return nil, err
		}
		return &Resolution{
			Coordinate:     result.Coordinate,
			Source:         result.Display,
			SignatureMoves: result.SignatureMoves,
			Blend:          result,
		}, nil
	default:
		if err := sel.Custom.Validate(); err != nil {
			return nil, err
		}
		return &Resolution{Coordinate: sel.Custom.Clone()}, nil
	}
}
