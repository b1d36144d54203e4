package stylespace

import (
	"strings"
	"testing"
)

func TestBucketFor_PartitionTotal(t *testing.T) {
	// Both boundaries close on the mid side.
	if got := BucketFor(1.0 / 3.0); got != BucketMid {
		t.Errorf("1/3 should be mid, got %s", got)
	}
	if got := BucketFor(2.0 / 3.0); got != BucketMid {
		t.Errorf("2/3 should be mid, got %s", got)
	}
	if got := BucketFor(0); got != BucketLow {
		t.Errorf("0 should be low, got %s", got)
	}
	if got := BucketFor(1); got != BucketHigh {
		t.Errorf("1 should be high, got %s", got)
	}
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		switch BucketFor(v) {
		case BucketLow, BucketMid, BucketHigh:
		default:
			t.Fatalf("value %v mapped to no bucket", v)
		}
	}
}

func TestBucketDepth_Range(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		d := bucketDepth(v)
		if d < 0 || d > 1 {
			t.Fatalf("bucket depth for %v out of range: %v", v, d)
		}
	}
	// The endpoints land exactly, with no rounding past the bound.
	if d := bucketDepth(0); d != 0 {
		t.Errorf("depth at 0 should be exactly 0, got %v", d)
	}
	if d := bucketDepth(1); d != 1 {
		t.Errorf("depth at 1 should be exactly 1, got %v", d)
	}
	if d := bucketDepth(1.0 / 3.0); d != 0 {
		t.Errorf("depth at the low/mid boundary should be exactly 0, got %v", d)
	}
	if d := bucketDepth(2.0 / 3.0); d != 1 {
		t.Errorf("depth at the mid/high boundary should be exactly 1, got %v", d)
	}
}

func TestSynthesizeText_CatalogEntry(t *testing.T) {
	c := DefaultCatalog()
	bundle, err := c.SynthesizeText(Selector{StyleID: "hemingway"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(bundle.Prompt, "[Style: Hemingway-esque (English (American))]") {
		t.Errorf("prompt should open with the style framing, got %q", bundle.Prompt[:min(len(bundle.Prompt), 60)])
	}
	if len(bundle.Fragments) != NumAxes {
		t.Fatalf("expected %d fragments, got %d", NumAxes, len(bundle.Fragments))
	}
	for i, f := range bundle.Fragments {
		if f.Axis != axisOrder[i] {
			t.Errorf("fragment %d: expected axis %s, got %s", i, axisOrder[i], f.Axis)
		}
		if !strings.Contains(bundle.Prompt, f.Text) {
			t.Errorf("prompt missing fragment for %s", f.Axis)
		}
	}
	// Hemingway sits low on density and ornament, high on concreteness.
	if bundle.Fragments[0].Bucket != BucketLow {
		t.Errorf("syntactic density at 0.10 should bucket low, got %s", bundle.Fragments[0].Bucket)
	}
	if bundle.Fragments[1].Bucket != BucketHigh {
		t.Errorf("sensory concreteness at 0.90 should bucket high, got %s", bundle.Fragments[1].Bucket)
	}
	if !strings.Contains(bundle.Prompt, "Key techniques: ") {
		t.Error("prompt should list signature moves")
	}
	if !strings.Contains(bundle.Prompt, "Register: Anglo-Saxon monosyllabic preference.") {
		t.Error("prompt should carry the entry register constraint")
	}
	if !strings.Contains(bundle.Prompt, "Avoid these words: very, really") {
		t.Error("prompt should carry the forbidden words")
	}
	movesAt := strings.Index(bundle.Prompt, "Key techniques: ")
	fragmentAt := strings.Index(bundle.Prompt, bundle.Fragments[0].Text)
	if movesAt < 0 || fragmentAt < 0 || movesAt > fragmentAt {
		t.Error("signature moves should precede the axis fragments")
	}
}

func TestSynthesizeText_CustomCoordinates(t *testing.T) {
	c := DefaultCatalog()
	bundle, err := c.SynthesizeText(Selector{Custom: uniformCoordinate(0.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(bundle.Prompt, "[Style:") {
		t.Error("custom coordinates should produce no style framing")
	}
	// With no entry and no moves the prompt is exactly the 8 fragments.
	parts := make([]string, 0, NumAxes)
	for _, f := range bundle.Fragments {
		if f.Bucket != BucketMid {
			t.Errorf("axis %s at 0.5 should bucket mid, got %s", f.Axis, f.Bucket)
		}
		parts = append(parts, f.Text)
	}
	if want := strings.Join(parts, textDelimiter); bundle.Prompt != want {
		t.Errorf("custom prompt should be the bare fragments\n got: %q\nwant: %q", bundle.Prompt, want)
	}
}

func TestSynthesizeText_Blend(t *testing.T) {
	c := DefaultCatalog()
	sel := Selector{Blend: BlendSpec{{ID: "hemingway", Weight: 0.7}, {ID: "borges", Weight: 0.3}}}
	bundle, err := c.SynthesizeText(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(bundle.Source, "70% Hemingway-esque") || !strings.Contains(bundle.Source, "30% Borgesian") {
		t.Errorf("blend source should name weighted contributors, got %q", bundle.Source)
	}
	if len(bundle.SignatureMoves) != 10 {
		t.Errorf("expected 10 merged signature moves, got %d", len(bundle.SignatureMoves))
	}
	if bundle.Register != "" || bundle.ParagraphRhythm != "" || len(bundle.ForbiddenWords) != 0 {
		t.Error("blends should carry no single-entry text constraints")
	}
}

func TestSynthesizeImage_ModifierTrailing(t *testing.T) {
	c := DefaultCatalog()
	bundle, err := c.SynthesizeImage(Selector{StyleID: "murakami"}, "oil painting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(bundle.Prompt, "oil painting") {
		t.Errorf("modifier should be the trailing term, got %q", bundle.Prompt[max(0, len(bundle.Prompt)-40):])
	}
	if !strings.Contains(bundle.Prompt, "urban loneliness") {
		t.Error("prompt should carry the entry's keywords")
	}
	if !strings.Contains(bundle.Prompt, "color palette: ") {
		t.Error("prompt should carry the color palette")
	}
	if !strings.HasPrefix(bundle.Prompt, "style of Murakami-esque (Japanese)") {
		t.Errorf("prompt should open with the style source, got %q", bundle.Prompt[:min(len(bundle.Prompt), 50)])
	}
}

func TestSynthesizeImage_NoModifier(t *testing.T) {
	c := DefaultCatalog()
	bundle, err := c.SynthesizeImage(Selector{Custom: uniformCoordinate(0.9)}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range bundle.Fragments {
		if f.Bucket != BucketHigh {
			t.Errorf("axis %s at 0.9 should bucket high, got %s", f.Axis, f.Bucket)
		}
	}
	if strings.HasSuffix(bundle.Prompt, imageDelimiter) {
		t.Error("prompt should not end with a dangling delimiter")
	}
	if len(bundle.Keywords) != 0 || len(bundle.ColorPalette) != 0 {
		t.Error("custom coordinates should carry no entry overrides")
	}
}

func TestSelectorValidate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selector
		wantErr bool
	}{
		{name: "style id", sel: Selector{StyleID: "kafka"}},
		{name: "blend", sel: Selector{Blend: BlendSpec{{ID: "kafka", Weight: 1}}}},
		{name: "custom", sel: Selector{Custom: uniformCoordinate(0.5)}},
		{name: "nothing set", sel: Selector{}, wantErr: true},
		{
			name:    "two routes",
			sel:     Selector{StyleID: "kafka", Custom: uniformCoordinate(0.5)},
			wantErr: true,
		},
		{
			name: "all three routes",
			sel: Selector{
				StyleID: "kafka",
				Blend:   BlendSpec{{ID: "borges", Weight: 1}},
				Custom:  uniformCoordinate(0.5),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolve_ErrorPropagation(t *testing.T) {
	c := DefaultCatalog()
	if _, err := c.Resolve(Selector{StyleID: "austen"}); !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
	bad := uniformCoordinate(0.5)
	bad[AxisTemporalMode] = 2
	if _, err := c.Resolve(Selector{Custom: bad}); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	zero := BlendSpec{{ID: "kafka", Weight: 0}}
	if _, err := c.Resolve(Selector{Blend: zero}); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestResolve_BlendMatchesDirectBlend(t *testing.T) {
	c := DefaultCatalog()
	spec := BlendSpec{{ID: "didion", Weight: 2}, {ID: "lispector", Weight: 1}}
	res, err := c.Resolve(Selector{Blend: spec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	direct, err := c.Blend(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, axis := range axisOrder {
		if res.Coordinate[axis] != direct.Coordinate[axis] {
			t.Errorf("axis %s: resolve and direct blend disagree", axis)
		}
	}
	if res.Source != direct.Display {
		t.Errorf("resolve source %q should equal blend display %q", res.Source, direct.Display)
	}
}
