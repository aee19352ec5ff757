package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", White, false},
		{"000000", Black, false},
		{"#c84c0c", Color{0xc8, 0x4c, 0x0c}, false},
		{" #0a0B0c ", Color{0x0a, 0x0b, 0x0c}, false},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{0x12, 0xab, 0xef}
	if c.Hex() != "#12abef" {
		t.Errorf("Hex() = %q", c.Hex())
	}

	var back Color
	if err := back.UnmarshalText([]byte(c.Hex())); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}

	rgba := c.RGBA()
	if rgba.R != 0x12 || rgba.G != 0xab || rgba.B != 0xef || rgba.A != 255 {
		t.Errorf("RGBA() = %+v", rgba)
	}
}
