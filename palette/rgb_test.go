package palette

import "testing"

type fixedInts []int

func (f *fixedInts) IntN(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestDeriveBirthColor(t *testing.T) {
	tests := []struct {
		name  string
		alive RGB
		shift RGB
		want  RGB
	}{
		{"zero shift", RGB{10, 20, 30}, RGB{}, RGB{10, 20, 30}},
		{"plain add", RGB{10, 20, 30}, RGB{1, 2, 3}, RGB{11, 22, 33}},
		{"wraps past 254", RGB{200, 0, 254}, RGB{100, 0, 1}, RGB{45, 0, 0}},
		{"blue with 64 shift", Blue, RGB{64, 64, 64}, RGB{64, 64, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveBirthColor(tt.alive, tt.shift); got != tt.want {
				t.Fatalf("DeriveBirthColor(%v, %v) = %v, want %v", tt.alive, tt.shift, got, tt.want)
			}
		})
	}
}

func TestDeriveBirthColorFullCycle(t *testing.T) {
	full := RGB{255, 255, 255}
	for v := 0; v < 255; v++ {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		if got := DeriveBirthColor(c, full); got != c {
			t.Fatalf("shift of 255 on %d: got %v, want unchanged", v, got)
		}
	}

	// The modulus is 255, not 256: a saturated channel wraps to zero.
	if got := DeriveBirthColor(White, full); got != Black {
		t.Fatalf("shift of 255 on 255: got %v, want %v", got, Black)
	}
	if got := DeriveBirthColor(White, RGB{}); got != Black {
		t.Fatalf("zero shift on 255: got %v, want %v", got, Black)
	}
}

func TestDimByPercent(t *testing.T) {
	tests := []struct {
		percent int
		in      RGB
		want    RGB
	}{
		{0, RGB{255, 128, 7}, RGB{255, 128, 7}},
		{50, RGB{255, 128, 7}, RGB{127, 64, 3}},
		{70, RGB{255, 100, 10}, RGB{76, 30, 3}},
		{100, RGB{255, 128, 7}, Black},
		{150, RGB{255, 128, 7}, Black},
		{-20, RGB{255, 128, 7}, RGB{255, 128, 7}},
	}

	for _, tt := range tests {
		if got := DimByPercent(tt.in, tt.percent); got != tt.want {
			t.Errorf("DimByPercent(%v, %d) = %v, want %v", tt.in, tt.percent, got, tt.want)
		}
	}
}

func TestRandomStaysBelowModulus(t *testing.T) {
	src := fixedInts{254, 255, 600}
	got := Random(&src)
	want := RGB{254, 0, 90}
	if got != want {
		t.Fatalf("Random = %v, want %v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#0000ff")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if got != Blue {
		t.Fatalf("ParseHex(#0000ff) = %v, want %v", got, Blue)
	}

	c := RGB{12, 200, 99}
	back, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
	}
	if back != c {
		t.Fatalf("hex round trip: got %v, want %v", back, c)
	}

	if _, err := ParseHex("blue"); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
}

func TestFromTriple(t *testing.T) {
	if got := FromTriple([3]int{64, 300, -1}); got != (RGB{64, 44, 255}) {
		t.Fatalf("FromTriple = %v", got)
	}
}
