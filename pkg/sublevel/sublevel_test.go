package sublevel

import "testing"

func TestShortName(t *testing.T) {
	cases := []struct {
		caveName string
		floor    int
		want     string
	}{
		{"SCx", 7, "SCx7"},
		{"SH", 6, "SH6"},
		{"FC", 3, "FC3"},
	}
	for _, c := range cases {
		got := New(c.caveName, c.floor).ShortName()
		if got != c.want {
			t.Errorf("ShortName() = %q, want %q", got, c.want)
		}
	}
}
