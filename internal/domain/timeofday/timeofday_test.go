package timeofday

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Time
		wantErr bool
	}{
		{in: "07:30", want: New(7, 30)},
		{in: "23:00", want: New(23, 0)},
		{in: "7", want: New(7, 0)},
		{in: " 18 ", want: New(18, 0)},
		{in: "18:15:00", want: New(18, 15)},
		{in: "24:00", want: New(0, 0)},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12:xx", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := New(9, 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want 09:05", got)
	}
	if got := New(0, 30).String(); got != "00:30" {
		t.Errorf("String() = %q, want 00:30", got)
	}
}
