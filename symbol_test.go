package ashare

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Symbol
	}{
		{"600000", "sh600000"},
		{"601398", "sh601398"},
		{"000001", "sz000001"},
		{"300750", "sz300750"},
		{"600000.SH", "sh600000"},
		{"600000.sh", "sh600000"},
		{"000001.SZ", "sz000001"},
		{"SH600000", "sh600000"},
		{"sz000001", "sz000001"},
		{" 600000 ", "sh600000"},
		// unknown leading digits pass through unchanged, the gateway
		// rejects them at fetch time
		{"835174", "835174"},
		{"688036.XX", "688036.xx"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	for _, in := range []string{"600000", "000001.SZ", "SH600000", "300750", "835174"} {
		once := Format(in)
		if twice := Format(string(once)); twice != once {
			t.Errorf("Format(Format(%q)) = %q; want %q", in, twice, once)
		}
	}
}

func TestSymbolCode(t *testing.T) {
	tests := []struct {
		in   Symbol
		want string
	}{
		{"sh600000", "600000"},
		{"sz000001", "000001"},
		{"835174", "835174"},
	}
	for _, tt := range tests {
		if got := tt.in.Code(); got != tt.want {
			t.Errorf("%q.Code() = %q; want %q", tt.in, got, tt.want)
		}
	}
}
