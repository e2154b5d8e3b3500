package http

import "testing"

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"header normal", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"prefijo sin distincion de mayusculas", "bearer tok", "tok", true},
		{"espacios alrededor", "  Bearer   tok  ", "tok", true},
		{"header vacio", "", "", false},
		{"sin prefijo", "abc.def.ghi", "", false},
		{"esquema distinto", "Basic dXNlcjpwYXNz", "", false},
		{"bearer sin token", "Bearer   ", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			if ok != tc.ok || token != tc.token {
				t.Fatalf("bearerToken(%q) = (%q, %v), expected (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
			}
		})
	}
}
