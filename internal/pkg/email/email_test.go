package email

import "testing"

func TestBuildResetLink(t *testing.T) {
	tests := []struct {
		name        string
		frontendURL string
		token       string
		email       string
		want        string
	}{
		{
			name:        "plain values",
			frontendURL: "http://localhost:8080",
			token:       "abc123",
			email:       "jane@example.com",
			want:        "http://localhost:8080/reset-password?token=abc123&email=jane%40example.com",
		},
		{
			name:        "trailing slash trimmed",
			frontendURL: "http://localhost:8080/",
			token:       "abc123",
			email:       "jane@example.com",
			want:        "http://localhost:8080/reset-password?token=abc123&email=jane%40example.com",
		},
		{
			name:        "token with reserved characters",
			frontendURL: "https://app.example.com",
			token:       "a b&c",
			email:       "jane+test@example.com",
			want:        "https://app.example.com/reset-password?token=a+b%26c&email=jane%2Btest%40example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildResetLink(tt.frontendURL, tt.token, tt.email)
			if got != tt.want {
				t.Errorf("BuildResetLink() = %q, want %q", got, tt.want)
			}
		})
	}
}
