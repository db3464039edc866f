package validation

import "testing"

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"latin letters", "Jane Doe", true},
		{"letters and digits", "User 42", true},
		{"arabic script", "محمد علي", true},
		{"mixed latin and arabic", "Sara سارة", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"punctuation", "Jane, Doe", false},
		{"emoji", "Jane 🙂", false},
		{"angle brackets", "<script>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"meets all rules", "Abcdef1!", true},
		{"lowercase only", "abcdefgh", false},
		{"no symbol", "Abcdefg1", false},
		{"no digit", "Abcdefg!", false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"too short", "Ab1!", false},
		{"at minimum length", "Aa1!aaaa", true},
		{"symbol outside accepted set", "Abcdefg1~", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPassword(tt.input); got != tt.want {
				t.Errorf("ValidPassword(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidPasswordLengthBounds(t *testing.T) {
	long := make([]byte, 0, PasswordMaxLength+1)
	for len(long) < PasswordMaxLength-3 {
		long = append(long, 'a')
	}
	long = append(long, 'A', '1', '!')

	if !ValidPassword(string(long)) {
		t.Fatalf("password of %d characters should pass", len(long))
	}
	if ValidPassword(string(long) + "a") {
		t.Fatalf("password of %d characters should fail", len(long)+1)
	}
}

func TestValidateRegistrationCollectsEveryViolation(t *testing.T) {
	issues := ValidateRegistration("Jane!", "abcdefgh", "different")
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}

	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{"name", "password", "password_confirmation"} {
		if !fields[field] {
			t.Errorf("expected an issue for field %q", field)
		}
	}
}

func TestValidateRegistrationPassesValidInput(t *testing.T) {
	issues := ValidateRegistration("Jane Doe", "Abcdef1!", "Abcdef1!")
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
