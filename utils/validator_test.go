package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"writer@sufipulse.com", "a.b+c@example.co.uk"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("%s should be valid", email)
		}
	}

	invalid := []string{"", "no-at-sign", "user@", "@example.com", "user@host"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("%s should be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("short password should be rejected")
	}
	if ok, msg := ValidatePassword("longenough"); !ok {
		t.Errorf("eight-plus characters should pass, got %q", msg)
	}
}

func TestValidateYouTubeLink(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"http://youtube.com/watch?v=abc",
	}
	for _, link := range valid {
		if !ValidateYouTubeLink(link) {
			t.Errorf("%s should be valid", link)
		}
	}

	invalid := []string{"", "https://vimeo.com/12345", "youtube.com/watch?v=abc", "https://youtube.com/"}
	for _, link := range invalid {
		if ValidateYouTubeLink(link) {
			t.Errorf("%s should be invalid", link)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  title\x00 "); got != "title" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateOTPLength(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("got %q, want six digits", otp)
		}
		for _, ch := range otp {
			if ch < '0' || ch > '9' {
				t.Fatalf("non-digit in %q", otp)
			}
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("correct horse battery", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Fatal("wrong password accepted")
	}
}
