package auth

import "testing"

func TestInitialPasswordFromDOB(t *testing.T) {
	cases := []struct {
		dob  string
		want string
	}{
		{"2003-08-21", "21-08-2003"},
		{"1999-01-01", "01-01-1999"},
		{"2000", "2000"},
	}
	for _, tc := range cases {
		if got := InitialPasswordFromDOB(tc.dob); got != tc.want {
			t.Errorf("InitialPasswordFromDOB(%q) = %q, want %q", tc.dob, got, tc.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("21-08-2003")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "21-08-2003" {
		t.Fatal("hash must not be the plaintext")
	}

	if !CheckPassword(hash, "21-08-2003") {
		t.Error("correct password must verify")
	}
	if CheckPassword(hash, "2003-08-21") {
		t.Error("wrong password must not verify")
	}
}
