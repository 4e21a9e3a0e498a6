package auth

import (
	"testing"
)

func TestCheckPassword_Correct(t *testing.T) {
	if !CheckPassword("adminpass", "adminpass") {
		t.Fatal("Correct password was rejected")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
	}{
		{"different", "wrongpassword"},
		{"prefix", "admin"},
		{"longer", "adminpass1"},
		{"case", "AdminPass"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CheckPassword("adminpass", tt.submitted) {
				t.Errorf("CheckPassword accepted %q", tt.submitted)
			}
		})
	}
}
