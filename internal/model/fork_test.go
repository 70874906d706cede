package model

import (
	"encoding/json"
	"testing"
)

func TestForkNullOwner(t *testing.T) {
	var f Fork
	data := `{"name":"Hello-World","full_name":"ghost/Hello-World","owner":null,"pushed_at":null}`
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Owner != nil {
		t.Fatalf("expected nil owner, got %+v", f.Owner)
	}
	if f.OwnerLogin() != "" {
		t.Errorf("OwnerLogin() = %q, want empty", f.OwnerLogin())
	}
	if f.AvatarURL() != DefaultAvatarURL {
		t.Errorf("AvatarURL() = %q, want default", f.AvatarURL())
	}
	if !f.PushedAt.IsZero() {
		t.Errorf("PushedAt should be zero, got %v", f.PushedAt)
	}
	if f.URL() != "https://github.com/ghost/Hello-World" {
		t.Errorf("URL() = %q", f.URL())
	}
}
