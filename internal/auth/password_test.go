package auth

import "testing"

func TestPasswordHashingLifecycle(t *testing.T) {
	h := BcryptHasher{}
	password := "S3curePass!"
	hash, err := h.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	ok, err := h.Verify(hash, password)
	if err != nil || !ok {
		t.Fatalf("expected password to verify, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify(hash, "wrong")
	if err != nil {
		t.Fatalf("unexpected error for mismatch: %v", err)
	}
	if ok {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestDigestMatchesLegacyFormat(t *testing.T) {
	if got := Digest(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("unexpected empty-string digest %s", got)
	}
	if got := Digest("abc"); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("unexpected digest %s", got)
	}
	if !IsLegacyDigest(Digest("pw1")) {
		t.Fatal("expected digest to be recognised as legacy")
	}
	if IsLegacyDigest("not-a-digest") {
		t.Fatal("expected short string to be rejected")
	}
}

func TestNewHasher(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		wantErr bool
	}{
		{name: "default", scheme: "", wantErr: false},
		{name: "bcrypt", scheme: "bcrypt", wantErr: false},
		{name: "sha256 upper", scheme: " SHA256 ", wantErr: false},
		{name: "unknown", scheme: "md5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHasher(tt.scheme)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil || h == nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSHA256HasherRoundTrip(t *testing.T) {
	h := SHA256Hasher{}
	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash != Digest("pw1") {
		t.Fatalf("expected plain digest, got %s", hash)
	}
	ok, err := h.Verify(hash, "pw1")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	ok, _ = h.Verify(hash, "wrong")
	if ok {
		t.Fatal("expected mismatch")
	}
	if h.NeedsRehash(hash) {
		t.Fatal("sha256 hasher never asks for rehash")
	}
}

func TestBcryptHasherAcceptsLegacyDigest(t *testing.T) {
	h := BcryptHasher{}
	legacy := Digest("#sbm@86140764")

	ok, err := h.Verify(legacy, "#sbm@86140764")
	if err != nil || !ok {
		t.Fatalf("expected legacy digest to verify, got ok=%v err=%v", ok, err)
	}
	if !h.NeedsRehash(legacy) {
		t.Fatal("expected legacy digest to need rehash")
	}

	fresh, err := h.Hash("#sbm@86140764")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.NeedsRehash(fresh) {
		t.Fatal("fresh bcrypt hash should not need rehash")
	}
	if IsLegacyDigest(fresh) {
		t.Fatal("bcrypt hash must not look like a legacy digest")
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	if _, err := (BcryptHasher{}).Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
	if _, err := (SHA256Hasher{}).Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
