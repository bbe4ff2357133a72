// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSecretRedactionAndJSON(t *testing.T) {
	s := FromString("supersecret")
	if fmt.Sprintf("%v", s) != "[SECRET]" {
		t.Fatalf("unexpected fmt output: %q", fmt.Sprintf("%v", s))
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(b) != "\"[SECRET]\"" {
		t.Fatalf("unexpected json marshal: %s", string(b))
	}
}

func TestSecretNeverLeaksThroughFormatting(t *testing.T) {
	s := FromString("hunter2-token")
	outputs := []string{
		s.String(),
		s.Redacted(),
		fmt.Sprint(s),
		fmt.Sprintf("%v", s),
		fmt.Sprintf("%s", s),
		fmt.Sprintf("%#v", s),
		fmt.Sprintf("%+v", s),
	}
	for _, out := range outputs {
		if strings.Contains(out, "hunter2") {
			t.Fatalf("secret leaked: %q", out)
		}
		if out != "[SECRET]" {
			t.Errorf("got %q, want the redaction placeholder", out)
		}
	}
}

func TestSecretMarshalJSONInStruct(t *testing.T) {
	payload := struct {
		Token Secret `json:"token"`
	}{Token: FromString("hunter2-token")}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(data) != `{"token":"[SECRET]"}` {
		t.Fatalf("unexpected json marshal: %s", data)
	}
}

func TestSecretMarshalText(t *testing.T) {
	s := FromString("textdata")
	out, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(out) != "[SECRET]" {
		t.Fatalf("unexpected MarshalText output: %q", string(out))
	}
}

func TestSecretIsZero(t *testing.T) {
	if !Secret(nil).IsZero() {
		t.Fatal("nil Secret should be zero")
	}
	if !FromString("").IsZero() {
		t.Fatal("empty Secret should be zero")
	}
	if FromString("x").IsZero() {
		t.Fatal("non-empty Secret should not be zero")
	}
}

// TestSecretBytes tests that Bytes() returns a copy of underlying bytes.
func TestSecretBytes(t *testing.T) {
	original := []byte("sensitive")
	s := Secret(original)

	copy1 := s.Bytes()
	if !bytes.Equal(copy1, []byte("sensitive")) {
		t.Fatalf("copy doesn't match original: %v", copy1)
	}

	// Modify the copy and ensure original secret is not modified
	copy1[0] = 'X'
	if s[0] != 's' {
		t.Fatalf("modifying copy affected original: %v", s)
	}

	copy2 := s.Bytes()
	copy2[1] = 'Y'
	if copy1[1] != 'e' || copy2[1] != 'Y' {
		t.Fatalf("copies are not independent: copy1=%v, copy2=%v", copy1, copy2)
	}
}

func TestSecretZero(t *testing.T) {
	s := FromString("abc123")
	(&s).Zero()
	for i, v := range s {
		if v != 0 {
			t.Fatalf("expected zeroed byte at index %d, got %d", i, v)
		}
	}
}

// TestSecretZeroNilSecret tests Zero on nil Secret pointer.
func TestSecretZeroNilSecret(t *testing.T) {
	var s *Secret
	// Should not panic
	s.Zero()
}

// TestSecretFromBytes tests FromBytes makes independent copy.
func TestSecretFromBytes(t *testing.T) {
	original := []byte("frombytes")
	s := FromBytes(original)
	if !bytes.Equal([]byte(s), original) {
		t.Fatalf("FromBytes didn't copy content correctly")
	}
	original[0] = 'X'
	if s[0] != 'f' {
		t.Fatalf("FromBytes didn't make independent copy, original affected")
	}
}

func TestSecretFromString(t *testing.T) {
	s := FromString("test123")
	if !bytes.Equal([]byte(s), []byte("test123")) {
		t.Fatalf("FromString didn't create correct Secret: %v", []byte(s))
	}
}
