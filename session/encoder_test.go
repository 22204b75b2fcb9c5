package session

import (
	"testing"
	"time"

	"github.com/maxwellflitton/adminauth/roles"
)

func sampleSession() *Session {
	return &Session{
		Key:         "b4f7c3a1-8e2d-4f5b-9c6a-1d2e3f4a5b6c",
		UserID:      42,
		Role:        roles.Admin,
		TimeStarted: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TimeExpire:  time.Date(2026, 3, 1, 12, 20, 0, 0, time.UTC),
		UserAgent:   "Mozilla/5.0 (X11; Linux x86_64)",
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sess := sampleSession()

	data, err := Encode(sess)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *decoded != *sess {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, sess)
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	data, err := Encode(sampleSession())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	data[0] = 99
	if _, err := Decode(data); err == nil {
		t.Fatal("decode accepted an unknown format version")
	}
}

func TestDecodeRejectsTruncatedBlob(t *testing.T) {
	data, err := Encode(sampleSession())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	for i := 0; i < len(data); i++ {
		if _, err := Decode(data[:i]); err == nil {
			t.Fatalf("decode accepted a blob truncated at %d bytes", i)
		}
	}
}

func TestEncodeRejectsOversizedKey(t *testing.T) {
	sess := sampleSession()
	sess.Key = string(make([]byte, 256))

	if _, err := Encode(sess); err == nil {
		t.Fatal("encode accepted a 256-byte key")
	}
}

// FuzzDecode exercises the binary decoder with arbitrary inputs. Malformed
// data must produce errors, never panics.
func FuzzDecode(f *testing.F) {
	if encoded, err := Encode(sampleSession()); err == nil {
		f.Add(encoded)
		if len(encoded) > 10 {
			f.Add(encoded[:10])
		}
	}
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{1})
	f.Add([]byte{255, 255, 255})

	f.Fuzz(func(t *testing.T, data []byte) {
		s, err := Decode(data)
		if err != nil {
			return
		}
		if _, err := Encode(s); err != nil {
			t.Fatalf("re-encode of decoded session failed: %v", err)
		}
	})
}
