package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/loans", strings.Repeat("b", 32), strings.Repeat("a", 32))
	wantPrefix := "idemp:ax:post:/loans:"
	if !strings.HasPrefix(k, wantPrefix) {
		t.Fatalf("buildKey prefix mismatch: got %q want prefix %q", k, wantPrefix)
	}
	if !strings.Contains(k, strings.Repeat("b", 32)) || !strings.Contains(k, strings.Repeat("a", 32)) {
		t.Fatalf("buildKey must embed actor and request ids: %q", k)
	}
}

func Test_validReqID(t *testing.T) {
	cases := map[string]bool{
		strings.Repeat("a", 32): true,
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8": true,
		"6BA7B810-9DAD-11D1-80B4-00C04FD430C8": true, // lowered before matching
		"short":                                false,
		strings.Repeat("A", 32):                true, // lowered before matching
		strings.Repeat("z", 32):                false,
		"":                                     false,
	}
	for in, want := range cases {
		if got := validReqID(in); got != want {
			t.Errorf("validReqID(%q) = %v, want %v", in, got, want)
		}
	}
}

func Test_parseAxRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseAxRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Fatalf("epoch seconds value: %v", got)
	}

	// epoch milliseconds
	got, err = parseAxRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch ms value: %v", got)
	}

	// RFC3339 with zone
	got, err = parseAxRequestAt("2026-08-29T10:00:00+07:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Location() != time.UTC {
		t.Fatalf("must normalize to UTC, got %v", got.Location())
	}

	// naive timestamp rejected
	if _, err := parseAxRequestAt("2026-08-29T10:00:00"); err == nil {
		t.Fatalf("naive timestamp must be rejected")
	}
	// empty rejected
	if _, err := parseAxRequestAt(""); err == nil {
		t.Fatalf("empty must be rejected")
	}
}

func Test_provisionalSetAndLoad(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	ctx := context.Background()

	entry := idempEntry{InProgress: true, BodySHA256: "abc", RequestID: "r1", CreatedAt: nowUTC()}
	ok, err := provisionalSet(ctx, rdb, "k1", entry)
	if err != nil || !ok {
		t.Fatalf("first provisionalSet: ok=%v err=%v", ok, err)
	}
	// second set on the same key must lose
	ok, err = provisionalSet(ctx, rdb, "k1", entry)
	if err != nil || ok {
		t.Fatalf("second provisionalSet must lose: ok=%v err=%v", ok, err)
	}

	got, err := loadEntry(ctx, rdb, "k1")
	if err != nil {
		t.Fatalf("loadEntry: %v", err)
	}
	if !got.InProgress || got.BodySHA256 != "abc" || got.RequestID != "r1" {
		t.Fatalf("loaded entry mismatch: %+v", got)
	}
}

func Test_saveFinal_OverwritesWithTTL(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	ctx := context.Background()

	if _, err := provisionalSet(ctx, rdb, "k2", idempEntry{InProgress: true}); err != nil {
		t.Fatalf("provisionalSet: %v", err)
	}
	final := idempEntry{InProgress: false, Code: 201, Body: []byte(`{"ok":true}`)}
	if err := saveFinal(ctx, rdb, "k2", final, 30*time.Second); err != nil {
		t.Fatalf("saveFinal: %v", err)
	}

	got, err := loadEntry(ctx, rdb, "k2")
	if err != nil {
		t.Fatalf("loadEntry: %v", err)
	}
	if got.InProgress || got.Code != 201 {
		t.Fatalf("final entry mismatch: %+v", got)
	}

	// entry expires after the ttl
	mr.FastForward(31 * time.Second)
	if _, err := loadEntry(ctx, rdb, "k2"); err == nil {
		t.Fatalf("entry must expire after ttl")
	}
}
