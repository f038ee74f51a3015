package blake2b

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestSumKAT checks Sum against the RFC 7693 sample BLAKE2b-512 vectors for
// the empty message and "abc".
func TestSumKAT(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{
			msg:  "",
			want: "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		},
		{
			msg:  "abc",
			want: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		},
	}

	for _, c := range cases {
		want, err := hex.DecodeString(c.want)
		if err != nil {
			t.Fatalf("bad test vector: %v", err)
		}
		got, err := Sum([]byte(c.msg), nil, MaxSize)
		if err != nil {
			t.Fatalf("Sum(%q): %v", c.msg, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Sum(%q) = %x, want %x", c.msg, got, want)
		}
	}
}

func TestSumBlockBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, BlockSize - 1, BlockSize, BlockSize + 1, 4 * BlockSize} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i)
		}
		if _, err := Sum(msg, nil, MaxSize); err != nil {
			t.Fatalf("Sum(len=%d): %v", n, err)
		}
	}
}

func TestSumKeyedDiffersFromUnkeyed(t *testing.T) {
	msg := []byte("the quick brown fox")
	key := []byte("0123456789abcdef")

	unkeyed, err := Sum(msg, nil, 32)
	if err != nil {
		t.Fatal(err)
	}
	keyed, err := Sum(msg, key, 32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(unkeyed, keyed) {
		t.Fatal("keyed and unkeyed digests must differ")
	}
}

func TestSumInvalidSize(t *testing.T) {
	if _, err := Sum(nil, nil, 0); err == nil {
		t.Fatal("expected error for digest size 0")
	}
	if _, err := Sum(nil, nil, MaxSize+1); err == nil {
		t.Fatal("expected error for oversized digest")
	}
}

func TestSumKeyTooLong(t *testing.T) {
	key := make([]byte, MaxKeySize+1)
	if _, err := Sum(nil, key, 32); err == nil {
		t.Fatal("expected error for oversized key")
	}
}
