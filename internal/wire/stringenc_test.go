package wire

import "testing"

func TestEncodeStringRoundTripsThroughDecode(t *testing.T) {
	cases := []string{"", "wl_seat", "a", "abcd", "abc"}
	for _, s := range cases {
		words := EncodeString(s)
		if len(words) < 1 {
			t.Fatalf("EncodeString(%q) returned no words", s)
		}
		wantLen := len(s) + 1
		if words[0] != uint32(wantLen) {
			t.Errorf("EncodeString(%q)[0] = %d, want %d", s, words[0], wantLen)
		}
		wantBodyWords := (wantLen + 3) / 4
		if len(words) != 1+wantBodyWords {
			t.Errorf("EncodeString(%q) = %d words, want %d", s, len(words), 1+wantBodyWords)
		}

		decoded := decodeStringBody(words[1:], wantLen)
		if decoded != s {
			t.Errorf("decoded = %q, want %q", decoded, s)
		}
	}
}

// decodeStringBody recovers the original bytes from padded body words,
// mirroring how a reader would interpret EncodeString's output.
func decodeStringBody(body []uint32, byteLen int) string {
	buf := make([]byte, len(body)*4)
	for i, w := range body {
		buf[i*4] = byte(w)
		buf[i*4+1] = byte(w >> 8)
		buf[i*4+2] = byte(w >> 16)
		buf[i*4+3] = byte(w >> 24)
	}
	return string(buf[:byteLen-1]) // drop the trailing NUL
}

func TestWriteMessageLargePayloadRoundTrips(t *testing.T) {
	a, b := socketPair(t)
	w := NewWriter(a)
	r := NewReader(b)

	words := make([]uint32, 4096)
	for i := range words {
		words[i] = uint32(i)
	}

	if err := w.WriteMessage(1, 0, words, nil); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	msg, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if len(msg.Words) != len(words) {
		t.Fatalf("Words len = %d, want %d", len(msg.Words), len(words))
	}
	for i := range words {
		if msg.Words[i] != words[i] {
			t.Fatalf("Words[%d] = %d, want %d", i, msg.Words[i], words[i])
		}
	}
}
