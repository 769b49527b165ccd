package events

import (
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Event{
		NewAccept(1, 100),
		NewReject(2, UnfillableFOK, 200),
		NewTrade(3, 4, price.Ticks(10050), 25, 300),
		NewCancel(5, 7, 400),
		NewReplace(6, price.Ticks(9999), 12, 500),
		NewBookTop(price.Ticks(9950), 10, price.Ticks(10050), 20, 600),
	}

	for _, want := range cases {
		enc := Encode(want)
		if len(enc) != EncodedLen {
			t.Fatalf("Encode(%v) len = %d, want %d", want, len(enc), EncodedLen)
		}
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := Decode([]byte{1, 2, 3}); err == nil {
		t.Error("Decode should reject a short buffer")
	}
}
