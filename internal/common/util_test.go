package common

import (
	"bytes"
	"testing"
)

func TestWipeByteArray_Zeroes(t *testing.T) {
	b := []byte("s3cret!")
	WipeByteArray(b)
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("expected zeroed slice, got %v", b)
	}
}

func TestWipeByteArray_Nil(t *testing.T) {
	// must not panic
	WipeByteArray(nil)
}
