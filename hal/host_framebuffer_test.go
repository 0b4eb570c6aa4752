package hal

import "testing"

func TestFramebufferClearRGB(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride=%d len=%d; want 8, 24", fb.StrideBytes(), len(fb.Buffer()))
	}

	fb.ClearRGB(0xFF, 0x00, 0x00)
	for i := 0; i < len(fb.buf); i += 2 {
		got := uint16(fb.buf[i]) | uint16(fb.buf[i+1])<<8
		if got != 0xF800 {
			t.Fatalf("pixel %d = %#04x; want 0xf800", i/2, got)
		}
	}
}

func TestFramebufferSnapshotRGBA(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	p := RGB565(0x00, 0xFF, 0x00)
	fb.buf[2] = byte(p)
	fb.buf[3] = byte(p >> 8)

	dst := make([]byte, 8)
	fb.snapshotRGBA(dst)

	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0xFF, 0x00, 0xFF}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v; want %v", dst, want)
		}
	}
}

func TestRGB565Extremes(t *testing.T) {
	if got := RGB565(0, 0, 0); got != 0 {
		t.Fatalf("black = %#04x", got)
	}
	if got := RGB565(0xFF, 0xFF, 0xFF); got != 0xFFFF {
		t.Fatalf("white = %#04x", got)
	}
	r, g, b := RGB888From565(0xFFFF)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("RGB888From565(white) = %d,%d,%d", r, g, b)
	}
}
