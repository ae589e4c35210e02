package execmem

import "testing"

func TestAcquireRoundsUpToAPageAndIsWritable(t *testing.T) {
	region, err := Acquire(1)
	if err != nil {
		t.Fatal(err)
	}
	defer region.Release()

	buf := region.Bytes()
	if len(buf) == 0 {
		t.Fatal("Acquire(1) returned an empty region")
	}
	// ret
	buf[0] = 0xC3
	if region.Bytes()[0] != 0xC3 {
		t.Fatal("write through Bytes() did not stick")
	}
}

func TestAcquireRejectsNonPositiveSize(t *testing.T) {
	if _, err := Acquire(0); err == nil {
		t.Fatal("expected an error for a zero-sized region")
	}
	if _, err := Acquire(-1); err == nil {
		t.Fatal("expected an error for a negative-sized region")
	}
}

func TestMakeExecutableThenRelease(t *testing.T) {
	region, err := Acquire(64)
	if err != nil {
		t.Fatal(err)
	}
	copy(region.Bytes(), []byte{0xC3})
	if err := region.MakeExecutable(); err != nil {
		t.Fatal(err)
	}
	if err := region.Release(); err != nil {
		t.Fatal(err)
	}
}
