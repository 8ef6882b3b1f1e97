package pio

import "testing"

func TestAllocatePIO(t *testing.T) {
	pioAllocations = [2][4]bool{}
	defer func() { pioAllocations = [2][4]bool{} }()

	for i := 0; i < 8; i++ {
		pioNum, smNum, ok := allocatePIO()
		if !ok {
			t.Fatalf("allocation %d failed", i)
		}
		if int(pioNum)*4+int(smNum) != i {
			t.Errorf("allocation %d: got PIO%d SM%d", i, pioNum, smNum)
		}
	}

	if _, _, ok := allocatePIO(); ok {
		t.Errorf("expected exhaustion after 8 state machines")
	}

	releasePIO(1, 2)
	if status := GetPIOAllocationStatus(); status[1][2] {
		t.Errorf("PIO1 SM2 should be free after release")
	}
	pioNum, smNum, ok := allocatePIO()
	if !ok || pioNum != 1 || smNum != 2 {
		t.Errorf("expected the released PIO1 SM2, got PIO%d SM%d ok=%v", pioNum, smNum, ok)
	}
}

func TestRestartMask(t *testing.T) {
	testCases := []struct {
		sm   uint8
		want uint32
	}{
		{0, 0x110},
		{1, 0x220},
		{2, 0x440},
		{3, 0x880},
	}

	for _, tc := range testCases {
		if got := restartMask(tc.sm); got != tc.want {
			t.Errorf("SM%d: expected %#x, got %#x", tc.sm, tc.want, got)
		}
	}

	if ctrlAddr(0) != 0x50200000 || ctrlAddr(1) != 0x50300000 {
		t.Errorf("unexpected CTRL addresses %#x %#x", ctrlAddr(0), ctrlAddr(1))
	}
}
