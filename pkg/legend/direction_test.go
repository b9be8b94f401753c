package legend

import "testing"

func TestDirectionTablesAntiparallel(t *testing.T) {
	for _, name := range DirectionNames() {
		face, ok := FaceDirections[name]
		if !ok {
			t.Fatalf("%s missing from FaceDirections", name)
		}
		engrave, ok := EngravingDirections[name]
		if !ok {
			t.Fatalf("%s missing from EngravingDirections", name)
		}
		if face != engrave.Neg() {
			t.Errorf("%s: %v and %v are not antiparallel", name, face, engrave)
		}
	}
}

func TestDirectionTablesComplete(t *testing.T) {
	if len(FaceDirections) != 6 || len(EngravingDirections) != 6 {
		t.Fatalf("tables have %d/%d entries, want 6/6",
			len(FaceDirections), len(EngravingDirections))
	}
	if len(DirectionNames()) != 6 {
		t.Fatalf("DirectionNames() has %d entries, want 6", len(DirectionNames()))
	}
}

func TestModeValid(t *testing.T) {
	if !ModeRaise.Valid() || !ModeEngrave.Valid() {
		t.Error("defined modes reported invalid")
	}
	if Mode("").Valid() || Mode("fuse").Valid() {
		t.Error("undefined mode reported valid")
	}
}
