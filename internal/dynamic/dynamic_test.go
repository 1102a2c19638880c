package dynamic

import "testing"

func TestRun_ParseAndFormat(t *testing.T) {
	got, err := Run(OpParse, 2, "half-even", []string{"1.5"}, 0)
	if err != nil {
		t.Fatalf("Run(OpParse): %v", err)
	}
	if got != "1.5" {
		t.Errorf("Run(OpParse) = %q, want %q", got, "1.5")
	}

	got, err = Run(OpFormat, 2, "half-even", []string{"1.5"}, 0)
	if err != nil {
		t.Fatalf("Run(OpFormat): %v", err)
	}
	if got != "1.50" {
		t.Errorf("Run(OpFormat) = %q, want %q", got, "1.50")
	}
}

func TestRun_Arithmetic(t *testing.T) {
	cases := []struct {
		op   Op
		args []string
		want string
	}{
		{OpAdd, []string{"1.10", "2.20"}, "3.3"},
		{OpSub, []string{"5.00", "1.25"}, "3.75"},
		{OpMul, []string{"2.00", "3.00"}, "6"},
		{OpDiv, []string{"10.00", "4.00"}, "2.5"},
	}
	for _, c := range cases {
		got, err := Run(c.op, 2, "half-even", c.args, 0)
		if err != nil {
			t.Fatalf("Run(op=%d, %v): %v", c.op, c.args, err)
		}
		if got != c.want {
			t.Errorf("Run(op=%d, %v) = %q, want %q", c.op, c.args, got, c.want)
		}
	}
}

func TestRun_Cast(t *testing.T) {
	got, err := Run(OpCast, 4, "half-even", []string{"1.2345"}, 2)
	if err != nil {
		t.Fatalf("Run(OpCast): %v", err)
	}
	if got != "1.23" {
		t.Errorf("Run(OpCast) = %q, want %q", got, "1.23")
	}
}

func TestRun_UnknownRounding(t *testing.T) {
	if _, err := Run(OpParse, 2, "nearest-star", []string{"1"}, 0); err == nil {
		t.Errorf("Run with unknown rounding policy did not error")
	}
}

func TestRun_PrecisionOutOfRange(t *testing.T) {
	if _, err := Run(OpParse, 19, "half-even", []string{"1"}, 0); err == nil {
		t.Errorf("Run with out-of-range precision did not error")
	}
	if _, err := Run(OpParse, -1, "half-even", []string{"1"}, 0); err == nil {
		t.Errorf("Run with negative precision did not error")
	}
}

func TestRun_CastPrecisionOutOfRange(t *testing.T) {
	if _, err := Run(OpCast, 4, "half-even", []string{"1.2345"}, 19); err == nil {
		t.Errorf("Run(OpCast) with out-of-range destination precision did not error")
	}
}

func TestRun_WrongOperandCount(t *testing.T) {
	if _, err := Run(OpAdd, 2, "half-even", []string{"1.00"}, 0); err == nil {
		t.Errorf("Run(OpAdd) with one operand did not error")
	}
}

func TestRun_AllRoundingPolicies(t *testing.T) {
	names := []string{"down", "default", "half-down", "half-up", "half-even", "ceiling", "floor", "up"}
	for _, name := range names {
		if _, err := Run(OpParse, 2, name, []string{"1.5"}, 0); err != nil {
			t.Errorf("Run with rounding %q: %v", name, err)
		}
	}
}
