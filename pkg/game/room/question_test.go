package room

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// scriptedSource feeds math/rand predetermined small values: each
// scripted value v surfaces as the result of an Intn call with any
// bound greater than v.
type scriptedSource struct {
	values []int64
	pos    int
}

func (s *scriptedSource) Int63() int64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v << 32
}

func (s *scriptedSource) Seed(int64) {}

func scriptedRand(values ...int64) *rand.Rand {
	return rand.New(&scriptedSource{values: values})
}

func parseOperand(t *testing.T, s string) float64 {
	t.Helper()
	s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("ParseFloat(%q) error: %v", s, err)
	}
	return n
}

func TestGenerateQuestion_Deterministic(t *testing.T) {
	tests := []struct {
		name   string
		draws  []int64 // answer, operand1, operator index
		want   questionValue
	}{
		{"addition", []int64{5, 3, 0}, questionValue{"3", "+", "2", "5"}},
		{"division flips operands", []int64{3, 4, 3}, questionValue{"12", "/", "4", "3"}},
		{"negative operand parenthesized", []int64{0, 5, 0}, questionValue{"5", "+", "(-5)", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := generateQuestion(scriptedRand(tc.draws...)); got != tc.want {
				t.Errorf("generateQuestion() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGenerateQuestion_RejectsDegenerateDraws(t *testing.T) {
	// A zero first operand with multiplication is rejected and the
	// draw retried.
	rng := scriptedRand(4, 0, 1 /* rejected */, 1, 2, 0)
	if got, want := generateQuestion(rng), (questionValue{"2", "+", "(-1)", "1"}); got != want {
		t.Errorf("generateQuestion() = %v, want %v", got, want)
	}
}

func TestGenerateQuestion_Properties(t *testing.T) {
	ops := map[string]func(a, b float64) float64{
		"+": func(a, b float64) float64 { return a + b },
		"*": func(a, b float64) float64 { return a * b },
		"-": func(a, b float64) float64 { return a - b },
		"/": func(a, b float64) float64 { return a / b },
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		q := generateQuestion(rng)

		if q.display() == "1+1" {
			t.Fatalf("generateQuestion() produced the reserved question %v", q)
		}

		answer, err := strconv.Atoi(q[qAnswer])
		if err != nil || answer < 0 || answer > 9 {
			t.Fatalf("answer %q is not a single digit", q[qAnswer])
		}

		op, ok := ops[q[qOperator]]
		if !ok {
			t.Fatalf("unknown operator %q in %v", q[qOperator], q)
		}
		a := parseOperand(t, q[qOperand1])
		b := parseOperand(t, q[qOperand2])
		if got := op(a, b); math.Abs(got-float64(answer)) > 1e-9 {
			t.Fatalf("question %v evaluates to %v, want %d", q, got, answer)
		}

		// Operands never carry more than one decimal place.
		for _, operand := range []float64{a, b} {
			if math.Round(operand*10)/10 != operand {
				t.Fatalf("operand %v of %v has more than one decimal place", operand, q)
			}
		}
	}
}

func TestQuestion_SolveGrades(t *testing.T) {
	q := &question{value: questionValue{"3", "+", "2", "5"}}
	q.solve('5')
	if q.state != QuestionOK {
		t.Errorf("state after correct answer = %v, want %v", q.state, QuestionOK)
	}

	q = &question{value: questionValue{"3", "+", "2", "5"}}
	q.solve('4')
	if q.state != QuestionErr {
		t.Errorf("state after wrong answer = %v, want %v", q.state, QuestionErr)
	}
}

func TestQuestion_TimesOutAfterGracePeriod(t *testing.T) {
	q := &question{value: questionValue{"3", "+", "2", "5"}}

	q.tick()
	if q.state != QuestionActive {
		t.Errorf("state after one tick = %v, want %v", q.state, QuestionActive)
	}
	q.tick()
	if q.state != QuestionErr {
		t.Errorf("state after two ticks = %v, want %v", q.state, QuestionErr)
	}
}
