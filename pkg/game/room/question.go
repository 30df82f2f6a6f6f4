package room

import (
	"math"
	"math/rand"
	"strconv"
)

// QuestionState tracks a question's lifecycle on the pad display.
type QuestionState int

const (
	QuestionActive QuestionState = iota
	QuestionOK
	QuestionErr
)

// display returns the text the keypad shows for the state.
func (s QuestionState) display() string {
	switch s {
	case QuestionOK:
		return "OK"
	case QuestionErr:
		return "ERR"
	default:
		return ""
	}
}

// questionValue is a question as displayed: two operands, an operator
// and the expected answer, all pre-rendered as strings.
type questionValue [4]string

const (
	qOperand1 = iota
	qOperator
	qOperand2
	qAnswer
)

// specialQuestion is the deliberately wrong question whose "wrong"
// answer wins the game. The generator never produces 1+1 by chance.
var specialQuestion = questionValue{"1", "+", "1", "3"}

// display returns the question as shown on the pad, answer omitted.
func (v questionValue) display() string {
	return v[qOperand1] + v[qOperator] + v[qOperand2]
}

// question is one arithmetic challenge in flight.
type question struct {
	value questionValue
	state QuestionState
	ticks int
}

// solve grades a single answer digit.
func (q *question) solve(answer rune) {
	if string(answer) == q.value[qAnswer] {
		q.state = QuestionOK
	} else {
		q.state = QuestionErr
	}
}

// tick counts elapsed display intervals; more than one full interval
// without an answer times the question out.
func (q *question) tick() {
	q.ticks++
	if q.ticks > 1 {
		q.state = QuestionErr
	}
}

// operatorSymbols indexes the four operators. The ordering matters:
// the inverse of operator i is operator (i+2)%4, which the generator
// uses to derive the second operand from the answer.
var operatorSymbols = [4]string{"+", "*", "-", "/"}

// applyOperator evaluates operator idx on x and y.
func applyOperator(idx int, x, y float64) float64 {
	switch idx {
	case 0:
		return x + y
	case 1:
		return x * y
	case 2:
		return x - y
	case 3:
		return x / y
	}
	panic("unknown operator index")
}

// generateQuestion produces a random single-digit-answer question.
// Degenerate draws are rejected and retried: 0*x and x/0, the reserved
// 1+1, and questions whose derived operand needs more than one decimal
// place.
func generateQuestion(rng *rand.Rand) questionValue {
	for {
		answer := rng.Intn(10)
		operand1 := rng.Intn(10)
		operatorIdx := rng.Intn(4)

		if operand1 == 0 && operatorIdx%2 == 1 {
			continue
		}
		if answer == 2 && operand1 == 1 && operatorIdx == 0 {
			continue
		}

		// The inverse operator computes the other operand from the
		// answer.
		operand2 := applyOperator((operatorIdx+2)%4, float64(answer), float64(operand1))
		if math.Round(operand2*10)/10 != operand2 {
			continue
		}

		a, b := float64(operand1), operand2
		if operatorIdx > 1 {
			// Subtraction and division read with the operands flipped.
			a, b = b, a
		}
		return questionValue{
			formatOperand(a),
			operatorSymbols[operatorIdx],
			formatOperand(b),
			strconv.Itoa(answer),
		}
	}
}

// formatOperand renders whole numbers without a decimal point and
// parenthesizes negatives for readability.
func formatOperand(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if n < 0 {
		return "(" + s + ")"
	}
	return s
}
