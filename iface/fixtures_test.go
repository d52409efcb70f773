package iface

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) Name() string       { return "circle" }

type Square struct {
	Side float64
}

func (s Square) ComputeArea() float64 { return s.Side * s.Side }

type pointerShape struct {
	side float64
}

func (p *pointerShape) Area() float64 { return p.side * p.side }

type labeledCircle struct {
	Circle
	Label string
}

// shadowedCircle hides the promoted Area method behind a field.
type shadowedCircle struct {
	Circle
	Area int
}

type legacyRect struct {
	W, H float64
}

func (l legacyRect) Dims() (float64, float64) { return l.W, l.H }

type rectAdapter struct {
	rect legacyRect
}

func (a rectAdapter) Area() float64 { return a.rect.W * a.rect.H }

type account struct {
	Owner   string
	Balance int
	id      int
}

func (a *account) ID() int             { return a.id }
func (a *account) Deposit(amount int)  { a.Balance += amount }
func (a *account) Withdraw(amount int) { a.Balance -= amount }

type summer struct{}

func (summer) Sum(values ...int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func (summer) Scale(factor float64, values ...float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}

type named string

func (n named) String() string { return string(n) }

var (
	float64Type = reflect.TypeFor[float64]()
	intType     = reflect.TypeFor[int]()
	stringType  = reflect.TypeFor[string]()
)

func shapeInterface(t *testing.T, r *Registry) *Interface {
	t.Helper()
	i, err := r.DeclareInterface("IShape", Method("Area"))
	require.NoError(t, err)
	return i
}

func accountInterface(t *testing.T, r *Registry) *Interface {
	t.Helper()
	i, err := r.DeclareInterface("IAccount",
		Method("Deposit", "amount").WithTypes(intType),
		Attribute("Balance", intType),
		ReadOnlyAttribute("Owner", stringType),
		ReadOnlyAttribute("ID", intType),
	)
	require.NoError(t, err)
	return i
}

var _ fmt.Stringer = named("")
