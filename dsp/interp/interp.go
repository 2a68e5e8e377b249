package interp

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder is returned for unsupported interpolation orders.
var ErrInvalidOrder = errors.New("interp: invalid order")

// Order is the polynomial order of an interpolation kernel.
type Order int

const (
	OrderNearest Order = 0
	OrderLinear  Order = 1
	OrderCubic   Order = 3
)

// Kernel evaluates a 1-D signal between integer sample positions.
type Kernel struct {
	order Order
}

// NewKernel returns the kernel for order.
func NewKernel(order Order) (Kernel, error) {
	switch order {
	case OrderNearest, OrderLinear, OrderCubic:
		return Kernel{order: order}, nil
	default:
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
}

// Order returns the kernel order.
func (k Kernel) Order() Order { return k.order }

// Taps returns how many samples Eval reads.
func (k Kernel) Taps() int {
	switch k.order {
	case OrderLinear:
		return 2
	case OrderCubic:
		return 4
	default:
		return 1
	}
}

// Origin returns the position of the first tap relative to floor(x).
func (k Kernel) Origin() int {
	if k.order == OrderCubic {
		return -1
	}
	return 0
}

// Eval interpolates at fraction t in [0, 1) past floor(x), given the
// Taps() samples starting at floor(x)+Origin(). For the nearest kernel,
// taps[0] must already be the rounded sample.
func (k Kernel) Eval(taps []float64, t float64) float64 {
	switch k.order {
	case OrderLinear:
		return taps[0] + t*(taps[1]-taps[0])
	case OrderCubic:
		return Hermite4(t, taps[0], taps[1], taps[2], taps[3])
	default:
		return taps[0]
	}
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
