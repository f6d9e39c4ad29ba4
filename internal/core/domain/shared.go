package domain

import "math"

// Amount is a monetary value in cents.
type Amount int

func NewAmountFromCents(cents int) Amount {
	return Amount(cents)
}

func NewAmountFromFloat(value float64) Amount {
	return Amount(math.Round(value * 100))
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) Dollars() float64 {
	return float64(a) / 100
}

type Event interface {
	GetName() string
	GetEntityName() string
}
