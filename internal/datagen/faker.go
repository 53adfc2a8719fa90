//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
package datagen

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker is the random source for data generation. A single seeded instance
// is threaded explicitly through every generator stage so runs are
// reproducible; there is no package-level RNG state.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for
// reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Normal draws from a normal distribution with the given mean and standard
// deviation, using Box-Muller over the seeded uniform source.
func (f *Faker) Normal(mean, stddev float64) float64 {
	u1 := f.faker.Float64Range(math.SmallestNonzeroFloat64, 1)
	u2 := f.faker.Float64Range(0, 1)
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}

// NormalClamped draws from a normal distribution and clamps the result to
// [min, max].
func (f *Faker) NormalClamped(mean, stddev, min, max float64) float64 {
	v := f.Normal(mean, stddev)
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Exponential draws from an exponential distribution with the given mean,
// via inverse CDF over the seeded uniform source.
func (f *Faker) Exponential(mean float64) float64 {
	u := f.faker.Float64Range(0, 1)
	if u >= 1 {
		u = math.Nextafter(1, 0)
	}
	return -mean * math.Log(1-u)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on weights. Weights need
// not sum to 1.
func ChooseWeighted[T any](f *Faker, items []T, weights []float64) T {
	if len(items) == 0 || len(weights) != len(items) {
		var zero T
		return zero
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := f.Float64(0, total)
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}
