//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"math"
	"testing"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		v := f.Int(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("Int(5, 10) returned %d", v)
		}
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		v := f.Float64(0.85, 1.15)
		if v < 0.85 || v > 1.15 {
			t.Errorf("Float64(0.85, 1.15) returned %f", v)
		}
	}
}

func TestFakerNormal(t *testing.T) {
	f := NewFakerWithSeed(42)

	// Sample mean should land near the distribution mean
	const n = 10000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := f.Normal(1.0, 0.15)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)

	if math.Abs(mean-1.0) > 0.01 {
		t.Errorf("Sample mean %f too far from 1.0", mean)
	}
	if math.Abs(stddev-0.15) > 0.01 {
		t.Errorf("Sample stddev %f too far from 0.15", stddev)
	}
}

func TestFakerNormalClamped(t *testing.T) {
	f := NewFakerWithSeed(42)
	for i := 0; i < 1000; i++ {
		v := f.NormalClamped(1.0, 0.15, 0.7, 1.4)
		if v < 0.7 || v > 1.4 {
			t.Errorf("NormalClamped returned %f outside [0.7, 1.4]", v)
		}
	}
}

func TestFakerExponential(t *testing.T) {
	f := NewFakerWithSeed(42)

	const n = 10000
	var sum float64
	for i := 0; i < n; i++ {
		v := f.Exponential(8)
		if v < 0 {
			t.Fatalf("Exponential returned negative value %f", v)
		}
		sum += v
	}
	mean := sum / n
	if math.Abs(mean-8) > 0.5 {
		t.Errorf("Sample mean %f too far from 8", mean)
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Choose returned unexpected value %q", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all 3 items chosen over 100 draws, got %d", len(seen))
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []string{"common", "rare"}
	weights := []float64{0.95, 0.05}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}

	if counts["common"] < 850 {
		t.Errorf("Expected 'common' to dominate, got %d of 1000", counts["common"])
	}
	if counts["common"]+counts["rare"] != 1000 {
		t.Error("ChooseWeighted returned an item outside the input set")
	}
}

func TestChooseWeightedSingleItem(t *testing.T) {
	f := NewFakerWithSeed(1)
	v := ChooseWeighted(f, []int{7}, []float64{1.0})
	if v != 7 {
		t.Errorf("Expected 7, got %d", v)
	}
}
